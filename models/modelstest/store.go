// Package modelstest provides an in-memory models.UnitOfWork for tests.
package modelstest

import (
	"context"
	"sort"
	"sync"

	"github.com/product-catalog/catalog-api/models"
)

// Store keeps categories and products in memory. Every unit of work runs on a
// copy of the data which replaces the original only when fn succeeds, so a
// failed call leaves nothing behind.
type Store struct {
	mu   sync.Mutex
	data *state

	// Err, when set, is returned by every repository call.
	Err error

	Commits   int
	Rollbacks int
}

type state struct {
	categories     map[uint]models.Category
	products       map[uint]models.Product
	nextCategoryID uint
	nextProductID  uint
}

func NewStore() *Store {
	return &Store{data: &state{
		categories: map[uint]models.Category{},
		products:   map[uint]models.Product{},
	}}
}

func (s *Store) WithinTransaction(ctx context.Context, fn func(repos models.Repositories) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx := s.data.clone()
	if err := fn(s.repositories(tx)); err != nil {
		s.Rollbacks++
		return err
	}
	s.data = tx
	s.Commits++
	return nil
}

func (s *Store) WithinReadOnly(ctx context.Context, fn func(repos models.Repositories) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return fn(s.repositories(s.data.clone()))
}

// Ping reports Err, letting readiness checks be exercised.
func (s *Store) Ping(ctx context.Context) error {
	return s.Err
}

// AddCategory inserts a category directly, bypassing any unit of work.
func (s *Store) AddCategory(name string) models.Category {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data.nextCategoryID++
	c := models.Category{ID: s.data.nextCategoryID, Name: name}
	s.data.categories[c.ID] = c
	return c
}

// AddProduct inserts a product directly. p.CategoryID must already exist.
func (s *Store) AddProduct(p models.Product) models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data.nextProductID++
	p.ID = s.data.nextProductID
	p.Category = s.data.categories[p.CategoryID]
	s.data.products[p.ID] = p
	return p
}

func (s *Store) Category(id uint) (models.Category, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.data.categories[id]
	return c, ok
}

func (s *Store) Product(id uint) (models.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.data.products[id]
	if ok {
		p.Category = s.data.categories[p.CategoryID]
	}
	return p, ok
}

func (s *Store) repositories(st *state) models.Repositories {
	return models.Repositories{
		Categories: &categoryRepo{store: s, st: st},
		Products:   &productRepo{store: s, st: st},
	}
}

func (st *state) clone() *state {
	c := &state{
		categories:     make(map[uint]models.Category, len(st.categories)),
		products:       make(map[uint]models.Product, len(st.products)),
		nextCategoryID: st.nextCategoryID,
		nextProductID:  st.nextProductID,
	}
	for id, v := range st.categories {
		c.categories[id] = v
	}
	for id, v := range st.products {
		c.products[id] = v
	}
	return c
}

type categoryRepo struct {
	store *Store
	st    *state
}

func (r *categoryRepo) FindAll(ctx context.Context) ([]models.Category, error) {
	if r.store.Err != nil {
		return nil, r.store.Err
	}
	out := make([]models.Category, 0, len(r.st.categories))
	for _, c := range r.st.categories {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *categoryRepo) FindByID(ctx context.Context, id uint) (*models.Category, error) {
	if r.store.Err != nil {
		return nil, r.store.Err
	}
	c, ok := r.st.categories[id]
	if !ok {
		return nil, models.ErrCategoryNotFound
	}
	return &c, nil
}

func (r *categoryRepo) ExistsByID(ctx context.Context, id uint) (bool, error) {
	if r.store.Err != nil {
		return false, r.store.Err
	}
	_, ok := r.st.categories[id]
	return ok, nil
}

func (r *categoryRepo) Save(ctx context.Context, category *models.Category) error {
	if r.store.Err != nil {
		return r.store.Err
	}
	for id, c := range r.st.categories {
		if c.Name == category.Name && id != category.ID {
			return models.ErrDuplicateCategoryName
		}
	}
	if category.ID == 0 {
		r.st.nextCategoryID++
		category.ID = r.st.nextCategoryID
	} else if _, ok := r.st.categories[category.ID]; !ok {
		return models.CategoryNotFound(category.ID)
	}
	r.st.categories[category.ID] = *category
	return nil
}

func (r *categoryRepo) DeleteByID(ctx context.Context, id uint) error {
	if r.store.Err != nil {
		return r.store.Err
	}
	if _, ok := r.st.categories[id]; !ok {
		return models.ErrCategoryNotFound
	}
	for _, p := range r.st.products {
		if p.CategoryID == id {
			return models.ErrCategoryInUse
		}
	}
	delete(r.st.categories, id)
	return nil
}

type productRepo struct {
	store *Store
	st    *state
}

func (r *productRepo) withCategory(p models.Product) models.Product {
	p.Category = r.st.categories[p.CategoryID]
	return p
}

func (r *productRepo) FindAll(ctx context.Context, filters models.ProductFilters) ([]models.Product, error) {
	if r.store.Err != nil {
		return nil, r.store.Err
	}
	out := make([]models.Product, 0, len(r.st.products))
	for _, p := range r.st.products {
		if filters.CategoryID != nil && p.CategoryID != *filters.CategoryID {
			continue
		}
		if filters.PriceLessThan != nil && !p.Price.LessThan(*filters.PriceLessThan) {
			continue
		}
		out = append(out, r.withCategory(p))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *productRepo) FindByID(ctx context.Context, id uint) (*models.Product, error) {
	if r.store.Err != nil {
		return nil, r.store.Err
	}
	p, ok := r.st.products[id]
	if !ok {
		return nil, models.ErrProductNotFound
	}
	p = r.withCategory(p)
	return &p, nil
}

func (r *productRepo) ExistsByID(ctx context.Context, id uint) (bool, error) {
	if r.store.Err != nil {
		return false, r.store.Err
	}
	_, ok := r.st.products[id]
	return ok, nil
}

func (r *productRepo) CountByCategory(ctx context.Context, categoryID uint) (int64, error) {
	if r.store.Err != nil {
		return 0, r.store.Err
	}
	var n int64
	for _, p := range r.st.products {
		if p.CategoryID == categoryID {
			n++
		}
	}
	return n, nil
}

func (r *productRepo) Save(ctx context.Context, product *models.Product) error {
	if r.store.Err != nil {
		return r.store.Err
	}
	if _, ok := r.st.categories[product.CategoryID]; !ok {
		return models.CategoryNotFound(product.CategoryID)
	}
	if product.ID == 0 {
		r.st.nextProductID++
		product.ID = r.st.nextProductID
	} else if _, ok := r.st.products[product.ID]; !ok {
		return models.ProductNotFound(product.ID)
	}
	stored := *product
	stored.Category = models.Category{}
	r.st.products[product.ID] = stored
	return nil
}

func (r *productRepo) DeleteByID(ctx context.Context, id uint) error {
	if r.store.Err != nil {
		return r.store.Err
	}
	if _, ok := r.st.products[id]; !ok {
		return models.ErrProductNotFound
	}
	delete(r.st.products, id)
	return nil
}
