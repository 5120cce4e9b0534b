package products

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/product-catalog/catalog-api/models"
)

// MutationRecorder counts successful writes.
type MutationRecorder interface {
	RecordMutation(entity, operation string)
}

type noopRecorder struct{}

func (noopRecorder) RecordMutation(string, string) {}

const entityName = "product"

// Service implements the product use cases. A failure anywhere inside a write,
// including an unknown category found after the product was loaded, rolls the
// whole call back.
type Service struct {
	uow       models.UnitOfWork
	converter Converter
	logger    *zap.Logger
	recorder  MutationRecorder
}

func NewService(uow models.UnitOfWork, logger *zap.Logger, recorder MutationRecorder) *Service {
	if recorder == nil {
		recorder = noopRecorder{}
	}
	return &Service{
		uow:      uow,
		logger:   logger,
		recorder: recorder,
	}
}

func (s *Service) CreateProduct(ctx context.Context, req *ProductRequest) (*ProductResponse, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: product request is required", models.ErrInvalidArgument)
	}

	var product *models.Product
	err := s.uow.WithinTransaction(ctx, func(repos models.Repositories) error {
		category, err := findCategory(ctx, repos, req.CategoryID)
		if err != nil {
			return err
		}
		product, err = s.converter.ToEntity(req, *category)
		if err != nil {
			return err
		}
		return repos.Products.Save(ctx, product)
	})
	if err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}

	s.recorder.RecordMutation(entityName, "create")
	s.logger.Info("product created",
		zap.Uint("id", product.ID),
		zap.Uint("categoryID", product.CategoryID),
	)
	return s.converter.ToResponse(product), nil
}

func (s *Service) GetAllProducts(ctx context.Context, filters models.ProductFilters) ([]ProductResponse, error) {
	var products []models.Product
	err := s.uow.WithinReadOnly(ctx, func(repos models.Repositories) error {
		var err error
		products, err = repos.Products.FindAll(ctx, filters)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return s.converter.ToResponseList(products), nil
}

// GetProductByID reports found=false, without error, when id does not exist.
func (s *Service) GetProductByID(ctx context.Context, id uint) (ProductResponse, bool, error) {
	var product *models.Product
	err := s.uow.WithinReadOnly(ctx, func(repos models.Repositories) error {
		var err error
		product, err = repos.Products.FindByID(ctx, id)
		return err
	})
	if errors.Is(err, models.ErrProductNotFound) {
		return ProductResponse{}, false, nil
	}
	if err != nil {
		return ProductResponse{}, false, fmt.Errorf("get product %d: %w", id, err)
	}
	return *s.converter.ToResponse(product), true, nil
}

// UpdateProduct replaces every scalar field. The category changes only when
// req.CategoryID differs from the current one.
func (s *Service) UpdateProduct(ctx context.Context, id uint, req *ProductRequest) (*ProductResponse, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: product request is required", models.ErrInvalidArgument)
	}

	product, err := s.modify(ctx, id, func(repos models.Repositories, p *models.Product) error {
		if err := s.converter.ApplyUpdate(req, p); err != nil {
			return err
		}
		return reassignCategory(ctx, repos, p, &req.CategoryID)
	})
	if err != nil {
		return nil, fmt.Errorf("update product %d: %w", id, err)
	}

	s.recorder.RecordMutation(entityName, "update")
	s.logger.Info("product updated", zap.Uint("id", id))
	return s.converter.ToResponse(product), nil
}

// PatchProduct applies only the fields present in req.
func (s *Service) PatchProduct(ctx context.Context, id uint, req *ProductPatchRequest) (*ProductResponse, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: patch request is required", models.ErrInvalidArgument)
	}

	product, err := s.modify(ctx, id, func(repos models.Repositories, p *models.Product) error {
		if err := s.converter.ApplyPatch(req, p); err != nil {
			return err
		}
		return reassignCategory(ctx, repos, p, req.CategoryID)
	})
	if err != nil {
		return nil, fmt.Errorf("patch product %d: %w", id, err)
	}

	s.recorder.RecordMutation(entityName, "patch")
	s.logger.Info("product patched", zap.Uint("id", id))
	return s.converter.ToResponse(product), nil
}

func (s *Service) DeleteProduct(ctx context.Context, id uint) error {
	err := s.uow.WithinTransaction(ctx, func(repos models.Repositories) error {
		exists, err := repos.Products.ExistsByID(ctx, id)
		if err != nil {
			return err
		}
		if !exists {
			return models.ProductNotFound(id)
		}
		return repos.Products.DeleteByID(ctx, id)
	})
	if err != nil {
		return fmt.Errorf("delete product %d: %w", id, err)
	}

	s.recorder.RecordMutation(entityName, "delete")
	s.logger.Info("product deleted", zap.Uint("id", id))
	return nil
}

// modify loads product id, lets change mutate it and saves the result, all in
// one transaction.
func (s *Service) modify(ctx context.Context, id uint, change func(models.Repositories, *models.Product) error) (*models.Product, error) {
	var product *models.Product
	err := s.uow.WithinTransaction(ctx, func(repos models.Repositories) error {
		var err error
		product, err = repos.Products.FindByID(ctx, id)
		if errors.Is(err, models.ErrProductNotFound) {
			return models.ProductNotFound(id)
		}
		if err != nil {
			return err
		}
		if err := change(repos, product); err != nil {
			return err
		}
		return repos.Products.Save(ctx, product)
	})
	if err != nil {
		return nil, err
	}
	return product, nil
}

func findCategory(ctx context.Context, repos models.Repositories, id uint) (*models.Category, error) {
	category, err := repos.Categories.FindByID(ctx, id)
	if errors.Is(err, models.ErrCategoryNotFound) {
		return nil, models.CategoryNotFound(id)
	}
	return category, err
}

func reassignCategory(ctx context.Context, repos models.Repositories, p *models.Product, categoryID *uint) error {
	if categoryID == nil || *categoryID == p.CategoryID {
		return nil
	}
	category, err := findCategory(ctx, repos, *categoryID)
	if err != nil {
		return err
	}
	p.AssignCategory(*category)
	return nil
}
