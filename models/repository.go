package models

import (
	"context"

	"github.com/shopspring/decimal"
)

// ProductFilters narrows a product listing. Nil fields are ignored.
type ProductFilters struct {
	CategoryID    *uint
	PriceLessThan *decimal.Decimal
}

// CategoryRepository persists categories.
// FindByID returns ErrCategoryNotFound when no row matches.
type CategoryRepository interface {
	FindAll(ctx context.Context) ([]Category, error)
	FindByID(ctx context.Context, id uint) (*Category, error)
	ExistsByID(ctx context.Context, id uint) (bool, error)
	Save(ctx context.Context, category *Category) error
	DeleteByID(ctx context.Context, id uint) error
}

// ProductRepository persists products. Products are always returned with
// their category loaded.
// FindByID returns ErrProductNotFound when no row matches.
type ProductRepository interface {
	FindAll(ctx context.Context, filters ProductFilters) ([]Product, error)
	FindByID(ctx context.Context, id uint) (*Product, error)
	ExistsByID(ctx context.Context, id uint) (bool, error)
	CountByCategory(ctx context.Context, categoryID uint) (int64, error)
	Save(ctx context.Context, product *Product) error
	DeleteByID(ctx context.Context, id uint) error
}

// Repositories is the set of repositories bound to one unit of work.
type Repositories struct {
	Categories CategoryRepository
	Products   ProductRepository
}

// UnitOfWork runs fn against repositories that share one transaction.
// The transaction commits when fn returns nil and rolls back otherwise.
type UnitOfWork interface {
	WithinTransaction(ctx context.Context, fn func(repos Repositories) error) error
	WithinReadOnly(ctx context.Context, fn func(repos Repositories) error) error
}
