package modelstest

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/product-catalog/catalog-api/models"
)

func TestFailedUnitOfWorkLeavesNoTrace(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	err := s.WithinTransaction(ctx, func(repos models.Repositories) error {
		require.NoError(t, repos.Categories.Save(ctx, &models.Category{Name: "Books"}))
		return repos.Products.Save(ctx, &models.Product{Name: "Ghost", Price: decimal.NewFromInt(1), CategoryID: 99})
	})

	assert.ErrorIs(t, err, models.ErrCategoryNotFound)
	assert.Equal(t, 1, s.Rollbacks)
	_, ok := s.Category(1)
	assert.False(t, ok)
}

func TestDeleteRestrictedCategory(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	c := s.AddCategory("Books")
	s.AddProduct(models.Product{Name: "Novel", CategoryID: c.ID})

	err := s.WithinTransaction(ctx, func(repos models.Repositories) error {
		return repos.Categories.DeleteByID(ctx, c.ID)
	})

	assert.ErrorIs(t, err, models.ErrCategoryInUse)
}

func TestDuplicateCategoryName(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	s.AddCategory("Books")

	err := s.WithinTransaction(ctx, func(repos models.Repositories) error {
		return repos.Categories.Save(ctx, &models.Category{Name: "Books"})
	})

	assert.ErrorIs(t, err, models.ErrDuplicateCategoryName)
}

func TestUpdateNeverInserts(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	c := s.AddCategory("Books")

	err := s.WithinTransaction(ctx, func(repos models.Repositories) error {
		return repos.Products.Save(ctx, &models.Product{ID: 42, Name: "Novel", Price: decimal.NewFromInt(1), CategoryID: c.ID})
	})

	assert.ErrorIs(t, err, models.ErrProductNotFound)
	_, ok := s.Product(42)
	assert.False(t, ok)
}
