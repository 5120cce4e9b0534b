package categories

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/product-catalog/catalog-api/models"
)

// MutationRecorder counts successful writes, e.g. into Prometheus.
type MutationRecorder interface {
	RecordMutation(entity, operation string)
}

type noopRecorder struct{}

func (noopRecorder) RecordMutation(string, string) {}

const entityName = "category"

// Service implements the category use cases. Every call runs in its own unit
// of work; writes commit atomically or not at all.
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

func (s *Service) CreateCategory(ctx context.Context, req *CategoryRequest) (*CategoryResponse, error) {
	category, err := s.converter.ToEntity(req)
	if err != nil {
		return nil, err
	}

	err = s.uow.WithinTransaction(ctx, func(repos models.Repositories) error {
		return repos.Categories.Save(ctx, category)
	})
	if err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}

	s.recorder.RecordMutation(entityName, "create")
	s.logger.Info("category created", zap.Uint("id", category.ID), zap.String("name", category.Name))
	return s.converter.ToResponse(category), nil
}

func (s *Service) GetAllCategories(ctx context.Context) ([]CategoryResponse, error) {
	var categories []models.Category
	err := s.uow.WithinReadOnly(ctx, func(repos models.Repositories) error {
		var err error
		categories, err = repos.Categories.FindAll(ctx)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return s.converter.ToResponseList(categories), nil
}

// GetCategoryByID reports found=false, without error, when id does not exist.
func (s *Service) GetCategoryByID(ctx context.Context, id uint) (CategoryResponse, bool, error) {
	var category *models.Category
	err := s.uow.WithinReadOnly(ctx, func(repos models.Repositories) error {
		var err error
		category, err = repos.Categories.FindByID(ctx, id)
		return err
	})
	if errors.Is(err, models.ErrCategoryNotFound) {
		return CategoryResponse{}, false, nil
	}
	if err != nil {
		return CategoryResponse{}, false, fmt.Errorf("get category %d: %w", id, err)
	}
	return *s.converter.ToResponse(category), true, nil
}

func (s *Service) UpdateCategory(ctx context.Context, id uint, req *CategoryRequest) (*CategoryResponse, error) {
	var category *models.Category
	err := s.uow.WithinTransaction(ctx, func(repos models.Repositories) error {
		var err error
		category, err = repos.Categories.FindByID(ctx, id)
		if errors.Is(err, models.ErrCategoryNotFound) {
			return models.CategoryNotFound(id)
		}
		if err != nil {
			return err
		}
		if err := s.converter.ApplyUpdate(req, category); err != nil {
			return err
		}
		return repos.Categories.Save(ctx, category)
	})
	if err != nil {
		return nil, fmt.Errorf("update category %d: %w", id, err)
	}

	s.recorder.RecordMutation(entityName, "update")
	s.logger.Info("category updated", zap.Uint("id", id))
	return s.converter.ToResponse(category), nil
}

// DeleteCategory removes the category. Categories still referenced by a
// product are not deleted and ErrCategoryInUse is returned.
func (s *Service) DeleteCategory(ctx context.Context, id uint) error {
	err := s.uow.WithinTransaction(ctx, func(repos models.Repositories) error {
		exists, err := repos.Categories.ExistsByID(ctx, id)
		if err != nil {
			return err
		}
		if !exists {
			return models.CategoryNotFound(id)
		}

		inUse, err := repos.Products.CountByCategory(ctx, id)
		if err != nil {
			return err
		}
		if inUse > 0 {
			return models.ErrCategoryInUse
		}

		return repos.Categories.DeleteByID(ctx, id)
	})
	if err != nil {
		return fmt.Errorf("delete category %d: %w", id, err)
	}

	s.recorder.RecordMutation(entityName, "delete")
	s.logger.Info("category deleted", zap.Uint("id", id))
	return nil
}
