package categories

import (
	"fmt"

	"github.com/product-catalog/catalog-api/models"
)

// Converter maps between category DTOs and entities.
type Converter struct{}

// ToResponse returns nil for a nil category.
func (Converter) ToResponse(c *models.Category) *CategoryResponse {
	if c == nil {
		return nil
	}
	return &CategoryResponse{
		ID:   c.ID,
		Name: c.Name,
	}
}

func (cv Converter) ToResponseList(categories []models.Category) []CategoryResponse {
	out := make([]CategoryResponse, 0, len(categories))
	for i := range categories {
		out = append(out, *cv.ToResponse(&categories[i]))
	}
	return out
}

func (Converter) ToEntity(req *CategoryRequest) (*models.Category, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: category request is required", models.ErrInvalidArgument)
	}
	return &models.Category{Name: req.Name}, nil
}

// ApplyUpdate copies the request onto c. An empty name keeps the current one.
func (Converter) ApplyUpdate(req *CategoryRequest, c *models.Category) error {
	if req == nil {
		return fmt.Errorf("%w: category request is required", models.ErrInvalidArgument)
	}
	if c == nil {
		return fmt.Errorf("%w: category is required", models.ErrInvalidArgument)
	}
	if req.Name != "" {
		c.Name = req.Name
	}
	return nil
}
