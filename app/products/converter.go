package products

import (
	"fmt"

	"github.com/product-catalog/catalog-api/app/categories"
	"github.com/product-catalog/catalog-api/models"
)

// Converter maps between product DTOs and entities. Category reassignment is
// left to the caller, which has to resolve the category first.
type Converter struct {
	categories categories.Converter
}

// ToResponse returns nil for a nil product.
func (cv Converter) ToResponse(p *models.Product) *ProductResponse {
	if p == nil {
		return nil
	}
	return &ProductResponse{
		ID:            p.ID,
		Name:          p.Name,
		Description:   p.Description,
		Price:         p.Price.InexactFloat64(),
		StockQuantity: p.StockQuantity,
		Category:      *cv.categories.ToResponse(&p.Category),
	}
}

func (cv Converter) ToResponseList(products []models.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for i := range products {
		out = append(out, *cv.ToResponse(&products[i]))
	}
	return out
}

// ToEntity builds a new product in category c.
func (Converter) ToEntity(req *ProductRequest, c models.Category) (*models.Product, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: product request is required", models.ErrInvalidArgument)
	}
	p := &models.Product{
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		StockQuantity: req.StockQuantity,
	}
	p.AssignCategory(c)
	return p, nil
}

// ApplyUpdate overwrites every scalar field of p with the request.
func (Converter) ApplyUpdate(req *ProductRequest, p *models.Product) error {
	if req == nil {
		return fmt.Errorf("%w: product request is required", models.ErrInvalidArgument)
	}
	if p == nil {
		return fmt.Errorf("%w: product is required", models.ErrInvalidArgument)
	}
	p.Name = req.Name
	p.Description = req.Description
	p.Price = req.Price
	p.StockQuantity = req.StockQuantity
	return nil
}

// ApplyPatch copies only the non-nil fields of the request onto p.
func (Converter) ApplyPatch(req *ProductPatchRequest, p *models.Product) error {
	if req == nil {
		return fmt.Errorf("%w: patch request is required", models.ErrInvalidArgument)
	}
	if p == nil {
		return fmt.Errorf("%w: product is required", models.ErrInvalidArgument)
	}
	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Description != nil {
		p.Description = *req.Description
	}
	if req.Price != nil {
		p.Price = *req.Price
	}
	if req.StockQuantity != nil {
		p.StockQuantity = *req.StockQuantity
	}
	return nil
}
