package products

import (
	"github.com/shopspring/decimal"

	"github.com/product-catalog/catalog-api/app/categories"
)

// ProductRequest is the body of POST and PUT /products.
// Price accepts a JSON number or a decimal string.
type ProductRequest struct {
	Name          string          `json:"name" validate:"required,notblank,min=2,max=200"`
	Description   string          `json:"description" validate:"max=1000"`
	Price         decimal.Decimal `json:"price" validate:"required,price"`
	StockQuantity int             `json:"stockQuantity" validate:"required,min=1"`
	CategoryID    uint            `json:"categoryId" validate:"required"`
}

// ProductPatchRequest is the body of PATCH /products/{id}. Absent fields are
// left unchanged.
type ProductPatchRequest struct {
	Name          *string          `json:"name" validate:"omitnil,notblank,min=2,max=200"`
	Description   *string          `json:"description" validate:"omitnil,max=1000"`
	Price         *decimal.Decimal `json:"price" validate:"omitnil,price"`
	StockQuantity *int             `json:"stockQuantity" validate:"omitnil,min=1"`
	CategoryID    *uint            `json:"categoryId" validate:"omitnil,gt=0"`
}

type ProductResponse struct {
	ID            uint                        `json:"id"`
	Name          string                      `json:"name"`
	Description   string                      `json:"description"`
	Price         float64                     `json:"price"`
	StockQuantity int                         `json:"stockQuantity"`
	Category      categories.CategoryResponse `json:"category"`
}
