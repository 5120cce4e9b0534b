package models

import (
	"github.com/shopspring/decimal"
)

// Product represents a product in the catalog.
// Every product belongs to exactly one existing category.
type Product struct {
	ID            uint            `gorm:"primaryKey"`
	Name          string          `gorm:"size:200;not null"`
	Description   string          `gorm:"size:1000;not null;default:''"`
	Price         decimal.Decimal `gorm:"type:numeric(12,2);not null;check:price > 0"`
	StockQuantity int             `gorm:"not null;check:stock_quantity >= 1"`
	CategoryID    uint            `gorm:"not null;index"`
	Category      Category        `gorm:"foreignKey:CategoryID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

func (p *Product) TableName() string {
	return "products"
}

// AssignCategory points the product at c, keeping CategoryID in sync.
func (p *Product) AssignCategory(c Category) {
	p.Category = c
	p.CategoryID = c.ID
}
