package models

// Category groups products in the catalog.
// Its name is unique across all categories.
type Category struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"size:100;uniqueIndex;not null"`
}

func (c *Category) TableName() string {
	return "categories"
}
