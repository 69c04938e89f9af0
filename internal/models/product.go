package models

import (
	"github.com/shopspring/decimal"
)

// Product represents a product in the catalog.
type Product struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	Name        string          `json:"name" gorm:"uniqueIndex;type:varchar(100);not null" validate:"required,max=100"`
	Description string          `json:"description" gorm:"type:varchar(500)" validate:"omitempty,max=500"`
	Price       decimal.Decimal `json:"price" gorm:"type:decimal(12,2);not null" validate:"required,gt=0"`
	CategoryID  *uint           `json:"category_id,omitempty" gorm:"index"`
	Category    *Category       `json:"category,omitempty" gorm:"foreignKey:CategoryID" validate:"-"`
	Inventory   *Inventory      `json:"inventory,omitempty" gorm:"foreignKey:ProductID" validate:"-"`
}

func (Product) TableName() string {
	return "products"
}

// Stock is the quantity on hand, 0 when the product has no inventory record.
func (p *Product) Stock() int {
	if p.Inventory == nil {
		return 0
	}
	return p.Inventory.Quantity
}

// IsLowStock reports whether the product has an inventory record at or below
// its minimum stock.
func (p *Product) IsLowStock() bool {
	return p.Inventory != nil && p.Inventory.IsLowStock()
}

// StockValue is price multiplied by the quantity on hand.
func (p *Product) StockValue() decimal.Decimal {
	return p.Price.Mul(decimal.NewFromInt(int64(p.Stock())))
}
