package models

import "time"

// Inventory is the 1:1 stock record of a product.
type Inventory struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	ProductID   uint      `json:"product_id" gorm:"uniqueIndex;not null" validate:"required"`
	Product     *Product  `json:"product,omitempty" gorm:"foreignKey:ProductID" validate:"-"`
	Quantity    int       `json:"quantity" gorm:"not null;default:0" validate:"gte=0"`
	MinStock    *int      `json:"min_stock" validate:"omitempty,gte=0"`
	LastUpdated time.Time `json:"last_updated"`
}

func (Inventory) TableName() string {
	return "inventories"
}

// Threshold is the minimum stock, 0 when unset.
func (i *Inventory) Threshold() int {
	if i.MinStock == nil {
		return 0
	}
	return *i.MinStock
}

// IsLowStock reports quantity <= threshold.
func (i *Inventory) IsLowStock() bool {
	return i.Quantity <= i.Threshold()
}
