// Package dto holds the records the business tier exchanges with the data
// tier and with its own clients. They mirror the data tier's JSON shape.
package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type CategoryDTO struct {
	ID          uint   `json:"id,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type InventoryDTO struct {
	ID          uint        `json:"id,omitempty"`
	ProductID   uint        `json:"product_id"`
	Product     *ProductDTO `json:"product,omitempty"`
	Quantity    int         `json:"quantity"`
	MinStock    *int        `json:"min_stock"`
	LastUpdated time.Time   `json:"last_updated"`
}

type ProductDTO struct {
	ID          uint            `json:"id,omitempty"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	CategoryID  *uint           `json:"category_id,omitempty"`
	Category    *CategoryDTO    `json:"category,omitempty"`
	Inventory   *InventoryDTO   `json:"inventory,omitempty"`
}

// Stock is the quantity on hand, 0 without an inventory record.
func (p ProductDTO) Stock() int {
	if p.Inventory == nil {
		return 0
	}
	return p.Inventory.Quantity
}

// LowStock reports whether the product has inventory at or below its minimum.
func (p ProductDTO) LowStock() bool {
	if p.Inventory == nil {
		return false
	}
	min := 0
	if p.Inventory.MinStock != nil {
		min = *p.Inventory.MinStock
	}
	return p.Inventory.Quantity <= min
}

// ProductRequest is the body accepted by the public product endpoints.
// Pointers distinguish missing fields from zero values.
type ProductRequest struct {
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	CategoryID  *uint            `json:"category_id"`
	Stock       *int             `json:"stock"`
	MinStock    *int             `json:"min_stock"`
}

// ToProduct builds the payload sent to the data tier. Stock travels as the
// product's companion inventory record.
func (r ProductRequest) ToProduct() ProductDTO {
	p := ProductDTO{
		Name:        r.Name,
		Description: r.Description,
		CategoryID:  r.CategoryID,
	}
	if r.Price != nil {
		p.Price = *r.Price
	}
	if r.Stock != nil {
		p.Inventory = &InventoryDTO{Quantity: *r.Stock, MinStock: r.MinStock}
	}
	return p
}

// InventoryRequest is the body accepted by the public inventory endpoints.
type InventoryRequest struct {
	ProductID uint `json:"product_id"`
	Quantity  *int `json:"quantity"`
	MinStock  *int `json:"min_stock"`
}

func (r InventoryRequest) ToInventory() InventoryDTO {
	inv := InventoryDTO{ProductID: r.ProductID, MinStock: r.MinStock}
	if r.Quantity != nil {
		inv.Quantity = *r.Quantity
	}
	return inv
}
