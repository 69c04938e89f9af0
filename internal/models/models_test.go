package models_test

import (
	"testing"

	"inventario/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func TestInventory_IsLowStock(t *testing.T) {
	assert.True(t, (&models.Inventory{Quantity: 5, MinStock: intPtr(10)}).IsLowStock())
	assert.True(t, (&models.Inventory{Quantity: 10, MinStock: intPtr(10)}).IsLowStock())
	assert.False(t, (&models.Inventory{Quantity: 10, MinStock: intPtr(5)}).IsLowStock())

	// A missing threshold counts as zero.
	assert.True(t, (&models.Inventory{Quantity: 0}).IsLowStock())
	assert.False(t, (&models.Inventory{Quantity: 1}).IsLowStock())
}

func TestProduct_StockValue(t *testing.T) {
	p := models.Product{Price: decimal.RequireFromString("19.99"), Inventory: &models.Inventory{Quantity: 3}}
	assert.True(t, decimal.RequireFromString("59.97").Equal(p.StockValue()))

	noInventory := models.Product{Price: decimal.NewFromInt(100)}
	assert.Equal(t, 0, noInventory.Stock())
	assert.False(t, noInventory.IsLowStock())
	assert.True(t, noInventory.StockValue().IsZero())
}
