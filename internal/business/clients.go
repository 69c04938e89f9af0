// Package business holds the business tier's services. They check business
// rules and forward to the data tier through the remote client; a request
// that breaks a rule never reaches the data tier.
package business

import (
	"context"

	"inventario/internal/dto"

	"github.com/shopspring/decimal"
)

// ProductClient is the data tier's product API as used by ProductService.
type ProductClient interface {
	GetProducts(ctx context.Context) ([]dto.ProductDTO, error)
	GetProduct(ctx context.Context, id uint) (*dto.ProductDTO, error)
	GetProductByName(ctx context.Context, name string) (*dto.ProductDTO, error)
	GetProductsByPrice(ctx context.Context, price decimal.Decimal) ([]dto.ProductDTO, error)
	GetProductsByCategory(ctx context.Context, categoryName string) ([]dto.ProductDTO, error)
	GetLowStockProducts(ctx context.Context) ([]dto.ProductDTO, error)
	CreateProduct(ctx context.Context, product dto.ProductDTO) (*dto.ProductDTO, error)
	UpdateProduct(ctx context.Context, id uint, product dto.ProductDTO) (*dto.ProductDTO, error)
	DeleteProduct(ctx context.Context, id uint) error
}

type CategoryClient interface {
	GetCategories(ctx context.Context) ([]dto.CategoryDTO, error)
	GetCategoriesWithProducts(ctx context.Context) ([]dto.CategoryDTO, error)
	GetCategory(ctx context.Context, id uint) (*dto.CategoryDTO, error)
	GetCategoryByName(ctx context.Context, name string) (*dto.CategoryDTO, error)
	CreateCategory(ctx context.Context, category dto.CategoryDTO) (*dto.CategoryDTO, error)
	UpdateCategory(ctx context.Context, id uint, category dto.CategoryDTO) (*dto.CategoryDTO, error)
	DeleteCategory(ctx context.Context, id uint) error
}

type InventoryClient interface {
	GetInventories(ctx context.Context) ([]dto.InventoryDTO, error)
	GetLowStockInventory(ctx context.Context) ([]dto.InventoryDTO, error)
	GetHighStockInventory(ctx context.Context) ([]dto.InventoryDTO, error)
	GetInventoryByQuantity(ctx context.Context, quantity int) ([]dto.InventoryDTO, error)
	GetInventory(ctx context.Context, id uint) (*dto.InventoryDTO, error)
	GetInventoryByProduct(ctx context.Context, productID uint) (*dto.InventoryDTO, error)
	CreateInventory(ctx context.Context, inventory dto.InventoryDTO) (*dto.InventoryDTO, error)
	UpdateInventory(ctx context.Context, id uint, inventory dto.InventoryDTO) (*dto.InventoryDTO, error)
	DeleteInventory(ctx context.Context, id uint) error
}
