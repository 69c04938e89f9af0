package business_test

import (
	"context"

	"inventario/internal/dto"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// MockDataClient is a mock implementation of the product, category and
// inventory clients.
type MockDataClient struct {
	mock.Mock
}

func (m *MockDataClient) products(args mock.Arguments) ([]dto.ProductDTO, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.ProductDTO), args.Error(1)
}

func (m *MockDataClient) product(args mock.Arguments) (*dto.ProductDTO, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ProductDTO), args.Error(1)
}

func (m *MockDataClient) GetProducts(ctx context.Context) ([]dto.ProductDTO, error) {
	return m.products(m.Called(ctx))
}

func (m *MockDataClient) GetProduct(ctx context.Context, id uint) (*dto.ProductDTO, error) {
	return m.product(m.Called(ctx, id))
}

func (m *MockDataClient) GetProductByName(ctx context.Context, name string) (*dto.ProductDTO, error) {
	return m.product(m.Called(ctx, name))
}

func (m *MockDataClient) GetProductsByPrice(ctx context.Context, price decimal.Decimal) ([]dto.ProductDTO, error) {
	return m.products(m.Called(ctx, price))
}

func (m *MockDataClient) GetProductsByCategory(ctx context.Context, categoryName string) ([]dto.ProductDTO, error) {
	return m.products(m.Called(ctx, categoryName))
}

func (m *MockDataClient) GetLowStockProducts(ctx context.Context) ([]dto.ProductDTO, error) {
	return m.products(m.Called(ctx))
}

func (m *MockDataClient) CreateProduct(ctx context.Context, product dto.ProductDTO) (*dto.ProductDTO, error) {
	return m.product(m.Called(ctx, product))
}

func (m *MockDataClient) UpdateProduct(ctx context.Context, id uint, product dto.ProductDTO) (*dto.ProductDTO, error) {
	return m.product(m.Called(ctx, id, product))
}

func (m *MockDataClient) DeleteProduct(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockDataClient) categories(args mock.Arguments) ([]dto.CategoryDTO, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.CategoryDTO), args.Error(1)
}

func (m *MockDataClient) category(args mock.Arguments) (*dto.CategoryDTO, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.CategoryDTO), args.Error(1)
}

func (m *MockDataClient) GetCategories(ctx context.Context) ([]dto.CategoryDTO, error) {
	return m.categories(m.Called(ctx))
}

func (m *MockDataClient) GetCategoriesWithProducts(ctx context.Context) ([]dto.CategoryDTO, error) {
	return m.categories(m.Called(ctx))
}

func (m *MockDataClient) GetCategory(ctx context.Context, id uint) (*dto.CategoryDTO, error) {
	return m.category(m.Called(ctx, id))
}

func (m *MockDataClient) GetCategoryByName(ctx context.Context, name string) (*dto.CategoryDTO, error) {
	return m.category(m.Called(ctx, name))
}

func (m *MockDataClient) CreateCategory(ctx context.Context, category dto.CategoryDTO) (*dto.CategoryDTO, error) {
	return m.category(m.Called(ctx, category))
}

func (m *MockDataClient) UpdateCategory(ctx context.Context, id uint, category dto.CategoryDTO) (*dto.CategoryDTO, error) {
	return m.category(m.Called(ctx, id, category))
}

func (m *MockDataClient) DeleteCategory(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockDataClient) inventories(args mock.Arguments) ([]dto.InventoryDTO, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.InventoryDTO), args.Error(1)
}

func (m *MockDataClient) inventory(args mock.Arguments) (*dto.InventoryDTO, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.InventoryDTO), args.Error(1)
}

func (m *MockDataClient) GetInventories(ctx context.Context) ([]dto.InventoryDTO, error) {
	return m.inventories(m.Called(ctx))
}

func (m *MockDataClient) GetLowStockInventory(ctx context.Context) ([]dto.InventoryDTO, error) {
	return m.inventories(m.Called(ctx))
}

func (m *MockDataClient) GetHighStockInventory(ctx context.Context) ([]dto.InventoryDTO, error) {
	return m.inventories(m.Called(ctx))
}

func (m *MockDataClient) GetInventoryByQuantity(ctx context.Context, quantity int) ([]dto.InventoryDTO, error) {
	return m.inventories(m.Called(ctx, quantity))
}

func (m *MockDataClient) GetInventory(ctx context.Context, id uint) (*dto.InventoryDTO, error) {
	return m.inventory(m.Called(ctx, id))
}

func (m *MockDataClient) GetInventoryByProduct(ctx context.Context, productID uint) (*dto.InventoryDTO, error) {
	return m.inventory(m.Called(ctx, productID))
}

func (m *MockDataClient) CreateInventory(ctx context.Context, inventory dto.InventoryDTO) (*dto.InventoryDTO, error) {
	return m.inventory(m.Called(ctx, inventory))
}

func (m *MockDataClient) UpdateInventory(ctx context.Context, id uint, inventory dto.InventoryDTO) (*dto.InventoryDTO, error) {
	return m.inventory(m.Called(ctx, id, inventory))
}

func (m *MockDataClient) DeleteInventory(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

func intPtr(v int) *int { return &v }

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}
