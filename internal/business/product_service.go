package business

import (
	"context"
	"strings"

	"inventario/internal/apperrors"
	"inventario/internal/dto"

	"github.com/shopspring/decimal"
)

// ProductService applies product rules before calling the data tier.
type ProductService struct {
	client ProductClient
}

func NewProductService(client ProductClient) *ProductService {
	return &ProductService{client: client}
}

// validateProduct requires a name, a positive price and a non-negative
// stock.
func validateProduct(req dto.ProductRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return apperrors.Validation("product name is required")
	}
	if req.Price == nil || !req.Price.IsPositive() {
		return apperrors.Validation("product price must be greater than zero")
	}
	if req.Stock == nil || *req.Stock < 0 {
		return apperrors.Validation("product stock must be zero or greater")
	}
	if req.MinStock != nil && *req.MinStock < 0 {
		return apperrors.Validation("minimum stock must be zero or greater")
	}
	return nil
}

func (s *ProductService) GetAllProducts(ctx context.Context) ([]dto.ProductDTO, error) {
	return s.client.GetProducts(ctx)
}

func (s *ProductService) GetProductByID(ctx context.Context, id uint) (*dto.ProductDTO, error) {
	return s.client.GetProduct(ctx, id)
}

func (s *ProductService) GetProductByName(ctx context.Context, name string) (*dto.ProductDTO, error) {
	return s.client.GetProductByName(ctx, name)
}

func (s *ProductService) GetProductsByPrice(ctx context.Context, price decimal.Decimal) ([]dto.ProductDTO, error) {
	return s.client.GetProductsByPrice(ctx, price)
}

func (s *ProductService) GetProductsByCategory(ctx context.Context, categoryName string) ([]dto.ProductDTO, error) {
	return s.client.GetProductsByCategory(ctx, categoryName)
}

func (s *ProductService) CreateProduct(ctx context.Context, req dto.ProductRequest) (*dto.ProductDTO, error) {
	if err := validateProduct(req); err != nil {
		return nil, err
	}
	return s.client.CreateProduct(ctx, req.ToProduct())
}

func (s *ProductService) UpdateProduct(ctx context.Context, id uint, req dto.ProductRequest) (*dto.ProductDTO, error) {
	if err := validateProduct(req); err != nil {
		return nil, err
	}
	return s.client.UpdateProduct(ctx, id, req.ToProduct())
}

func (s *ProductService) DeleteProduct(ctx context.Context, id uint) error {
	return s.client.DeleteProduct(ctx, id)
}

// GetLowStockProducts returns the products the data tier reports at or below
// their minimum stock.
func (s *ProductService) GetLowStockProducts(ctx context.Context) ([]dto.ProductDTO, error) {
	return s.client.GetLowStockProducts(ctx)
}

// GetTotalInventoryValue sums price * stock over every product.
func (s *ProductService) GetTotalInventoryValue(ctx context.Context) (decimal.Decimal, error) {
	products, err := s.client.GetProducts(ctx)
	if err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero
	for _, p := range products {
		total = total.Add(p.Price.Mul(decimal.NewFromInt(int64(p.Stock()))))
	}
	return total, nil
}
