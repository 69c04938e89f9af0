package business

import (
	"context"

	"inventario/internal/apperrors"
	"inventario/internal/dto"
)

// InventoryService applies stock rules before calling the data tier.
type InventoryService struct {
	client InventoryClient
}

func NewInventoryService(client InventoryClient) *InventoryService {
	return &InventoryService{client: client}
}

// validateInventory checks quantity and minimum stock only when present.
func validateInventory(req dto.InventoryRequest) error {
	if req.ProductID == 0 {
		return apperrors.Validation("product_id is required")
	}
	if req.Quantity != nil && *req.Quantity < 0 {
		return apperrors.Validation("quantity must be zero or greater")
	}
	if req.MinStock != nil && *req.MinStock < 0 {
		return apperrors.Validation("minimum stock must be zero or greater")
	}
	return nil
}

func (s *InventoryService) GetAllInventory(ctx context.Context) ([]dto.InventoryDTO, error) {
	return s.client.GetInventories(ctx)
}

func (s *InventoryService) GetLowStock(ctx context.Context) ([]dto.InventoryDTO, error) {
	return s.client.GetLowStockInventory(ctx)
}

func (s *InventoryService) GetHighStock(ctx context.Context) ([]dto.InventoryDTO, error) {
	return s.client.GetHighStockInventory(ctx)
}

func (s *InventoryService) GetInventoryByQuantity(ctx context.Context, quantity int) ([]dto.InventoryDTO, error) {
	if quantity < 0 {
		return nil, apperrors.Validation("quantity must be zero or greater")
	}
	return s.client.GetInventoryByQuantity(ctx, quantity)
}

func (s *InventoryService) GetInventoryByID(ctx context.Context, id uint) (*dto.InventoryDTO, error) {
	return s.client.GetInventory(ctx, id)
}

func (s *InventoryService) GetInventoryByProductID(ctx context.Context, productID uint) (*dto.InventoryDTO, error) {
	return s.client.GetInventoryByProduct(ctx, productID)
}

func (s *InventoryService) CreateInventory(ctx context.Context, req dto.InventoryRequest) (*dto.InventoryDTO, error) {
	if err := validateInventory(req); err != nil {
		return nil, err
	}
	return s.client.CreateInventory(ctx, req.ToInventory())
}

func (s *InventoryService) UpdateInventory(ctx context.Context, id uint, req dto.InventoryRequest) (*dto.InventoryDTO, error) {
	if err := validateInventory(req); err != nil {
		return nil, err
	}
	inv := req.ToInventory()
	inv.ID = id
	return s.client.UpdateInventory(ctx, id, inv)
}

func (s *InventoryService) DeleteInventory(ctx context.Context, id uint) error {
	return s.client.DeleteInventory(ctx, id)
}
