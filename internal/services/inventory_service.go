package services

import (
	"time"

	"inventario/internal/apperrors"
	"inventario/internal/events"
	"inventario/internal/models"
	"inventario/internal/repositories"

	"go.uber.org/zap"
)

// InventoryService handles business logic related to stock records.
type InventoryService struct {
	repo        repositories.InventoryRepository
	productRepo repositories.ProductRepository
	notifier
}

func NewInventoryService(repo repositories.InventoryRepository, productRepo repositories.ProductRepository, publisher events.Publisher, logger *zap.Logger) *InventoryService {
	return &InventoryService{
		repo:        repo,
		productRepo: productRepo,
		notifier:    newNotifier(publisher, logger),
	}
}

func inventoryNotFound(id uint) error {
	return apperrors.InventoryNotFound("inventory with id %d not found", id)
}

func (s *InventoryService) list(inventories []models.Inventory, err error) ([]models.Inventory, error) {
	if err != nil {
		return nil, storageError(err, nil)
	}
	return inventories, nil
}

func (s *InventoryService) GetAllInventory() ([]models.Inventory, error) {
	return s.list(s.repo.GetAll())
}

func (s *InventoryService) GetInventoryByID(id uint) (*models.Inventory, error) {
	inventory, err := s.repo.GetByID(id)
	if err != nil {
		return nil, storageError(err, inventoryNotFound(id))
	}
	return inventory, nil
}

func (s *InventoryService) GetInventoryByProductID(productID uint) (*models.Inventory, error) {
	inventory, err := s.repo.GetByProductID(productID)
	if err != nil {
		return nil, storageError(err, apperrors.InventoryNotFound("inventory for product %d not found", productID))
	}
	return inventory, nil
}

func (s *InventoryService) GetInventoryByQuantity(quantity int) ([]models.Inventory, error) {
	return s.list(s.repo.GetByQuantity(quantity))
}

// GetLowStock returns records with quantity <= min stock (unset min stock is 0).
func (s *InventoryService) GetLowStock() ([]models.Inventory, error) {
	return s.list(s.repo.GetLowStock())
}

// GetHighStock returns records with quantity > min stock (unset min stock is 0).
func (s *InventoryService) GetHighStock() ([]models.Inventory, error) {
	return s.list(s.repo.GetHighStock())
}

func (s *InventoryService) requireProduct(productID uint) error {
	exists, err := s.productRepo.Exists(productID)
	if err != nil {
		return storageError(err, nil)
	}
	if !exists {
		return productNotFound(productID)
	}
	return nil
}

// CreateInventory stores a stock record for an existing product.
func (s *InventoryService) CreateInventory(inventory *models.Inventory) error {
	if err := s.requireProduct(inventory.ProductID); err != nil {
		return err
	}

	inventory.ID = 0
	inventory.LastUpdated = time.Now()
	if err := s.repo.Create(inventory); err != nil {
		return storageError(err, nil)
	}

	s.notify(events.InventoryCreated, *inventory)
	return nil
}

// UpdateInventory replaces the record with the given id and refreshes its
// timestamp.
func (s *InventoryService) UpdateInventory(id uint, inventory *models.Inventory) error {
	exists, err := s.repo.Exists(id)
	if err != nil {
		return storageError(err, nil)
	}
	if !exists {
		return inventoryNotFound(id)
	}
	if err := s.requireProduct(inventory.ProductID); err != nil {
		return err
	}

	inventory.ID = id
	inventory.LastUpdated = time.Now()
	if err := s.repo.Update(inventory); err != nil {
		return storageError(err, inventoryNotFound(id))
	}

	s.notify(events.InventoryUpdated, *inventory)
	return nil
}

func (s *InventoryService) DeleteInventory(id uint) error {
	inventory, err := s.repo.GetByID(id)
	if err != nil {
		return storageError(err, inventoryNotFound(id))
	}
	if err := s.repo.Delete(id); err != nil {
		return storageError(err, inventoryNotFound(id))
	}

	s.notify(events.InventoryDeleted, *inventory)
	return nil
}
