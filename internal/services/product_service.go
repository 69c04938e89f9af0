package services

import (
	"errors"
	"time"

	"inventario/internal/apperrors"
	"inventario/internal/events"
	"inventario/internal/models"
	"inventario/internal/repositories"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ProductService handles business logic related to products.
type ProductService struct {
	repo repositories.ProductRepository
	notifier
}

// NewProductService creates a new ProductService. publisher and logger may
// be nil.
func NewProductService(repo repositories.ProductRepository, publisher events.Publisher, logger *zap.Logger) *ProductService {
	return &ProductService{
		repo:     repo,
		notifier: newNotifier(publisher, logger),
	}
}

func productNotFound(id uint) error {
	return apperrors.ProductNotFound("product with id %d not found", id)
}

// GetAllProducts retrieves all products.
func (s *ProductService) GetAllProducts() ([]models.Product, error) {
	products, err := s.repo.GetAll()
	if err != nil {
		return nil, storageError(err, nil)
	}
	return products, nil
}

// GetProductByID retrieves a single product by its ID.
func (s *ProductService) GetProductByID(id uint) (*models.Product, error) {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, storageError(err, productNotFound(id))
	}
	return product, nil
}

func (s *ProductService) GetProductByName(name string) (*models.Product, error) {
	product, err := s.repo.GetByName(name)
	if err != nil {
		return nil, storageError(err, apperrors.ProductNotFound("product with name %q not found", name))
	}
	return product, nil
}

func (s *ProductService) GetProductsByPrice(price decimal.Decimal) ([]models.Product, error) {
	products, err := s.repo.GetByPrice(price)
	if err != nil {
		return nil, storageError(err, nil)
	}
	return products, nil
}

func (s *ProductService) GetProductsByCategory(categoryName string) ([]models.Product, error) {
	products, err := s.repo.GetByCategoryName(categoryName)
	if err != nil {
		return nil, storageError(err, nil)
	}
	return products, nil
}

// CreateProduct stores a new product, rejecting duplicate names. An attached
// inventory record is stored with it.
func (s *ProductService) CreateProduct(product *models.Product) error {
	_, err := s.repo.GetByName(product.Name)
	if err == nil {
		return apperrors.AlreadyExists("product with name %q already exists", product.Name)
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		return storageError(err, nil)
	}

	product.ID = 0
	if product.Inventory != nil {
		product.Inventory.LastUpdated = time.Now()
	}
	if err := s.repo.Create(product); err != nil {
		return storageError(err, nil)
	}

	if product.Inventory != nil {
		s.notify(events.InventoryCreated, *product.Inventory)
	}
	return nil
}

// UpdateProduct replaces the product with the given id. It never creates a
// product that does not exist.
func (s *ProductService) UpdateProduct(id uint, product *models.Product) error {
	exists, err := s.repo.Exists(id)
	if err != nil {
		return storageError(err, nil)
	}
	if !exists {
		return productNotFound(id)
	}

	product.ID = id
	if product.Inventory != nil {
		product.Inventory.LastUpdated = time.Now()
	}
	if err := s.repo.Update(product); err != nil {
		return storageError(err, productNotFound(id))
	}

	if product.Inventory != nil {
		s.notify(events.InventoryUpdated, *product.Inventory)
	}
	return nil
}

// DeleteProduct deletes a product and its inventory record, announcing the
// removed inventory.
func (s *ProductService) DeleteProduct(id uint) error {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return storageError(err, productNotFound(id))
	}
	if err := s.repo.Delete(id); err != nil {
		return storageError(err, productNotFound(id))
	}

	if product.Inventory != nil {
		s.notify(events.InventoryDeleted, *product.Inventory)
	}
	return nil
}

// GetLowStockProducts returns products whose inventory is at or below its
// minimum stock. Products without inventory are skipped.
func (s *ProductService) GetLowStockProducts() ([]models.Product, error) {
	products, err := s.GetAllProducts()
	if err != nil {
		return nil, err
	}

	low := make([]models.Product, 0)
	for _, p := range products {
		if p.IsLowStock() {
			low = append(low, p)
		}
	}
	return low, nil
}

// GetTotalInventoryValue sums price * quantity over all products.
func (s *ProductService) GetTotalInventoryValue() (decimal.Decimal, error) {
	products, err := s.GetAllProducts()
	if err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero
	for i := range products {
		total = total.Add(products[i].StockValue())
	}
	return total, nil
}
