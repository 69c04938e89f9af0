package repositories

import (
	"errors"

	"inventario/internal/models"

	"github.com/shopspring/decimal"
)

var (
	// ErrNotFound is returned by lookups that expect exactly one row.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when a write violates a unique constraint.
	ErrDuplicate = errors.New("duplicate key")
)

// ProductRepository defines the interface for product data access.
// Reads return products with their category and inventory attached.
type ProductRepository interface {
	GetAll() ([]models.Product, error)
	GetByID(id uint) (*models.Product, error)
	GetByName(name string) (*models.Product, error)
	GetByPrice(price decimal.Decimal) ([]models.Product, error)
	GetByCategoryName(name string) ([]models.Product, error)
	// Create stores the product and, when present, its inventory record.
	Create(product *models.Product) error
	// Update replaces the mutable fields of the product with the given ID.
	// A non-nil Inventory is written alongside it.
	Update(product *models.Product) error
	// Delete removes the product and its inventory record.
	Delete(id uint) error
	Exists(id uint) (bool, error)
}

// CategoryRepository defines the interface for category data access.
type CategoryRepository interface {
	GetAll() ([]models.Category, error)
	GetByID(id uint) (*models.Category, error)
	GetByName(name string) (*models.Category, error)
	// GetWithProducts returns categories referenced by at least one product.
	GetWithProducts() ([]models.Category, error)
	Create(category *models.Category) error
	Update(category *models.Category) error
	// Delete removes the category and detaches its products.
	Delete(id uint) error
	Exists(id uint) (bool, error)
}

// InventoryRepository defines the interface for inventory data access.
// A missing minimum stock counts as 0 in the stock predicates.
type InventoryRepository interface {
	GetAll() ([]models.Inventory, error)
	GetByID(id uint) (*models.Inventory, error)
	GetByProductID(productID uint) (*models.Inventory, error)
	GetByQuantity(quantity int) ([]models.Inventory, error)
	// GetLowStock returns records with quantity <= min stock.
	GetLowStock() ([]models.Inventory, error)
	// GetHighStock returns records with quantity > min stock.
	GetHighStock() ([]models.Inventory, error)
	Create(inventory *models.Inventory) error
	Update(inventory *models.Inventory) error
	Delete(id uint) error
	Exists(id uint) (bool, error)
}
