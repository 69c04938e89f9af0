package repositories

import (
	"errors"

	"inventario/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{
		db: db,
	}
}

func (r *GORMProductRepository) query() *gorm.DB {
	return r.db.Preload("Category").Preload("Inventory").Order("products.id")
}

// GetAll retrieves all products from the database.
func (r *GORMProductRepository) GetAll() ([]models.Product, error) {
	var products []models.Product
	if err := r.query().Find(&products).Error; err != nil {
		return nil, translate(err, "failed to get all products")
	}
	return products, nil
}

// GetByID retrieves a single product by its ID from the database.
func (r *GORMProductRepository) GetByID(id uint) (*models.Product, error) {
	var product models.Product
	if err := r.query().First(&product, "products.id = ?", id).Error; err != nil {
		return nil, translate(err, "product with ID %d", id)
	}
	return &product, nil
}

func (r *GORMProductRepository) GetByName(name string) (*models.Product, error) {
	var product models.Product
	if err := r.query().First(&product, "products.name = ?", name).Error; err != nil {
		return nil, translate(err, "product named %q", name)
	}
	return &product, nil
}

func (r *GORMProductRepository) GetByPrice(price decimal.Decimal) ([]models.Product, error) {
	var products []models.Product
	if err := r.query().Where("products.price = ?", price).Find(&products).Error; err != nil {
		return nil, translate(err, "failed to get products by price %s", price)
	}
	return products, nil
}

func (r *GORMProductRepository) GetByCategoryName(name string) ([]models.Product, error) {
	var products []models.Product
	err := r.query().
		Joins("JOIN categories ON categories.id = products.category_id").
		Where("categories.name = ?", name).
		Find(&products).Error
	if err != nil {
		return nil, translate(err, "failed to get products of category %q", name)
	}
	return products, nil
}

// Create inserts the product and its inventory record in one transaction.
func (r *GORMProductRepository) Create(product *models.Product) error {
	if err := r.db.Omit("Category").Create(product).Error; err != nil {
		return translate(err, "failed to create product")
	}
	return nil
}

// Update overwrites name, description, price and category. When the product
// carries an inventory record it is updated, or created if missing.
func (r *GORMProductRepository) Update(product *models.Product) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&models.Product{}).Where("id = ?", product.ID).Updates(map[string]interface{}{
			"name":        product.Name,
			"description": product.Description,
			"price":       product.Price,
			"category_id": product.CategoryID,
		}).Error
		if err != nil {
			return err
		}
		if product.Inventory == nil {
			return nil
		}
		return upsertInventory(tx, product.ID, product.Inventory)
	})
	if err != nil {
		return translate(err, "failed to update product %d", product.ID)
	}

	updated, err := r.GetByID(product.ID)
	if err != nil {
		return err
	}
	*product = *updated
	return nil
}

func upsertInventory(tx *gorm.DB, productID uint, inv *models.Inventory) error {
	inv.ProductID = productID

	var existing models.Inventory
	err := tx.Where("product_id = ?", productID).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		inv.ID = 0
		return tx.Omit("Product").Create(inv).Error
	}
	if err != nil {
		return err
	}

	inv.ID = existing.ID
	return tx.Model(&existing).Updates(map[string]interface{}{
		"quantity":     inv.Quantity,
		"min_stock":    inv.MinStock,
		"last_updated": inv.LastUpdated,
	}).Error
}

// Delete deletes a product and its inventory record.
func (r *GORMProductRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", id).Delete(&models.Inventory{}).Error; err != nil {
			return translate(err, "failed to delete inventory of product %d", id)
		}
		res := tx.Delete(&models.Product{}, "id = ?", id)
		if res.Error != nil {
			return translate(res.Error, "failed to delete product %d", id)
		}
		if res.RowsAffected == 0 {
			return translate(gorm.ErrRecordNotFound, "product with ID %d", id)
		}
		return nil
	})
}

func (r *GORMProductRepository) Exists(id uint) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Product{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, translate(err, "failed to check product %d", id)
	}
	return count > 0, nil
}
