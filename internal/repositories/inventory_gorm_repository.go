package repositories

import (
	"inventario/internal/models"

	"gorm.io/gorm"
)

const (
	lowStockCondition  = "quantity <= COALESCE(min_stock, 0)"
	highStockCondition = "quantity > COALESCE(min_stock, 0)"
)

// GORMInventoryRepository is a GORM implementation of InventoryRepository.
type GORMInventoryRepository struct {
	db *gorm.DB
}

func NewGORMInventoryRepository(db *gorm.DB) *GORMInventoryRepository {
	return &GORMInventoryRepository{db: db}
}

func (r *GORMInventoryRepository) query() *gorm.DB {
	return r.db.Preload("Product").Order("id")
}

func (r *GORMInventoryRepository) find(msg string, conds ...interface{}) ([]models.Inventory, error) {
	var inventories []models.Inventory
	if err := r.query().Find(&inventories, conds...).Error; err != nil {
		return nil, translate(err, "%s", msg)
	}
	return inventories, nil
}

func (r *GORMInventoryRepository) GetAll() ([]models.Inventory, error) {
	return r.find("failed to get all inventory")
}

func (r *GORMInventoryRepository) GetByID(id uint) (*models.Inventory, error) {
	var inventory models.Inventory
	if err := r.query().First(&inventory, "id = ?", id).Error; err != nil {
		return nil, translate(err, "inventory with ID %d", id)
	}
	return &inventory, nil
}

func (r *GORMInventoryRepository) GetByProductID(productID uint) (*models.Inventory, error) {
	var inventory models.Inventory
	if err := r.query().First(&inventory, "product_id = ?", productID).Error; err != nil {
		return nil, translate(err, "inventory of product %d", productID)
	}
	return &inventory, nil
}

func (r *GORMInventoryRepository) GetByQuantity(quantity int) ([]models.Inventory, error) {
	return r.find("failed to get inventory by quantity", "quantity = ?", quantity)
}

func (r *GORMInventoryRepository) GetLowStock() ([]models.Inventory, error) {
	return r.find("failed to get low stock inventory", lowStockCondition)
}

func (r *GORMInventoryRepository) GetHighStock() ([]models.Inventory, error) {
	return r.find("failed to get high stock inventory", highStockCondition)
}

func (r *GORMInventoryRepository) Create(inventory *models.Inventory) error {
	if err := r.db.Omit("Product").Create(inventory).Error; err != nil {
		return translate(err, "failed to create inventory")
	}
	return nil
}

func (r *GORMInventoryRepository) Update(inventory *models.Inventory) error {
	err := r.db.Model(&models.Inventory{}).Where("id = ?", inventory.ID).Updates(map[string]interface{}{
		"product_id":   inventory.ProductID,
		"quantity":     inventory.Quantity,
		"min_stock":    inventory.MinStock,
		"last_updated": inventory.LastUpdated,
	}).Error
	if err != nil {
		return translate(err, "failed to update inventory %d", inventory.ID)
	}
	return nil
}

func (r *GORMInventoryRepository) Delete(id uint) error {
	res := r.db.Delete(&models.Inventory{}, "id = ?", id)
	if res.Error != nil {
		return translate(res.Error, "failed to delete inventory %d", id)
	}
	if res.RowsAffected == 0 {
		return translate(gorm.ErrRecordNotFound, "inventory with ID %d", id)
	}
	return nil
}

func (r *GORMInventoryRepository) Exists(id uint) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Inventory{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, translate(err, "failed to check inventory %d", id)
	}
	return count > 0, nil
}
