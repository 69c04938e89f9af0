package repositories

import (
	"inventario/internal/models"

	"gorm.io/gorm"
)

// GORMCategoryRepository is a GORM implementation of CategoryRepository.
type GORMCategoryRepository struct {
	db *gorm.DB
}

func NewGORMCategoryRepository(db *gorm.DB) *GORMCategoryRepository {
	return &GORMCategoryRepository{db: db}
}

func (r *GORMCategoryRepository) GetAll() ([]models.Category, error) {
	var categories []models.Category
	if err := r.db.Order("id").Find(&categories).Error; err != nil {
		return nil, translate(err, "failed to get all categories")
	}
	return categories, nil
}

func (r *GORMCategoryRepository) GetByID(id uint) (*models.Category, error) {
	var category models.Category
	if err := r.db.First(&category, "id = ?", id).Error; err != nil {
		return nil, translate(err, "category with ID %d", id)
	}
	return &category, nil
}

func (r *GORMCategoryRepository) GetByName(name string) (*models.Category, error) {
	var category models.Category
	if err := r.db.First(&category, "name = ?", name).Error; err != nil {
		return nil, translate(err, "category named %q", name)
	}
	return &category, nil
}

func (r *GORMCategoryRepository) GetWithProducts() ([]models.Category, error) {
	var categories []models.Category
	err := r.db.
		Where("EXISTS (SELECT 1 FROM products WHERE products.category_id = categories.id)").
		Order("id").
		Find(&categories).Error
	if err != nil {
		return nil, translate(err, "failed to get categories with products")
	}
	return categories, nil
}

func (r *GORMCategoryRepository) Create(category *models.Category) error {
	if err := r.db.Create(category).Error; err != nil {
		return translate(err, "failed to create category")
	}
	return nil
}

func (r *GORMCategoryRepository) Update(category *models.Category) error {
	err := r.db.Model(&models.Category{}).Where("id = ?", category.ID).Updates(map[string]interface{}{
		"name":        category.Name,
		"description": category.Description,
	}).Error
	if err != nil {
		return translate(err, "failed to update category %d", category.ID)
	}
	return nil
}

// Delete detaches the category's products before removing it.
func (r *GORMCategoryRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&models.Product{}).Where("category_id = ?", id).Update("category_id", nil).Error
		if err != nil {
			return translate(err, "failed to detach products of category %d", id)
		}
		res := tx.Delete(&models.Category{}, "id = ?", id)
		if res.Error != nil {
			return translate(res.Error, "failed to delete category %d", id)
		}
		if res.RowsAffected == 0 {
			return translate(gorm.ErrRecordNotFound, "category with ID %d", id)
		}
		return nil
	})
}

func (r *GORMCategoryRepository) Exists(id uint) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Category{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, translate(err, "failed to check category %d", id)
	}
	return count > 0, nil
}
