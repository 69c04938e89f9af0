package services

import (
	"errors"

	"inventario/internal/apperrors"
	"inventario/internal/models"
	"inventario/internal/repositories"
)

// CategoryService handles business logic related to categories.
type CategoryService struct {
	repo repositories.CategoryRepository
}

func NewCategoryService(repo repositories.CategoryRepository) *CategoryService {
	return &CategoryService{repo: repo}
}

func categoryNotFound(id uint) error {
	return apperrors.CategoryNotFound("category with id %d not found", id)
}

func (s *CategoryService) GetAllCategories() ([]models.Category, error) {
	categories, err := s.repo.GetAll()
	if err != nil {
		return nil, storageError(err, nil)
	}
	return categories, nil
}

func (s *CategoryService) GetCategoryByID(id uint) (*models.Category, error) {
	category, err := s.repo.GetByID(id)
	if err != nil {
		return nil, storageError(err, categoryNotFound(id))
	}
	return category, nil
}

func (s *CategoryService) GetCategoryByName(name string) (*models.Category, error) {
	category, err := s.repo.GetByName(name)
	if err != nil {
		return nil, storageError(err, apperrors.CategoryNotFound("category with name %q not found", name))
	}
	return category, nil
}

// GetCategoriesWithProducts returns the categories that at least one
// product belongs to.
func (s *CategoryService) GetCategoriesWithProducts() ([]models.Category, error) {
	categories, err := s.repo.GetWithProducts()
	if err != nil {
		return nil, storageError(err, nil)
	}
	return categories, nil
}

func (s *CategoryService) CreateCategory(category *models.Category) error {
	_, err := s.repo.GetByName(category.Name)
	if err == nil {
		return apperrors.AlreadyExists("category with name %q already exists", category.Name)
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		return storageError(err, nil)
	}

	category.ID = 0
	if err := s.repo.Create(category); err != nil {
		return storageError(err, nil)
	}
	return nil
}

func (s *CategoryService) UpdateCategory(id uint, category *models.Category) error {
	exists, err := s.repo.Exists(id)
	if err != nil {
		return storageError(err, nil)
	}
	if !exists {
		return categoryNotFound(id)
	}

	category.ID = id
	if err := s.repo.Update(category); err != nil {
		return storageError(err, categoryNotFound(id))
	}
	return nil
}

// DeleteCategory removes the category. Its products are kept without a
// category.
func (s *CategoryService) DeleteCategory(id uint) error {
	exists, err := s.repo.Exists(id)
	if err != nil {
		return storageError(err, nil)
	}
	if !exists {
		return categoryNotFound(id)
	}
	if err := s.repo.Delete(id); err != nil {
		return storageError(err, categoryNotFound(id))
	}
	return nil
}
