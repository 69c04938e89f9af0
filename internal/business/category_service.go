package business

import (
	"context"
	"strings"

	"inventario/internal/apperrors"
	"inventario/internal/dto"
)

// CategoryService applies category rules before calling the data tier.
type CategoryService struct {
	client CategoryClient
}

func NewCategoryService(client CategoryClient) *CategoryService {
	return &CategoryService{client: client}
}

func validateCategory(category dto.CategoryDTO) error {
	if strings.TrimSpace(category.Name) == "" {
		return apperrors.Validation("category name is required")
	}
	return nil
}

func (s *CategoryService) GetAllCategories(ctx context.Context) ([]dto.CategoryDTO, error) {
	return s.client.GetCategories(ctx)
}

func (s *CategoryService) GetCategoriesWithProducts(ctx context.Context) ([]dto.CategoryDTO, error) {
	return s.client.GetCategoriesWithProducts(ctx)
}

func (s *CategoryService) GetCategoryByID(ctx context.Context, id uint) (*dto.CategoryDTO, error) {
	return s.client.GetCategory(ctx, id)
}

func (s *CategoryService) GetCategoryByName(ctx context.Context, name string) (*dto.CategoryDTO, error) {
	return s.client.GetCategoryByName(ctx, name)
}

func (s *CategoryService) CreateCategory(ctx context.Context, category dto.CategoryDTO) (*dto.CategoryDTO, error) {
	if err := validateCategory(category); err != nil {
		return nil, err
	}
	category.ID = 0
	return s.client.CreateCategory(ctx, category)
}

func (s *CategoryService) UpdateCategory(ctx context.Context, id uint, category dto.CategoryDTO) (*dto.CategoryDTO, error) {
	if err := validateCategory(category); err != nil {
		return nil, err
	}
	category.ID = id
	return s.client.UpdateCategory(ctx, id, category)
}

func (s *CategoryService) DeleteCategory(ctx context.Context, id uint) error {
	return s.client.DeleteCategory(ctx, id)
}
