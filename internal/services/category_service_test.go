package services_test

import (
	"fmt"
	"testing"

	"inventario/internal/apperrors"
	"inventario/internal/models"
	"inventario/internal/repositories"
	"inventario/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCategoryService_CreateCategory_Twice(t *testing.T) {
	mockRepo := new(MockCategoryRepository)
	service := services.NewCategoryService(mockRepo)

	first := &models.Category{Name: "Electrónica"}
	mockRepo.On("GetByName", "Electrónica").Return(nil, notFoundErr("category")).Once()
	mockRepo.On("Create", first).Run(func(args mock.Arguments) {
		args.Get(0).(*models.Category).ID = 1
	}).Return(nil).Once()

	err := service.CreateCategory(first)
	assert.NoError(t, err)
	assert.Equal(t, uint(1), first.ID)

	mockRepo.On("GetByName", "Electrónica").Return(&models.Category{ID: 1, Name: "Electrónica"}, nil).Once()
	err = service.CreateCategory(&models.Category{Name: "Electrónica"})
	assert.ErrorIs(t, err, apperrors.ErrAlreadyExists)
	mockRepo.AssertNumberOfCalls(t, "Create", 1)
	mockRepo.AssertExpectations(t)
}

func TestCategoryService_DuplicateOnWriteIsAlreadyExists(t *testing.T) {
	mockRepo := new(MockCategoryRepository)
	service := services.NewCategoryService(mockRepo)

	c := &models.Category{Name: "Libros"}
	mockRepo.On("Exists", uint(2)).Return(true, nil).Once()
	mockRepo.On("Update", c).Return(fmt.Errorf("category: %w", repositories.ErrDuplicate)).Once()

	err := service.UpdateCategory(2, c)
	assert.ErrorIs(t, err, apperrors.ErrAlreadyExists)
}

func TestCategoryService_GetByName(t *testing.T) {
	mockRepo := new(MockCategoryRepository)
	service := services.NewCategoryService(mockRepo)

	mockRepo.On("GetByName", "Hogar").Return(nil, notFoundErr("category")).Once()

	_, err := service.GetCategoryByName("Hogar")
	assert.ErrorIs(t, err, apperrors.ErrCategoryNotFound)
	assert.Contains(t, err.Error(), "Hogar")
}

func TestCategoryService_UpdateAndDeleteMissing(t *testing.T) {
	mockRepo := new(MockCategoryRepository)
	service := services.NewCategoryService(mockRepo)

	mockRepo.On("Exists", uint(7)).Return(false, nil).Twice()

	err := service.UpdateCategory(7, &models.Category{Name: "X"})
	assert.ErrorIs(t, err, apperrors.ErrCategoryNotFound)

	err = service.DeleteCategory(7)
	assert.ErrorIs(t, err, apperrors.ErrCategoryNotFound)

	mockRepo.AssertNotCalled(t, "Update", mock.Anything)
	mockRepo.AssertNotCalled(t, "Delete", mock.Anything)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestCategoryService_GetCategoriesWithProducts(t *testing.T) {
	mockRepo := new(MockCategoryRepository)
	service := services.NewCategoryService(mockRepo)

	expected := []models.Category{{ID: 1, Name: "Electrónica"}}
	mockRepo.On("GetWithProducts").Return(expected, nil).Once()

	categories, err := service.GetCategoriesWithProducts()
	assert.NoError(t, err)
	assert.Equal(t, expected, categories)
}
