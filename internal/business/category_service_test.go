package business_test

import (
	"context"
	"testing"

	"inventario/internal/apperrors"
	"inventario/internal/business"
	"inventario/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCategoryService_RejectsBlankName(t *testing.T) {
	client := new(MockDataClient)
	service := business.NewCategoryService(client)
	ctx := context.Background()

	_, err := service.CreateCategory(ctx, dto.CategoryDTO{Name: ""})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = service.UpdateCategory(ctx, 1, dto.CategoryDTO{Name: "   "})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	client.AssertNotCalled(t, "CreateCategory", mock.Anything, mock.Anything)
	client.AssertNotCalled(t, "UpdateCategory", mock.Anything, mock.Anything, mock.Anything)
}

func TestCategoryService_CreateCategory(t *testing.T) {
	client := new(MockDataClient)
	service := business.NewCategoryService(client)
	ctx := context.Background()

	in := dto.CategoryDTO{Name: "Electrónica", Description: "Dispositivos"}
	client.On("CreateCategory", ctx, in).Return(&dto.CategoryDTO{ID: 1, Name: "Electrónica"}, nil).Once()

	got, err := service.CreateCategory(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, uint(1), got.ID)
	client.AssertExpectations(t)
}

func TestCategoryService_UpdateCategory_SetsID(t *testing.T) {
	client := new(MockDataClient)
	service := business.NewCategoryService(client)
	ctx := context.Background()

	client.On("UpdateCategory", ctx, uint(4), dto.CategoryDTO{ID: 4, Name: "Libros"}).
		Return(&dto.CategoryDTO{ID: 4, Name: "Libros"}, nil).Once()

	_, err := service.UpdateCategory(ctx, 4, dto.CategoryDTO{ID: 99, Name: "Libros"})
	require.NoError(t, err)
	client.AssertExpectations(t)
}
