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

func TestInventoryService_RejectsNegativeValues(t *testing.T) {
	cases := map[string]dto.InventoryRequest{
		"negative quantity":  {ProductID: 1, Quantity: intPtr(-1)},
		"negative min stock": {ProductID: 1, Quantity: intPtr(3), MinStock: intPtr(-1)},
		"missing product":    {Quantity: intPtr(3)},
	}

	for name, req := range cases {
		t.Run(name, func(t *testing.T) {
			client := new(MockDataClient)
			service := business.NewInventoryService(client)

			_, err := service.CreateInventory(context.Background(), req)
			assert.ErrorIs(t, err, apperrors.ErrValidation)

			_, err = service.UpdateInventory(context.Background(), 1, req)
			assert.ErrorIs(t, err, apperrors.ErrValidation)

			client.AssertNotCalled(t, "CreateInventory", mock.Anything, mock.Anything)
			client.AssertNotCalled(t, "UpdateInventory", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestInventoryService_AbsentValuesAreNotChecked(t *testing.T) {
	client := new(MockDataClient)
	service := business.NewInventoryService(client)
	ctx := context.Background()

	client.On("CreateInventory", ctx, dto.InventoryDTO{ProductID: 2}).
		Return(&dto.InventoryDTO{ID: 1, ProductID: 2}, nil).Once()

	got, err := service.CreateInventory(ctx, dto.InventoryRequest{ProductID: 2})
	require.NoError(t, err)
	assert.Equal(t, uint(1), got.ID)
	client.AssertExpectations(t)
}

func TestInventoryService_UpdateInventory(t *testing.T) {
	client := new(MockDataClient)
	service := business.NewInventoryService(client)
	ctx := context.Background()

	client.On("UpdateInventory", ctx, uint(8), mock.MatchedBy(func(inv dto.InventoryDTO) bool {
		return inv.ID == 8 && inv.ProductID == 2 && inv.Quantity == 15
	})).Return(&dto.InventoryDTO{ID: 8, ProductID: 2, Quantity: 15}, nil).Once()

	got, err := service.UpdateInventory(ctx, 8, dto.InventoryRequest{ProductID: 2, Quantity: intPtr(15)})
	require.NoError(t, err)
	assert.Equal(t, 15, got.Quantity)
	client.AssertExpectations(t)
}

func TestInventoryService_GetInventoryByQuantity(t *testing.T) {
	client := new(MockDataClient)
	service := business.NewInventoryService(client)
	ctx := context.Background()

	_, err := service.GetInventoryByQuantity(ctx, -3)
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	client.On("GetInventoryByQuantity", ctx, 10).Return([]dto.InventoryDTO{{ID: 1, Quantity: 10}}, nil).Once()
	got, err := service.GetInventoryByQuantity(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}
