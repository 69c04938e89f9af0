package apperrors_test

import (
	"errors"
	"fmt"
	"testing"

	"inventario/internal/apperrors"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	err := apperrors.ProductNotFound("product with ID %d not found", 999)
	assert.Equal(t, apperrors.KindProductNotFound, apperrors.KindOf(err))
	assert.Equal(t, "product with ID 999 not found", err.Error())

	wrapped := fmt.Errorf("lookup: %w", err)
	assert.Equal(t, apperrors.KindProductNotFound, apperrors.KindOf(wrapped))

	assert.Equal(t, apperrors.KindInternal, apperrors.KindOf(errors.New("boom")))
}

func TestSentinelsMatchByKind(t *testing.T) {
	err := apperrors.CategoryNotFound("category 'x' not found")
	assert.True(t, errors.Is(err, apperrors.ErrCategoryNotFound))
	assert.False(t, errors.Is(err, apperrors.ErrProductNotFound))
	assert.False(t, errors.Is(err, apperrors.ErrCommunication))
}

func TestCommunicationKeepsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := apperrors.Communication(cause, "error communicating with the data service")
	assert.True(t, errors.Is(err, cause))
	assert.True(t, errors.Is(err, apperrors.ErrCommunication))
	assert.Equal(t, "error communicating with the data service", err.Error())
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, apperrors.KindInventoryNotFound.IsNotFound())
	assert.False(t, apperrors.KindAlreadyExists.IsNotFound())
}
