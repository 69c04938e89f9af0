package services

import (
	"errors"

	"inventario/internal/apperrors"
	"inventario/internal/events"
	"inventario/internal/models"
	"inventario/internal/repositories"

	"go.uber.org/zap"
)

// storageError converts a repository error into an application error.
// notFound, when set, is returned as is for a missing row.
func storageError(err error, notFound error) error {
	switch {
	case notFound != nil && errors.Is(err, repositories.ErrNotFound):
		return notFound
	case errors.Is(err, repositories.ErrDuplicate):
		return apperrors.AlreadyExists("%v", err)
	default:
		return apperrors.Internal(err, "%v", err)
	}
}

// notifier publishes inventory events. Failures are logged and never
// reach the caller: the write they describe has already been committed.
type notifier struct {
	publisher events.Publisher
	logger    *zap.Logger
}

func newNotifier(publisher events.Publisher, logger *zap.Logger) notifier {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return notifier{publisher: publisher, logger: logger}
}

func (n notifier) notify(t events.EventType, inv models.Inventory) {
	event := events.NewInventoryEvent(t, inv)
	if err := n.publisher.PublishInventoryEvent(event); err != nil {
		n.logger.Error("failed to publish inventory event",
			zap.String("type", string(t)),
			zap.Uint("inventory_id", inv.ID),
			zap.Uint("product_id", inv.ProductID),
			zap.Error(err))
	}
}
