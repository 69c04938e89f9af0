// Package events defines the inventory change notifications published by the
// data tier.
package events

import (
	"time"

	"inventario/internal/models"
)

type EventType string

const (
	InventoryCreated EventType = "inventory.created"
	InventoryUpdated EventType = "inventory.updated"
	InventoryDeleted EventType = "inventory.deleted"
)

// InventoryEvent describes a change to one inventory record.
type InventoryEvent struct {
	Type        EventType `json:"type"`
	InventoryID uint      `json:"inventory_id"`
	ProductID   uint      `json:"product_id"`
	Quantity    int       `json:"quantity"`
	MinStock    *int      `json:"min_stock,omitempty"`
	LowStock    bool      `json:"low_stock"`
	OccurredAt  time.Time `json:"occurred_at"`
}

func NewInventoryEvent(t EventType, inv models.Inventory) InventoryEvent {
	return InventoryEvent{
		Type:        t,
		InventoryID: inv.ID,
		ProductID:   inv.ProductID,
		Quantity:    inv.Quantity,
		MinStock:    inv.MinStock,
		LowStock:    inv.IsLowStock(),
		OccurredAt:  time.Now().UTC(),
	}
}

// Publisher delivers inventory events to a broker.
type Publisher interface {
	PublishInventoryEvent(event InventoryEvent) error
}

// NopPublisher discards every event. Used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) PublishInventoryEvent(InventoryEvent) error { return nil }
