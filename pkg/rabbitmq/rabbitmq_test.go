package rabbitmq

import (
	"encoding/json"
	"errors"
	"testing"

	"inventario/internal/events"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type fakeAck struct {
	acked    bool
	nacked   bool
	requeued bool
}

func (f *fakeAck) Ack(bool) error { f.acked = true; return nil }

func (f *fakeAck) Nack(_ bool, requeue bool) error {
	f.nacked = true
	f.requeued = requeue
	return nil
}

func encode(t *testing.T, event events.InventoryEvent) []byte {
	body, err := json.Marshal(event)
	require.NoError(t, err)
	return body
}

func TestProcess_AcksHandledEvent(t *testing.T) {
	var got events.InventoryEvent
	ack := &fakeAck{}

	body := encode(t, events.InventoryEvent{Type: events.InventoryCreated, ProductID: 9, Quantity: 3})
	process(zap.NewNop(), body, "m1", ack, func(e events.InventoryEvent) error {
		got = e
		return nil
	})

	assert.True(t, ack.acked)
	assert.False(t, ack.nacked)
	assert.Equal(t, uint(9), got.ProductID)
}

func TestProcess_RequeuesOnHandlerError(t *testing.T) {
	ack := &fakeAck{}
	body := encode(t, events.InventoryEvent{Type: events.InventoryUpdated})

	process(zap.NewNop(), body, "m2", ack, func(events.InventoryEvent) error {
		return errors.New("boom")
	})

	assert.True(t, ack.nacked)
	assert.True(t, ack.requeued)
}

func TestProcess_DropsMalformedMessage(t *testing.T) {
	ack := &fakeAck{}
	called := false

	process(zap.NewNop(), []byte("{not json"), "m3", ack, func(events.InventoryEvent) error {
		called = true
		return nil
	})

	assert.False(t, called)
	assert.True(t, ack.nacked)
	assert.False(t, ack.requeued)
}

func TestLowStockAlert(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	alert := LowStockAlert(zap.New(core))

	require.NoError(t, alert(events.InventoryEvent{ProductID: 1, Quantity: 2, LowStock: true}))
	require.NoError(t, alert(events.InventoryEvent{ProductID: 2, Quantity: 50}))

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "low stock", entries[0].Message)
	assert.EqualValues(t, 1, entries[0].ContextMap()["product_id"])
}
