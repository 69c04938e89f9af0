package rabbitmq

import (
	"encoding/json"
	"fmt"
	"time"

	"inventario/internal/events"

	"github.com/google/uuid"
	amqp "github.com/streadway/amqp"
	"go.uber.org/zap"
)

// InventoryQueue carries inventory change events.
const InventoryQueue = "inventory_events"

// Client holds the RabbitMQ connection and channel.
type Client struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	logger  *zap.Logger
}

// Config holds RabbitMQ connection details.
type Config struct {
	URL    string
	Logger *zap.Logger
}

// NewClient connects to RabbitMQ, opens a channel and declares the
// inventory queue.
func NewClient(cfg Config) (*Client, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	if _, err := declareInventoryQueue(ch); err != nil {
		ch.Close()
		conn.Close()
		return nil, err
	}

	logger.Info("RabbitMQ client connected", zap.String("queue", InventoryQueue))

	return &Client{
		conn:    conn,
		channel: ch,
		logger:  logger,
	}, nil
}

func declareInventoryQueue(ch *amqp.Channel) (amqp.Queue, error) {
	q, err := ch.QueueDeclare(
		InventoryQueue,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,
	)
	if err != nil {
		return q, fmt.Errorf("failed to declare %s: %w", InventoryQueue, err)
	}
	return q, nil
}

// Close closes the RabbitMQ connection and channel.
func (c *Client) Close() error {
	var errs []error
	if c.channel != nil {
		if err := c.channel.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close channel: %w", err))
		}
	}
	if c.conn != nil {
		if err := c.conn.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close connection: %w", err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("errors closing RabbitMQ client: %v", errs)
	}
	return nil
}

// PublishInventoryEvent publishes event as a persistent JSON message.
func (c *Client) PublishInventoryEvent(event events.InventoryEvent) error {
	if c.channel == nil {
		return fmt.Errorf("RabbitMQ channel is not available")
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal inventory event: %w", err)
	}

	err = c.channel.Publish(
		"",             // default exchange
		InventoryQueue, // routing key
		false,          // mandatory
		false,          // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Type:         string(event.Type),
			MessageId:    uuid.NewString(),
			Body:         body,
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
		})
	if err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}

	c.logger.Debug("published inventory event",
		zap.String("type", string(event.Type)),
		zap.Uint("product_id", event.ProductID))
	return nil
}

// ConsumeInventoryEvents decodes messages from the inventory queue and
// passes them to handler in a background goroutine. Messages that fail to
// decode are dropped; handler errors requeue the message.
func (c *Client) ConsumeInventoryEvents(handler func(events.InventoryEvent) error) error {
	if c.channel == nil {
		return fmt.Errorf("RabbitMQ channel is not available for consumption")
	}

	queue, err := declareInventoryQueue(c.channel)
	if err != nil {
		return err
	}

	msgs, err := c.channel.Consume(
		queue.Name,
		"",    // consumer tag
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,
	)
	if err != nil {
		return fmt.Errorf("failed to register consumer: %w", err)
	}

	go func() {
		for msg := range msgs {
			c.handleDelivery(msg, handler)
		}
	}()

	return nil
}

type acknowledger interface {
	Ack(multiple bool) error
	Nack(multiple, requeue bool) error
}

func (c *Client) handleDelivery(msg amqp.Delivery, handler func(events.InventoryEvent) error) {
	process(c.logger, msg.Body, msg.MessageId, msg, handler)
}

func process(logger *zap.Logger, body []byte, id string, ack acknowledger, handler func(events.InventoryEvent) error) {
	var event events.InventoryEvent
	if err := json.Unmarshal(body, &event); err != nil {
		logger.Error("dropping malformed inventory event", zap.String("message_id", id), zap.Error(err))
		if nackErr := ack.Nack(false, false); nackErr != nil {
			logger.Error("failed to nack message", zap.String("message_id", id), zap.Error(nackErr))
		}
		return
	}

	if err := handler(event); err != nil {
		logger.Error("failed to process inventory event", zap.String("message_id", id), zap.Error(err))
		if nackErr := ack.Nack(false, true); nackErr != nil {
			logger.Error("failed to nack message", zap.String("message_id", id), zap.Error(nackErr))
		}
		return
	}

	if ackErr := ack.Ack(false); ackErr != nil {
		logger.Error("failed to ack message", zap.String("message_id", id), zap.Error(ackErr))
	}
}

// LowStockAlert returns a handler that logs a warning for every event
// reporting low stock.
func LowStockAlert(logger *zap.Logger) func(events.InventoryEvent) error {
	return func(event events.InventoryEvent) error {
		if event.LowStock {
			logger.Warn("low stock",
				zap.Uint("product_id", event.ProductID),
				zap.Int("quantity", event.Quantity),
				zap.String("event", string(event.Type)))
		}
		return nil
	}
}
