package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rabbitmq/amqp091-go"
)

const (
	ExchangeName = "medicine_events"

	OrderSyncQueue     = "institute_order_sync_queue"
	LowStockAlertQueue = "low_stock_alert_queue"

	OrderRoutingPattern = "order.*"
	LowStockRoutingKey  = "inventory.low_stock"
)

// OrderRoutingKey returns the routing key for a status change, e.g. order.delivered.
func OrderRoutingKey(status string) string {
	return "order." + strings.ToLower(status)
}

// OrderEventMessage is published on every status change. Status is the status
// the acting side moved to and selects the routing key.
type OrderEventMessage struct {
	OrderID            uint64    `json:"order_id"`
	Status             string    `json:"status"`
	InstituteID        uint64    `json:"institute_id"`
	ManufacturerID     uint64    `json:"manufacturer_id"`
	MedicineID         uint64    `json:"medicine_id"`
	ManufacturerStatus string    `json:"manufacturer_status"`
	InstituteStatus    string    `json:"institute_status"`
	Reconciled         bool      `json:"reconciled"`
	OccurredAt         time.Time `json:"occurred_at"`
}

type LowStockMessage struct {
	InstituteID  uint64    `json:"institute_id"`
	MedicineID   uint64    `json:"medicine_id"`
	MedicineName string    `json:"medicine_name"`
	Quantity     int64     `json:"quantity"`
	Threshold    int64     `json:"threshold"`
	OccurredAt   time.Time `json:"occurred_at"`
}

// EventPublisher publishes notifications after the authoritative commit.
type EventPublisher interface {
	PublishOrderEvent(ctx context.Context, msg OrderEventMessage) error
	PublishLowStock(ctx context.Context, msg LowStockMessage) error
}

type Publisher struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
}

func dial(host string, port int, user, password string) (*amqp091.Connection, *amqp091.Channel, error) {
	dsn := fmt.Sprintf("amqp://%s:%s@%s:%d/", user, password, host, port)
	conn, err := amqp091.Dial(dsn)
	if err != nil {
		return nil, nil, err
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, nil, err
	}

	if err := declareTopology(channel); err != nil {
		channel.Close()
		conn.Close()
		return nil, nil, err
	}
	return conn, channel, nil
}

// declareTopology is shared by the publisher and the consumer so either side
// can start first.
func declareTopology(channel *amqp091.Channel) error {
	err := channel.ExchangeDeclare(
		ExchangeName, // name
		"topic",      // type
		true,         // durable
		false,        // auto-delete
		false,        // internal
		false,        // no-wait
		nil,          // arguments
	)
	if err != nil {
		return err
	}

	bindings := []struct {
		queue string
		key   string
	}{
		{OrderSyncQueue, OrderRoutingPattern},
		{LowStockAlertQueue, LowStockRoutingKey},
	}
	for _, b := range bindings {
		if _, err := channel.QueueDeclare(
			b.queue, // name
			true,    // durable
			false,   // auto-delete
			false,   // exclusive
			false,   // no-wait
			nil,     // arguments
		); err != nil {
			return err
		}
		if err := channel.QueueBind(b.queue, b.key, ExchangeName, false, nil); err != nil {
			return err
		}
	}
	return nil
}

func NewPublisher(host string, port int, user, password string) (*Publisher, error) {
	conn, channel, err := dial(host, port, user, password)
	if err != nil {
		return nil, err
	}
	return &Publisher{conn: conn, channel: channel}, nil
}

func (p *Publisher) PublishOrderEvent(ctx context.Context, msg OrderEventMessage) error {
	return p.publish(ctx, OrderRoutingKey(msg.Status), msg)
}

func (p *Publisher) PublishLowStock(ctx context.Context, msg LowStockMessage) error {
	return p.publish(ctx, LowStockRoutingKey, msg)
}

func (p *Publisher) publish(ctx context.Context, routingKey string, v interface{}) error {
	body, err := json.Marshal(v)
	if err != nil {
		return err
	}

	return p.channel.PublishWithContext(ctx,
		ExchangeName, // exchange
		routingKey,   // routing key
		false,        // mandatory
		false,        // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			MessageId:    uuid.NewString(),
			Timestamp:    time.Now(),
			Body:         body,
		},
	)
}

func (p *Publisher) Close() error {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		p.conn.Close()
	}
	return nil
}
