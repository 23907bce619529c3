package rabbitmq

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/muhammadheryan/medsupply/utils/logger"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

type deliveryAction int

const (
	actionAck deliveryAction = iota
	actionRequeue
	actionDrop
)

// Consumer forwards queued events to the institute notification webhook.
type Consumer struct {
	conn       *amqp091.Connection
	channel    *amqp091.Channel
	webhookURL string
	apiKey     string
	client     *http.Client
}

func NewConsumer(host string, port int, user, password, webhookURL, apiKey string, timeout time.Duration) (*Consumer, error) {
	conn, channel, err := dial(host, port, user, password)
	if err != nil {
		return nil, err
	}

	return &Consumer{
		conn:       conn,
		channel:    channel,
		webhookURL: webhookURL,
		apiKey:     apiKey,
		client:     &http.Client{Timeout: timeout},
	}, nil
}

func (c *Consumer) Start(ctx context.Context) error {
	// one message at a time per queue
	if err := c.channel.Qos(1, 0, false); err != nil {
		return err
	}

	for _, queue := range []string{OrderSyncQueue, LowStockAlertQueue} {
		msgs, err := c.channel.Consume(
			queue,
			"",    // consumer tag
			false, // auto-ack
			false, // exclusive
			false, // no-local
			false, // no-wait
			nil,   // arguments
		)
		if err != nil {
			return err
		}
		go c.loop(ctx, queue, msgs)
	}
	return nil
}

func (c *Consumer) loop(ctx context.Context, queue string, msgs <-chan amqp091.Delivery) {
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-msgs:
			if !ok {
				logger.Warn("[Consumer] channel closed", zap.String("queue", queue))
				return
			}

			switch c.handle(ctx, queue, msg.Body) {
			case actionAck:
				_ = msg.Ack(false)
				logger.Info("[Consumer] event forwarded", zap.String("queue", queue), zap.String("message_id", msg.MessageId))
			case actionRequeue:
				_ = msg.Nack(false, true)
			case actionDrop:
				_ = msg.Ack(false)
			}
		}
	}
}

// handle validates the body against the queue's message type and forwards it.
func (c *Consumer) handle(ctx context.Context, queue string, body []byte) deliveryAction {
	var path string
	switch queue {
	case OrderSyncQueue:
		var msg OrderEventMessage
		if err := json.Unmarshal(body, &msg); err != nil || msg.OrderID == 0 {
			logger.Error("[Consumer] undecodable order event, dropping", zap.String("body", string(body)))
			return actionDrop
		}
		path = "/orders"
	case LowStockAlertQueue:
		var msg LowStockMessage
		if err := json.Unmarshal(body, &msg); err != nil || msg.InstituteID == 0 {
			logger.Error("[Consumer] undecodable low stock event, dropping", zap.String("body", string(body)))
			return actionDrop
		}
		path = "/low-stock"
	default:
		return actionDrop
	}

	if err := c.forward(ctx, path, body); err != nil {
		logger.Error("[Consumer] forward event", zap.String("queue", queue), zap.String("error", err.Error()))
		return actionRequeue
	}
	return actionAck
}

func (c *Consumer) forward(ctx context.Context, path string, body []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.webhookURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}

	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.apiKey))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Internal-Service", "medicine-event-consumer")

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)

	// 4xx means the receiver rejected the event for good; retrying cannot help
	if resp.StatusCode >= 500 {
		return fmt.Errorf("webhook returned status %d: %s", resp.StatusCode, string(respBody))
	}
	if resp.StatusCode >= 400 {
		logger.Warn("[Consumer] webhook rejected event", zap.Int("status", resp.StatusCode), zap.String("path", path))
	}
	return nil
}

func (c *Consumer) Close() error {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		c.conn.Close()
	}
	return nil
}
