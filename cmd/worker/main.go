package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/muhammadheryan/medsupply/cmd/config"
	"github.com/muhammadheryan/medsupply/thirdparty/rabbitmq"
	"github.com/muhammadheryan/medsupply/utils/logger"
	"go.uber.org/zap"
)

// worker drains the event queues and forwards each event to the institute
// notification webhook.
func main() {
	cfg := config.Load()

	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		panic(err)
	}
	defer logger.Close()

	if cfg.Notification.WebhookURL == "" {
		logger.Fatal("INSTITUTE_WEBHOOK_URL is required")
	}

	consumer, err := rabbitmq.NewConsumer(
		cfg.RabbitMQ.Host,
		cfg.RabbitMQ.Port,
		cfg.RabbitMQ.User,
		cfg.RabbitMQ.Password,
		cfg.Notification.WebhookURL,
		cfg.Auth.InternalAPIKey,
		cfg.Notification.Timeout,
	)
	if err != nil {
		logger.Fatal("err connect rabbitmq", zap.Error(err))
	}
	defer func() {
		_ = consumer.Close()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := consumer.Start(ctx); err != nil {
		logger.Fatal("err start consumer", zap.Error(err))
	}
	logger.Info("Worker running",
		zap.String("webhook", cfg.Notification.WebhookURL),
		zap.Strings("queues", []string{rabbitmq.OrderSyncQueue, rabbitmq.LowStockAlertQueue}))

	<-ctx.Done()
	logger.Info("Shutting down worker")
}
