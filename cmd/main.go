package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	actorapp "github.com/muhammadheryan/medsupply/application/actor"
	catalogapp "github.com/muhammadheryan/medsupply/application/catalog"
	inventoryapp "github.com/muhammadheryan/medsupply/application/inventory"
	orderapp "github.com/muhammadheryan/medsupply/application/order"
	prescriptionapp "github.com/muhammadheryan/medsupply/application/prescription"
	reconciliationapp "github.com/muhammadheryan/medsupply/application/reconciliation"
	"github.com/muhammadheryan/medsupply/cmd/config"
	redisclient "github.com/muhammadheryan/medsupply/cmd/redis"
	_ "github.com/muhammadheryan/medsupply/docs"
	"github.com/muhammadheryan/medsupply/migration"
	inventoryRepo "github.com/muhammadheryan/medsupply/repository/inventory"
	masterRepo "github.com/muhammadheryan/medsupply/repository/master"
	orderRepo "github.com/muhammadheryan/medsupply/repository/order"
	prescriptionRepo "github.com/muhammadheryan/medsupply/repository/prescription"
	redisRepo "github.com/muhammadheryan/medsupply/repository/redis"
	txRepo "github.com/muhammadheryan/medsupply/repository/tx"
	"github.com/muhammadheryan/medsupply/thirdparty/rabbitmq"
	"github.com/muhammadheryan/medsupply/transport"
	"github.com/muhammadheryan/medsupply/utils/logger"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

// @title MEDSUPPLY API
// @version 1.0
// @description Medicine ordering, delivery reconciliation and dispensing between institutes and manufacturers
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize global logger
	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting server", zap.String("env", cfg.Environment), zap.String("db_driver", cfg.Database.Driver))

	// Connect to database
	db, err := sqlx.Connect(cfg.Database.Driver, cfg.GetDSN())
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}
	defer db.Close()

	// Set database connection pool settings
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)
	if cfg.Database.Driver == "sqlite" {
		db.SetMaxOpenConns(1)
	}

	if cfg.Database.AutoMigrate {
		if err := migration.Run(db); err != nil {
			logger.Fatal("err migrate db", zap.Error(err))
		}
	}

	// Initialize Redis client
	if cfg.Redis.Enabled {
		if err := redisclient.New(cfg); err != nil {
			logger.Fatal("err connect redis", zap.Error(err))
		}
		defer func() {
			_ = redisclient.Close()
		}()
	}

	// Event publisher stays a nil interface when disabled so apps skip publishing
	var publisher rabbitmq.EventPublisher
	if cfg.RabbitMQ.Enabled {
		p, err := rabbitmq.NewPublisher(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password)
		if err != nil {
			logger.Fatal("err connect rabbitmq", zap.Error(err))
		}
		defer func() {
			_ = p.Close()
		}()
		publisher = p
	}

	// Initialize repositories
	TxRepo := txRepo.NewTxRepository(db)
	OrderRepo := orderRepo.NewOrderRepository(db)
	InventoryRepo := inventoryRepo.NewInventoryRepository(db)
	MasterRepo := masterRepo.NewMasterRepository(db)
	PrescriptionRepo := prescriptionRepo.NewPrescriptionRepository(db)
	RedisRepo := redisRepo.NewRepository()

	// Initialize application layers
	ReconciliationApp := reconciliationapp.NewReconciliationApp(OrderRepo, InventoryRepo)
	OrderApp := orderapp.NewOrderApp(cfg, TxRepo, OrderRepo, MasterRepo, ReconciliationApp, RedisRepo, publisher)
	PrescriptionApp := prescriptionapp.NewPrescriptionApp(cfg, TxRepo, InventoryRepo, PrescriptionRepo, MasterRepo, RedisRepo, publisher)
	InventoryApp := inventoryapp.NewInventoryApp(cfg, InventoryRepo, RedisRepo)
	CatalogApp := catalogapp.NewCatalogApp(MasterRepo)
	ActorApp := actorapp.NewActorApp(cfg, MasterRepo, RedisRepo)

	httpTransport := transport.NewTransport(transport.Apps{
		Actor:        ActorApp,
		Order:        OrderApp,
		Prescription: PrescriptionApp,
		Inventory:    InventoryApp,
		Catalog:      CatalogApp,
	}, cfg.Auth.InternalAPIKey)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("failed server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("failed graceful shutdown", zap.Error(err))
	}
}
