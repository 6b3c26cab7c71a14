package main

import (
	"net/http"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	authapp "github.com/mahmudhasan/clothing-shop/application/auth"
	orderapp "github.com/mahmudhasan/clothing-shop/application/order"
	productapp "github.com/mahmudhasan/clothing-shop/application/product"
	"github.com/mahmudhasan/clothing-shop/cmd/config"
	redisclient "github.com/mahmudhasan/clothing-shop/cmd/redis"
	_ "github.com/mahmudhasan/clothing-shop/docs"
	auditRepo "github.com/mahmudhasan/clothing-shop/repository/auditlog"
	orderRepo "github.com/mahmudhasan/clothing-shop/repository/order"
	productRepo "github.com/mahmudhasan/clothing-shop/repository/product"
	redisRepo "github.com/mahmudhasan/clothing-shop/repository/redis"
	txRepo "github.com/mahmudhasan/clothing-shop/repository/tx"
	"github.com/mahmudhasan/clothing-shop/thirdparty/rabbitmq"
	"github.com/mahmudhasan/clothing-shop/thirdparty/storage"
	"github.com/mahmudhasan/clothing-shop/transport"
	"github.com/mahmudhasan/clothing-shop/utils/logger"
	"go.uber.org/zap"
)

// @title CLOTHING SHOP API
// @version 1.0
// @description Clothing shop backend API Documentation
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize global logger
	if err := logger.Init(cfg.Environment); err != nil {
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting server", zap.String("env", cfg.Environment))

	// Connect to database
	db, err := sqlx.Connect("mysql", cfg.GetDSN())
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}

	// Initialize Redis client
	if err := redisclient.New(cfg); err != nil {
		logger.Fatal("err connect redis", zap.Error(err))
	}
	defer func() {
		_ = redisclient.Close()
	}()

	// Set database connection pool settings
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	// Order events are fire-and-forget; the API stays up without the broker
	publisher, err := rabbitmq.NewPublisher(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password)
	if err != nil {
		logger.Warn("err connect rabbitmq, order events disabled", zap.Error(err))
		publisher = nil
	} else {
		defer func() {
			_ = publisher.Close()
		}()
	}

	// Image blob storage
	blobStorage := storage.NewDiskStorage(cfg.Storage.UploadDir, cfg.Storage.BaseURL)

	// Initialize repositories
	TxRepo := txRepo.NewTxRepository(db)
	OrderRepo := orderRepo.NewOrderRepository(db)
	ProductRepo := productRepo.NewProductRepository(db)
	AuditRepo := auditRepo.NewAuditLogRepository(db)
	RedisRepo := redisRepo.NewRepository()

	// Initialize application layers
	OrderApp := orderapp.NewOrderApp(TxRepo, OrderRepo, ProductRepo, publisher)
	ProductApp := productapp.NewProductApp(ProductRepo, blobStorage)
	AuthApp := authapp.NewAuthApp(cfg, RedisRepo)

	httpTransport := transport.NewTransport(OrderApp, ProductApp, AuthApp, AuditRepo)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
	err = server.ListenAndServe()
	if err != nil {
		logger.Fatal("failed server", zap.Error(err))
	}
}
