package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"inventory-service/internal/application/interfaces"
	"inventory-service/internal/application/services"
	"inventory-service/internal/config"
	delivery "inventory-service/internal/delivery/http"
	"inventory-service/internal/domain/repositories"
	"inventory-service/internal/infrastructure"
	mongostore "inventory-service/internal/infrastructure/db/mongo"
	pgstore "inventory-service/internal/infrastructure/db/postgres"
	"inventory-service/internal/infrastructure/messaging"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	logger := logrus.New()

	cfg, err := config.Load()
	if err != nil {
		logger.WithError(err).Fatal("invalid configuration")
	}

	if cfg.LogJSON {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(level)
	}

	var (
		productRepo repositories.ProductRepository
		saleRepo    repositories.SaleRepository
		userRepo    repositories.UserRepository
		closeStore  func()
	)

	switch cfg.StoreDriver {
	case config.StoreDriverMongo:
		store, err := mongostore.Connect(context.Background(), cfg.MongoURI, cfg.MongoDatabase)
		if err != nil {
			logger.WithError(err).Fatal("failed to connect to MongoDB")
		}
		productRepo = mongostore.NewProductRepository(store)
		saleRepo = mongostore.NewSaleRepository(store)
		userRepo = mongostore.NewUserRepository(store)
		closeStore = func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := store.Close(ctx); err != nil {
				logger.WithError(err).Warn("failed to close MongoDB connection")
			}
		}
		logger.Info("connected to MongoDB store")
	default:
		db, err := pgstore.OpenURL(cfg.DatabaseURL)
		if err != nil {
			logger.WithError(err).Fatal("failed to connect to PostgreSQL")
		}
		productRepo = pgstore.NewProductRepository(db)
		saleRepo = pgstore.NewSaleRepository(db)
		userRepo = pgstore.NewUserRepository(db)
		closeStore = func() {
			if err := pgstore.Close(db); err != nil {
				logger.WithError(err).Warn("failed to close PostgreSQL connection")
			}
		}
		logger.Info("connected to PostgreSQL store")
	}
	defer closeStore()

	var publisher interfaces.EventPublisher
	if cfg.NatsURL != "" {
		natsPublisher, err := messaging.NewNatsPublisher(cfg.NatsURL, logger)
		if err != nil {
			logger.WithError(err).Fatal("failed to connect to NATS")
		}
		defer natsPublisher.Close()
		publisher = natsPublisher
		logger.Info("connected to NATS")
	} else {
		publisher = messaging.NewNopPublisher()
	}

	jwtService := infrastructure.NewJWTService(cfg.JWTSecret, cfg.TokenTTL)
	limiter := infrastructure.NewRateLimiter(cfg.RateLimitPerSecond, cfg.RateLimitBurst)

	inventoryService := services.NewInventoryService(productRepo, publisher)
	salesService := services.NewSalesService(productRepo, saleRepo, publisher)
	authService := services.NewAuthService(userRepo, jwtService)

	handler := delivery.NewHandler(inventoryService, salesService, authService, logger)

	e := echo.New()
	e.HideBanner = true
	e.Server.ReadTimeout = 15 * time.Second
	e.Server.WriteTimeout = 15 * time.Second
	delivery.RegisterRoutes(e, handler, jwtService, limiter, logger, cfg.RequestTimeout)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			logger.WithError(err).Fatal("server stopped")
		}
	}()
	logger.WithField("port", cfg.Port).Info("server running")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.WithError(err).Error("forced shutdown")
	}
	logger.Info("server stopped")
}
