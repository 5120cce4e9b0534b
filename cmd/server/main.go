package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/product-catalog/catalog-api/app/categories"
	"github.com/product-catalog/catalog-api/app/config"
	"github.com/product-catalog/catalog-api/app/database"
	"github.com/product-catalog/catalog-api/app/logging"
	"github.com/product-catalog/catalog-api/app/metrics"
	"github.com/product-catalog/catalog-api/app/products"
	"github.com/product-catalog/catalog-api/app/server"
	"github.com/product-catalog/catalog-api/models"
)

func main() {
	configFile := flag.String("config", "", "path to a YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("server stopped with error", zap.Error(err))
		os.Exit(1)
	}
	logger.Info("Server stopped")
}

func run(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	db, err := database.Open(ctx, cfg.Database, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := database.Close(db); err != nil {
			logger.Warn("close database", zap.Error(err))
		}
	}()

	if cfg.Database.AutoMigrate {
		if err := database.Migrate(db); err != nil {
			return err
		}
		logger.Info("database schema migrated")
	}

	store := models.NewStore(db)
	collector := metrics.NewCollector("catalog")

	handler := server.NewRouter(server.Dependencies{
		Categories:     categories.NewService(store, logger, collector),
		Products:       products.NewService(store, logger, collector),
		Store:          store,
		Metrics:        collector,
		Logger:         logger,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
	})

	return server.New(cfg.HTTP, handler, logger).Run(ctx)
}
