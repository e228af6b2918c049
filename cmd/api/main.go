package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/zhouzirui/shopfront/backend/internal/config"
	"github.com/zhouzirui/shopfront/backend/internal/handler"
	"github.com/zhouzirui/shopfront/backend/internal/model/catalog"
	"github.com/zhouzirui/shopfront/backend/internal/server"
	"github.com/zhouzirui/shopfront/backend/internal/service/search"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load .env file
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger, err := cfg.Log.Build()
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer func() { _ = logger.Sync() }()

	if envErr != nil {
		logger.Debug("no .env file loaded, using process environment", zap.Error(envErr))
	}

	// The catalog is built once here and never mutated afterwards.
	store := catalog.NewMemoryStore(catalog.Seed())
	searchSvc := search.NewService(store)

	logger.Info("catalog loaded",
		zap.Int("items", len(store.List())),
		zap.Bool("live_search", cfg.Search.LiveEnabled))

	router := handler.NewRouter(searchSvc, cfg.Search, logger)

	srv := server.New(cfg.Server, router)
	if err := server.Run(ctx, srv, cfg.Server.ShutdownTimeout, logger); err != nil {
		logger.Fatal("server error", zap.Error(err))
	}
}
