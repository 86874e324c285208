package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/oksasatya/go-catalog-admin/config"
	"github.com/oksasatya/go-catalog-admin/internal/infrastructure/search"
	"github.com/oksasatya/go-catalog-admin/pkg/helpers"
)

func main() {
	_ = godotenv.Load()

	cfg := config.MustLoad()
	logger := helpers.NewLogger(cfg.AppName+"-index-worker", cfg.Env, cfg.LogLevel)
	if !cfg.EventsEnabled || !cfg.SearchEnabled {
		logger.Info("EVENTS_ENABLED and SEARCH_ENABLED must both be true; index worker disabled")
		return
	}

	es, err := helpers.NewESClient(cfg.ESAddrs(), cfg.ElasticsearchUser, cfg.ElasticsearchPass)
	if err != nil {
		logger.Fatalf("elasticsearch client: %v", err)
	}
	indexer := search.NewIndexer(es, cfg.ESCategoriesIndex, cfg.ESGenresIndex, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	if err := indexer.EnsureIndices(ctx); err != nil {
		logger.Fatalf("ensure indices: %v", err)
	}

	consumer, err := helpers.NewRabbitConsumer(cfg.RabbitMQURL, cfg.RabbitMQEventsQueue, 16)
	if err != nil {
		logger.Fatalf("rabbitmq: %v", err)
	}
	defer consumer.Close()

	msgs, err := consumer.Deliveries("")
	if err != nil {
		logger.Fatalf("consume: %v", err)
	}

	w := worker{projector: indexer, logger: logger, timeout: 15 * time.Second}
	done := make(chan struct{})
	go func() {
		w.run(ctx, msgs)
		close(done)
	}()

	logger.Infof("index worker listening on queue=%s", cfg.RabbitMQEventsQueue)
	select {
	case <-ctx.Done():
	case <-done:
		logger.Warn("delivery channel closed")
		return
	}
	logger.Info("shutting down...")
	consumer.Close()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
	}
}
