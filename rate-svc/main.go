package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"qrdine/config"
	"qrdine/ledger"
	httpapi "qrdine/rate-svc/internal/api/http"
	"qrdine/rate-svc/internal/service"
	"qrdine/rate-svc/internal/storage"

	"go.uber.org/zap"
)

func main() {
	cfg := config.MustLoad(8083)
	logger := config.NewLogger(cfg, "rate-svc")
	defer logger.Sync()

	db := config.MustInitPostgres(cfg.Database, logger)
	defer db.Close()
	rdb := config.MustInitRedis(cfg.Redis, logger)
	defer rdb.Close()
	writer := config.NewKafkaWriter(cfg.Kafka)
	defer writer.Close()

	ratings := service.NewRatingService(
		storage.NewPostgresRepository(db, ledger.New(cfg.Orders.RevenueMode)),
		storage.NewRedisCache(rdb, cfg.Orders.RatingMarkerTTL),
		storage.NewKafkaPublisher(writer),
		logger,
	)

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      httpapi.NewRouter(httpapi.NewHandler(ratings, logger)),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	go httpapi.StartServer(server, logger)

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Graceful shutdown failed", zap.Error(err))
	}
}
