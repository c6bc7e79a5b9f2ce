package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"qrdine/agg-svc/internal/service"
	"qrdine/agg-svc/internal/storage"
	"qrdine/config"
	"qrdine/httpx"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func main() {
	cfg := config.MustLoad(8085)
	logger := config.NewLogger(cfg, "agg-svc")
	defer logger.Sync()

	db := config.MustInitPostgres(cfg.Database, logger)
	defer db.Close()
	rdb := config.MustInitRedis(cfg.Redis, logger)
	defer rdb.Close()
	reader := config.NewKafkaReader(cfg.Kafka)
	defer reader.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	r := mux.NewRouter()
	r.HandleFunc("/health", httpx.Health("agg-svc")).Methods("GET")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")
	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
	go func() {
		logger.Info("Starting server", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	consumer := service.NewConsumer(reader, storage.NewStore(db, rdb), logger)
	consumer.Start(ctx)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Graceful shutdown failed", zap.Error(err))
	}
}
