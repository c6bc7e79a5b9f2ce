package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	httpapi "qrdine/analytics-svc/internal/api/http"
	"qrdine/analytics-svc/internal/service"
	"qrdine/analytics-svc/internal/storage"
	"qrdine/config"
	"qrdine/session"
	"qrdine/tenant"

	"go.uber.org/zap"
)

func main() {
	cfg := config.MustLoad(8084)
	logger := config.NewLogger(cfg, "analytics-svc")
	defer logger.Sync()

	db := config.MustInitPostgres(cfg.Database, logger)
	defer db.Close()
	rdb := config.MustInitRedis(cfg.Redis, logger)
	defer rdb.Close()

	svc := service.NewAnalyticsService(storage.NewPostgresRepository(db), storage.NewRedisProjections(rdb), logger)
	resolver := tenant.NewResolver(tenant.NewPostgresStore(db))
	sessions := session.NewManager(cfg.Session.Secret, cfg.Session.TTL, cfg.Session.SecureCookie, session.NewRedisRevoker(rdb))

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      httpapi.NewRouter(httpapi.NewHandler(svc, sessions, resolver, logger)),
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
