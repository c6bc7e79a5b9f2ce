package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"qrdine/config"
	httpapi "qrdine/menu-svc/internal/api/http"
	"qrdine/menu-svc/internal/service"
	"qrdine/menu-svc/internal/storage"
	"qrdine/session"
	"qrdine/tenant"

	"go.uber.org/zap"
)

func main() {
	cfg := config.MustLoad(8081)
	logger := config.NewLogger(cfg, "menu-svc")
	defer logger.Sync()

	db := config.MustInitPostgres(cfg.Database, logger)
	defer db.Close()
	rdb := config.MustInitRedis(cfg.Redis, logger)
	defer rdb.Close()

	repo := storage.NewPostgresRepository(db)
	if err := repo.EnsureSchema(context.Background()); err != nil {
		logger.Fatal("Failed to ensure schema", zap.Error(err))
	}

	resolver := tenant.NewResolver(tenant.NewPostgresStore(db))
	sessions := session.NewManager(cfg.Session.Secret, cfg.Session.TTL, cfg.Session.SecureCookie, session.NewRedisRevoker(rdb))
	qr := service.DefaultQRGenerator{BaseURL: cfg.Menu.PublicBaseURL}

	handler := httpapi.NewHandler(
		service.NewHotelService(repo, repo, repo, resolver, service.BcryptHasher{}),
		service.NewMenuService(repo),
		service.NewTableService(repo, qr),
		sessions,
		resolver,
		cfg.Menu.UploadDir,
		logger,
	)

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      httpapi.NewRouter(handler),
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
