package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"qrdine/config"
	"qrdine/ledger"
	httpapi "qrdine/order-svc/internal/api/http"
	"qrdine/order-svc/internal/service"
	"qrdine/order-svc/internal/storage"
	"qrdine/pricing"
	"qrdine/session"
	"qrdine/tenant"

	"go.uber.org/zap"
)

func main() {
	cfg := config.MustLoad(8082)
	logger := config.NewLogger(cfg, "order-svc")
	defer logger.Sync()

	db := config.MustInitPostgres(cfg.Database, logger)
	defer db.Close()
	rdb := config.MustInitRedis(cfg.Redis, logger)
	defer rdb.Close()
	writer := config.NewKafkaWriter(cfg.Kafka)
	defer writer.Close()

	logger.Info("Revenue mode", zap.String("mode", string(cfg.Orders.RevenueMode)))

	repo := storage.NewPostgresRepository(db, ledger.New(cfg.Orders.RevenueMode))
	resolver := tenant.NewResolver(tenant.NewPostgresStore(db))
	calc := pricing.NewCalculator(cfg.Orders.TaxRate)

	orders := service.NewOrderService(repo, resolver, storage.NewKafkaPublisher(writer), calc, logger)
	carts := service.NewCartService(storage.NewRedisCartStore(rdb, cfg.Orders.CartTTL), repo, resolver, orders, calc, logger)
	sessions := session.NewManager(cfg.Session.Secret, cfg.Session.TTL, cfg.Session.SecureCookie, session.NewRedisRevoker(rdb))

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      httpapi.NewRouter(httpapi.NewHandler(orders, carts, sessions, resolver, logger)),
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
