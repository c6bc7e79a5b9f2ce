package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"qrdine/api-gateway/internal/gateway"
	"qrdine/config"

	"github.com/rs/cors"
	"go.uber.org/zap"
)

func main() {
	cfg := config.MustLoad(8080)
	logger := config.NewLogger(cfg, "api-gateway")
	defer logger.Sync()

	gw := gateway.NewGateway(gateway.Config{
		MenuSvcURL:      cfg.Gateway.MenuSvcURL,
		OrderSvcURL:     cfg.Gateway.OrderSvcURL,
		RateSvcURL:      cfg.Gateway.RateSvcURL,
		AnalyticsSvcURL: cfg.Gateway.AnalyticsSvcURL,
	}, &http.Client{Timeout: cfg.Server.WriteTimeout}, logger)

	c := cors.New(cors.Options{
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      c.Handler(gw.SetupRoutes()),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	go func() {
		logger.Info("API Gateway starting", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server stopped", zap.Error(err))
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Graceful shutdown failed", zap.Error(err))
	}
}
