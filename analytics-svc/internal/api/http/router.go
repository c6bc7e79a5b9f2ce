package httpapi

import (
	"net/http"

	"qrdine/httpx"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

func NewRouter(handler *Handler) http.Handler {
	r := mux.NewRouter()
	r.Use(httpx.Instrument("analytics-svc"))
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")
	handler.RegisterRoutes(r)
	return cors.New(cors.Options{
		AllowedMethods:   []string{"GET"},
		AllowCredentials: true,
	}).Handler(r)
}

func StartServer(server *http.Server, logger *zap.Logger) {
	logger.Info("Analytics Service starting", zap.String("addr", server.Addr))
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
