package httpapi

import (
	"net/http"

	"qrdine/httpx"
	"qrdine/rate-svc/internal/domain"
	"qrdine/rate-svc/internal/service"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type Handler struct {
	Ratings service.RatingServiceInterface
	Logger  *zap.Logger
}

func NewHandler(ratings service.RatingServiceInterface, logger *zap.Logger) *Handler {
	return &Handler{Ratings: ratings, Logger: logger}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", httpx.Health("rate-svc")).Methods("GET")
	r.HandleFunc("/api/orders/{id}/rating", h.submitRating).Methods("POST")
	r.HandleFunc("/api/orders/{id}/rating", h.getRating).Methods("GET")
}

func (h *Handler) submitRating(w http.ResponseWriter, r *http.Request) {
	var in domain.RatingInput
	if err := httpx.DecodeJSON(r, &in); err != nil {
		httpx.WriteError(w, h.Logger, err)
		return
	}

	rating, err := h.Ratings.Submit(r.Context(), mux.Vars(r)["id"], in)
	if err != nil {
		httpx.WriteError(w, h.Logger, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, rating)
}

func (h *Handler) getRating(w http.ResponseWriter, r *http.Request) {
	rating, err := h.Ratings.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		httpx.WriteError(w, h.Logger, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, rating)
}
