package httpapi

import (
	"net/http"

	"qrdine/analytics-svc/internal/service"
	"qrdine/httpx"
	"qrdine/session"
	"qrdine/tenant"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type Handler struct {
	Analytics service.AnalyticsInterface
	Sessions  *session.Manager
	Resolver  *tenant.Resolver
	Logger    *zap.Logger
}

func NewHandler(svc service.AnalyticsInterface, sessions *session.Manager, resolver *tenant.Resolver, logger *zap.Logger) *Handler {
	return &Handler{
		Analytics: svc,
		Sessions:  sessions,
		Resolver:  resolver,
		Logger:    logger,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", httpx.Health("analytics-svc")).Methods("GET")
	r.Handle("/api/dashboard/{slug}/metrics", h.Sessions.Require(http.HandlerFunc(h.getMetrics))).Methods("GET")
	r.Handle("/api/dashboard/{slug}/ratings/distribution", h.Sessions.Require(http.HandlerFunc(h.getRatingDistribution))).Methods("GET")
}

// hotelID resolves the slug in the path and checks it against the session.
func (h *Handler) hotelID(r *http.Request) (string, error) {
	sessionHotelID, err := session.HotelIDFromContext(r.Context())
	if err != nil {
		return "", err
	}
	hotel, err := h.Resolver.AuthorizeHotel(r.Context(), sessionHotelID, mux.Vars(r)["slug"])
	if err != nil {
		return "", err
	}
	return hotel.ID, nil
}

func (h *Handler) getMetrics(w http.ResponseWriter, r *http.Request) {
	hotelID, err := h.hotelID(r)
	if err != nil {
		httpx.WriteError(w, h.Logger, err)
		return
	}
	metrics, err := h.Analytics.Metrics(r.Context(), hotelID, r.URL.Query().Get("period"))
	if err != nil {
		httpx.WriteError(w, h.Logger, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, metrics)
}

func (h *Handler) getRatingDistribution(w http.ResponseWriter, r *http.Request) {
	hotelID, err := h.hotelID(r)
	if err != nil {
		httpx.WriteError(w, h.Logger, err)
		return
	}
	distribution, err := h.Analytics.RatingDistribution(r.Context(), hotelID)
	if err != nil {
		httpx.WriteError(w, h.Logger, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, distribution)
}
