package httpapi

import (
	"net/http"
	"strconv"

	"qrdine/apperr"
	"qrdine/httpx"
	"qrdine/order-svc/internal/domain"
	"qrdine/order-svc/internal/service"
	"qrdine/session"
	"qrdine/tenant"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type Handler struct {
	Orders   service.OrderServiceInterface
	Carts    service.CartServiceInterface
	Sessions *session.Manager
	Resolver *tenant.Resolver
	Logger   *zap.Logger
}

func NewHandler(orders service.OrderServiceInterface, carts service.CartServiceInterface,
	sessions *session.Manager, resolver *tenant.Resolver, logger *zap.Logger) *Handler {
	return &Handler{
		Orders:   orders,
		Carts:    carts,
		Sessions: sessions,
		Resolver: resolver,
		Logger:   logger,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", httpx.Health("order-svc")).Methods("GET")

	r.HandleFunc("/api/orders", h.createOrder).Methods("POST")
	r.HandleFunc("/api/orders/{id}", h.getOrder).Methods("GET")
	r.Handle("/api/orders/{id}", h.Sessions.Require(http.HandlerFunc(h.updateStatus))).Methods("PATCH")
	r.Handle("/api/dashboard/{slug}/orders", h.Sessions.Require(http.HandlerFunc(h.listOrders))).Methods("GET")

	r.HandleFunc("/api/carts/{cartId}", h.getCart).Methods("GET")
	r.HandleFunc("/api/carts/{cartId}/items", h.addCartItem).Methods("POST")
	r.HandleFunc("/api/carts/{cartId}/items/{menuItemId}", h.updateCartItem).Methods("PATCH")
	r.HandleFunc("/api/carts/{cartId}/items/{menuItemId}", h.removeCartItem).Methods("DELETE")
	r.HandleFunc("/api/carts/{cartId}/guest", h.setCartGuest).Methods("PUT")
	r.HandleFunc("/api/carts/{cartId}/checkout", h.checkout).Methods("POST")
}

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	var in domain.CreateOrderInput
	if err := httpx.DecodeJSON(r, &in); err != nil {
		httpx.WriteError(w, h.Logger, err)
		return
	}

	order, err := h.Orders.Create(r.Context(), in)
	if err != nil {
		httpx.WriteError(w, h.Logger, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, domain.CreateOrderResult{
		OrderID: order.ID,
		Status:  order.Status,
		Total:   order.Total,
	})
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.Orders.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		httpx.WriteError(w, h.Logger, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, order.GuestView())
}

func (h *Handler) updateStatus(w http.ResponseWriter, r *http.Request) {
	sessionHotelID, err := session.HotelIDFromContext(r.Context())
	if err != nil {
		httpx.WriteError(w, h.Logger, err)
		return
	}
	var in domain.StatusUpdate
	if err := httpx.DecodeJSON(r, &in); err != nil {
		httpx.WriteError(w, h.Logger, err)
		return
	}

	order, err := h.Orders.UpdateStatus(r.Context(), sessionHotelID, mux.Vars(r)["id"], in.Status)
	if err != nil {
		httpx.WriteError(w, h.Logger, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, order)
}

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	sessionHotelID, err := session.HotelIDFromContext(r.Context())
	if err != nil {
		httpx.WriteError(w, h.Logger, err)
		return
	}
	hotel, err := h.Resolver.AuthorizeHotel(r.Context(), sessionHotelID, mux.Vars(r)["slug"])
	if err != nil {
		httpx.WriteError(w, h.Logger, err)
		return
	}

	var filter domain.ListFilter
	query := r.URL.Query()
	if raw := query.Get("status"); raw != "" {
		status, ok := domain.ParseStatus(raw)
		if !ok {
			httpx.WriteError(w, h.Logger, apperr.Validation("unknown status %q", raw))
			return
		}
		filter.Status = status
	}
	if raw := query.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			httpx.WriteError(w, h.Logger, apperr.Validation("limit must be a number"))
			return
		}
		filter.Limit = limit
	}

	orders, err := h.Orders.List(r.Context(), hotel.ID, filter)
	if err != nil {
		httpx.WriteError(w, h.Logger, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, orders)
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	cart, err := h.Carts.Get(r.Context(), mux.Vars(r)["cartId"])
	h.writeCart(w, cart, err)
}

func (h *Handler) addCartItem(w http.ResponseWriter, r *http.Request) {
	var in domain.AddCartItemInput
	if err := httpx.DecodeJSON(r, &in); err != nil {
		httpx.WriteError(w, h.Logger, err)
		return
	}
	cart, err := h.Carts.AddItem(r.Context(), mux.Vars(r)["cartId"], in)
	h.writeCart(w, cart, err)
}

func (h *Handler) updateCartItem(w http.ResponseWriter, r *http.Request) {
	var in domain.UpdateCartItemInput
	if err := httpx.DecodeJSON(r, &in); err != nil {
		httpx.WriteError(w, h.Logger, err)
		return
	}
	vars := mux.Vars(r)
	cart, err := h.Carts.UpdateItem(r.Context(), vars["cartId"], vars["menuItemId"], in)
	h.writeCart(w, cart, err)
}

func (h *Handler) removeCartItem(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	cart, err := h.Carts.RemoveItem(r.Context(), vars["cartId"], vars["menuItemId"])
	h.writeCart(w, cart, err)
}

func (h *Handler) setCartGuest(w http.ResponseWriter, r *http.Request) {
	var guest domain.GuestDetails
	if err := httpx.DecodeJSON(r, &guest); err != nil {
		httpx.WriteError(w, h.Logger, err)
		return
	}
	cart, err := h.Carts.SetGuest(r.Context(), mux.Vars(r)["cartId"], guest)
	h.writeCart(w, cart, err)
}

func (h *Handler) checkout(w http.ResponseWriter, r *http.Request) {
	var in domain.CheckoutInput
	if err := httpx.DecodeJSON(r, &in); err != nil {
		httpx.WriteError(w, h.Logger, err)
		return
	}
	order, err := h.Carts.Checkout(r.Context(), mux.Vars(r)["cartId"], in)
	if err != nil {
		httpx.WriteError(w, h.Logger, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, domain.CreateOrderResult{
		OrderID: order.ID,
		Status:  order.Status,
		Total:   order.Total,
	})
}

func (h *Handler) writeCart(w http.ResponseWriter, cart *domain.CartView, err error) {
	if err != nil {
		httpx.WriteError(w, h.Logger, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, cart)
}
