package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ordersCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "qrdine_orders_created_total",
		Help: "Orders placed by guests.",
	})
	statusTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "qrdine_order_status_transitions_total",
		Help: "Order status changes by target status.",
	}, []string{"status"})
)
