package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"qrdine/agg-svc/internal/domain"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"
)

var eventsProcessed = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "qrdine_agg_events_processed_total",
	Help: "Hotel events consumed by the aggregation service.",
}, []string{"type", "result"})

const readRetryDelay = time.Second

type Consumer struct {
	Reader MessageReader
	Store  StoreInterface
	Logger *zap.Logger
}

func NewConsumer(reader MessageReader, store StoreInterface, logger *zap.Logger) *Consumer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Consumer{
		Reader: reader,
		Store:  store,
		Logger: logger,
	}
}

// Start reads events until ctx is cancelled. A message that cannot be decoded
// or applied is logged and skipped; projections are rebuilt from Postgres on
// the next event for the same hotel.
func (c *Consumer) Start(ctx context.Context) {
	c.Logger.Info("Starting aggregation consumer")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				c.Logger.Info("Aggregation consumer stopped")
				return
			}
			c.Logger.Error("Error reading message", zap.Error(err))
			select {
			case <-ctx.Done():
				return
			case <-time.After(readRetryDelay):
			}
			continue
		}

		var msg domain.KafkaMessage
		if err := json.Unmarshal(message.Value, &msg); err != nil {
			eventsProcessed.WithLabelValues("unknown", "malformed").Inc()
			c.Logger.Warn("Error unmarshaling message", zap.Int64("offset", message.Offset), zap.Error(err))
			continue
		}

		if err := c.Process(ctx, msg); err != nil {
			eventsProcessed.WithLabelValues(msg.Type, "error").Inc()
			c.Logger.Error("Error processing event",
				zap.String("type", msg.Type),
				zap.String("hotel_id", msg.HotelID),
				zap.String("order_id", msg.OrderID),
				zap.Error(err))
			continue
		}
		eventsProcessed.WithLabelValues(msg.Type, "ok").Inc()
	}
}

func (c *Consumer) Process(ctx context.Context, msg domain.KafkaMessage) error {
	switch msg.Type {
	case domain.EventOrderCreated, domain.EventOrderStatusChanged, domain.EventNewRating:
	default:
		c.Logger.Debug("Ignoring event", zap.String("type", msg.Type))
		return nil
	}
	if msg.HotelID == "" {
		return errors.New("event has no hotel id")
	}

	switch msg.Type {
	case domain.EventOrderCreated:
		day := msg.Timestamp
		if day.IsZero() {
			day = time.Now()
		}
		if err := c.Store.AddTrending(ctx, msg.HotelID, day, msg.Items); err != nil {
			return err
		}
		return c.Store.RefreshOutstanding(ctx, msg.HotelID)
	case domain.EventOrderStatusChanged:
		return c.Store.RefreshOutstanding(ctx, msg.HotelID)
	default:
		return c.Store.RefreshRatings(ctx, msg.HotelID)
	}
}
