package service

import (
	"context"
	"time"

	"qrdine/agg-svc/internal/domain"
	"qrdine/agg-svc/internal/storage"

	"github.com/segmentio/kafka-go"
)

type StoreInterface interface {
	AddTrending(ctx context.Context, hotelID string, day time.Time, items []domain.EventItem) error
	RefreshOutstanding(ctx context.Context, hotelID string) error
	RefreshRatings(ctx context.Context, hotelID string) error
}

type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
}

type ConsumerInterface interface {
	Start(ctx context.Context)
	Process(ctx context.Context, msg domain.KafkaMessage) error
}

var (
	_ StoreInterface    = (*storage.Store)(nil)
	_ MessageReader     = (*kafka.Reader)(nil)
	_ ConsumerInterface = (*Consumer)(nil)
)
