package service

import (
	"context"

	"qrdine/rate-svc/internal/domain"
	"qrdine/rate-svc/internal/storage"
)

type RatingServiceInterface interface {
	Submit(ctx context.Context, orderID string, in domain.RatingInput) (*domain.Rating, error)
	Get(ctx context.Context, orderID string) (*domain.Rating, error)
}

type RatingRepository interface {
	CreateRating(ctx context.Context, rating *domain.Rating) error
	GetRating(ctx context.Context, orderID string) (*domain.Rating, error)
}

type RatingCache interface {
	IsRated(ctx context.Context, orderID string) (bool, error)
	MarkRated(ctx context.Context, orderID string, score int) error
}

type RatingPublisher interface {
	PublishRating(ctx context.Context, msg domain.KafkaMessage) error
}

var (
	_ RatingServiceInterface = (*RatingService)(nil)
	_ RatingRepository       = (*storage.PostgresRepository)(nil)
	_ RatingCache            = (*storage.RedisCache)(nil)
	_ RatingPublisher        = (*storage.KafkaPublisher)(nil)
)
