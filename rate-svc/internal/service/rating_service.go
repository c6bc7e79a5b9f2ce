package service

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"qrdine/apperr"
	"qrdine/rate-svc/internal/domain"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	minScore         = 1
	maxScore         = 5
	maxCommentLength = 500
)

type RatingService struct {
	repository RatingRepository
	cache      RatingCache
	publisher  RatingPublisher
	logger     *zap.Logger
}

func NewRatingService(repository RatingRepository, cache RatingCache, publisher RatingPublisher, logger *zap.Logger) *RatingService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RatingService{
		repository: repository,
		cache:      cache,
		publisher:  publisher,
		logger:     logger,
	}
}

// Submit records the single rating an order may receive. The Redis marker only
// short-circuits repeats; the unique order_id in Postgres is what enforces it.
func (s *RatingService) Submit(ctx context.Context, orderID string, in domain.RatingInput) (*domain.Rating, error) {
	if in.Score < minScore || in.Score > maxScore {
		return nil, apperr.Validation("score must be between %d and %d", minScore, maxScore)
	}
	comment := strings.TrimSpace(in.Comment)
	if utf8.RuneCountInString(comment) > maxCommentLength {
		return nil, apperr.Validation("comment must be at most %d characters", maxCommentLength)
	}
	if _, err := uuid.Parse(orderID); err != nil {
		return nil, apperr.NotFound("order not found")
	}

	if rated, err := s.cache.IsRated(ctx, orderID); err != nil {
		s.logger.Warn("rating marker lookup failed", zap.String("order_id", orderID), zap.Error(err))
	} else if rated {
		return nil, apperr.Conflict("order has already been rated")
	}

	rating := &domain.Rating{
		ID:      uuid.NewString(),
		OrderID: orderID,
		Score:   in.Score,
		Comment: comment,
	}
	if err := s.repository.CreateRating(ctx, rating); err != nil {
		return nil, apperr.FromPostgres(err, "order has already been rated")
	}

	if err := s.cache.MarkRated(ctx, orderID, rating.Score); err != nil {
		s.logger.Warn("failed to set rating marker", zap.String("order_id", orderID), zap.Error(err))
	}
	if s.publisher != nil {
		if err := s.publisher.PublishRating(ctx, domain.KafkaMessage{
			Type:      domain.EventNewRating,
			HotelID:   rating.HotelID,
			OrderID:   rating.OrderID,
			Score:     rating.Score,
			Timestamp: time.Now().UTC(),
		}); err != nil {
			s.logger.Warn("failed to publish rating event", zap.String("order_id", orderID), zap.Error(err))
		}
	}

	s.logger.Info("order rated", zap.String("order_id", orderID), zap.Int("score", rating.Score))
	return rating, nil
}

func (s *RatingService) Get(ctx context.Context, orderID string) (*domain.Rating, error) {
	if _, err := uuid.Parse(orderID); err != nil {
		return nil, apperr.NotFound("rating not found")
	}
	rating, err := s.repository.GetRating(ctx, orderID)
	if err != nil {
		return nil, apperr.FromPostgres(err, "rating not found")
	}
	return rating, nil
}
