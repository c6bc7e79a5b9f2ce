package storage

import (
	"context"
	"encoding/json"

	"qrdine/rate-svc/internal/domain"

	"github.com/segmentio/kafka-go"
)

type KafkaPublisher struct {
	Writer *kafka.Writer
}

func NewKafkaPublisher(writer *kafka.Writer) *KafkaPublisher {
	return &KafkaPublisher{Writer: writer}
}

func (p *KafkaPublisher) PublishRating(ctx context.Context, msg domain.KafkaMessage) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	return p.Writer.WriteMessages(ctx, kafka.Message{
		Key:     []byte(msg.HotelID),
		Value:   payload,
		Time:    msg.Timestamp,
		Headers: []kafka.Header{{Key: "type", Value: []byte(msg.Type)}},
	})
}
