package domain

import "time"

type Rating struct {
	ID        string    `json:"id"`
	OrderID   string    `json:"orderId"`
	HotelID   string    `json:"hotelId"`
	Score     int       `json:"score"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
}

type RatingInput struct {
	Score   int    `json:"score"`
	Comment string `json:"comment"`
}

const EventNewRating = "new_rating"

type KafkaMessage struct {
	Type      string    `json:"type"`
	HotelID   string    `json:"hotel_id"`
	OrderID   string    `json:"order_id"`
	Score     int       `json:"score"`
	Timestamp time.Time `json:"timestamp"`
}
