package models

// RatingDoc es una valoración 1..5 de un usuario sobre un spot.
// Hay como máximo un rating activo por (userId, spotId): el upsert sobreescribe.
type RatingDoc struct {
	UserID    int64  `json:"userId" bson:"userId"`
	SpotID    int64  `json:"spotId" bson:"spotId"`
	Score     int    `json:"score" bson:"score"`
	Comment   string `json:"comment,omitempty" bson:"comment,omitempty"`
	IsDeleted int    `json:"isDeleted" bson:"isDeleted"`
	Timestamp int64  `json:"timestamp" bson:"timestamp"`
}
