package models

import "time"

// Tipos de recomendación.
const (
	RecTypePersonalized = "personalized"
	RecTypePreference   = "preference"
	RecTypeHot          = "hot"
)

type RecItem struct {
	SpotID int64   `bson:"spotId" json:"spotId"`
	Score  float64 `bson:"score"  json:"score"`
}

// Recommendation es el historial que guardamos en Mongo cada vez
// que se calcula una recomendación (no se guarda en cache hits).
type Recommendation struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	UserID    int64     `bson:"userId"        json:"userId"`
	Type      string    `bson:"type"          json:"type"`
	Items     []RecItem `bson:"items"         json:"items"`
	CreatedAt time.Time `bson:"createdAt"     json:"createdAt"`
}

// RecommendationResponse es la respuesta pública de get/refresh.
// NeedPreference indica al cliente que pida al usuario configurar gustos.
type RecommendationResponse struct {
	Type           string     `json:"type"`
	NeedPreference bool       `json:"needPreference"`
	List           []SpotItem `json:"list"`
}
