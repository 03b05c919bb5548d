package models

import "time"

// Neighbor es un vecino de un spot en el grafo de similitudes.
// Las listas se guardan en Redis ya ordenadas por sim descendente
// (un map JSON perdería el orden).
type Neighbor struct {
	SpotID int64   `json:"spotId"`
	Sim    float64 `json:"sim"`
}

// SimilarityStatus es el estado del último rebuild de la matriz,
// expuesto en el endpoint de administración.
type SimilarityStatus struct {
	Running        bool      `json:"running"`
	LastRunAt      time.Time `json:"lastRunAt"`
	LastDurationMs int64     `json:"lastDurationMs"`
	ProcessedSpots int       `json:"processedSpots"`
	LastError      string    `json:"lastError,omitempty"`
}
