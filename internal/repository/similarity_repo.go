package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/TheayX/WayTrip/internal/cache"
	"github.com/TheayX/WayTrip/internal/models"
)

// Prefijos de claves en Redis. Los dos namespaces no colisionan y
// expiran de forma independiente.
const (
	similarityKeyPrefix = "recommendation:similarity:"
	userRecKeyPrefix    = "recommendation:user:"
)

// SimilarityStore guarda en Redis la lista ordenada de vecinos de cada spot.
// Cada entrada se reemplaza completa (nunca se mergea), por lo que un rebuild
// que pisa a otro no deja estado parcial visible.
type SimilarityStore struct {
	cache cache.Cache
}

func NewSimilarityStore(c cache.Cache) *SimilarityStore {
	return &SimilarityStore{cache: c}
}

func similarityKey(spotID int64) string {
	return fmt.Sprintf("%s%d", similarityKeyPrefix, spotID)
}

// UserRecKey es la clave del cache de recomendaciones de un usuario.
func UserRecKey(userID int64) string {
	return fmt.Sprintf("%s%d", userRecKeyPrefix, userID)
}

// GetNeighbors devuelve los vecinos de un spot, truncando a k si k > 0.
// Clave ausente o expirada => lista vacía, no es error.
func (s *SimilarityStore) GetNeighbors(ctx context.Context, spotID int64, k int) ([]models.Neighbor, error) {
	var neighbors []models.Neighbor
	ok, err := s.cache.GetJSON(ctx, similarityKey(spotID), &neighbors)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []models.Neighbor{}, nil
	}
	if k > 0 && len(neighbors) > k {
		neighbors = neighbors[:k]
	}
	return neighbors, nil
}

// ReplaceNeighbors pisa entera la entrada del spot con su nueva lista.
func (s *SimilarityStore) ReplaceNeighbors(ctx context.Context, spotID int64, neighbors []models.Neighbor, ttl time.Duration) error {
	return s.cache.SetJSON(ctx, similarityKey(spotID), neighbors, ttl)
}
