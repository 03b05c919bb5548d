package service

import (
	"context"
	"fmt"
	"time"

	"github.com/TheayX/WayTrip/internal/models"
)

// RatingWriter es lo que el servicio de ratings necesita del repo.
type RatingWriter interface {
	GetOne(ctx context.Context, userID, spotID int64) (*models.RatingDoc, error)
	UpsertRating(ctx context.Context, userID, spotID int64, score int, comment string) error
	GetActiveByUser(ctx context.Context, userID int64) ([]models.RatingDoc, error)
}

// SpotUpdater mantiene las estadísticas del spot al día.
type SpotUpdater interface {
	GetByID(ctx context.Context, spotID int64) (*models.SpotDoc, error)
	UpdateStats(ctx context.Context, spotID int64, avgRating float64, ratingCount, heatScore int, updatedAt string) error
}

type RatingService struct {
	ratings RatingWriter
	spots   SpotUpdater
}

func NewRatingService(ratings RatingWriter, spots SpotUpdater) *RatingService {
	return &RatingService{ratings: ratings, spots: spots}
}

// AddOrUpdate crea o pisa el rating de (userId, spotId) y recalcula
// avgRating / ratingCount del spot. Un rating nuevo suma heat.
func (s *RatingService) AddOrUpdate(ctx context.Context, userID, spotID int64, score int, comment string) error {
	if score < 1 || score > 5 {
		return fmt.Errorf("score fuera de rango: %d", score)
	}

	// 1) ver si ya existía un rating previo
	prev, err := s.ratings.GetOne(ctx, userID, spotID)
	if err != nil {
		return err
	}
	existedBefore := prev != nil

	// 2) upsert del rating
	if err := s.ratings.UpsertRating(ctx, userID, spotID, score, comment); err != nil {
		return err
	}

	// 3) actualizar stats del spot
	spot, err := s.spots.GetByID(ctx, spotID)
	if err != nil {
		return err
	}
	if spot == nil {
		return fmt.Errorf("spot %d no encontrado", spotID)
	}

	avg := spot.AvgRating
	count := spot.RatingCount
	heat := spot.HeatScore

	if !existedBefore {
		total := avg*float64(count) + float64(score)
		count++
		avg = total / float64(count)
		heat++ // un rating nuevo cuenta como interacción
	} else {
		total := avg*float64(count) - float64(prev.Score) + float64(score)
		if count > 0 {
			avg = total / float64(count)
		}
		// count no cambia
	}

	return s.spots.UpdateStats(ctx, spotID, avg, count, heat, time.Now().Format(time.RFC3339))
}

// GetByUser lista los ratings activos del usuario.
func (s *RatingService) GetByUser(ctx context.Context, userID int64) ([]models.RatingDoc, error) {
	return s.ratings.GetActiveByUser(ctx, userID)
}
