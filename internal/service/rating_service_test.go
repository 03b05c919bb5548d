package service

import (
	"context"
	"testing"

	"github.com/TheayX/WayTrip/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRatingWriter struct {
	existing map[[2]int64]*models.RatingDoc
	upserts  []models.RatingDoc
}

func newFakeRatingWriter() *fakeRatingWriter {
	return &fakeRatingWriter{existing: make(map[[2]int64]*models.RatingDoc)}
}

func (f *fakeRatingWriter) GetOne(_ context.Context, userID, spotID int64) (*models.RatingDoc, error) {
	return f.existing[[2]int64{userID, spotID}], nil
}

func (f *fakeRatingWriter) UpsertRating(_ context.Context, userID, spotID int64, score int, comment string) error {
	f.upserts = append(f.upserts, models.RatingDoc{UserID: userID, SpotID: spotID, Score: score, Comment: comment})
	return nil
}

func (f *fakeRatingWriter) GetActiveByUser(_ context.Context, userID int64) ([]models.RatingDoc, error) {
	var out []models.RatingDoc
	for key, r := range f.existing {
		if key[0] == userID && r.IsDeleted == 0 {
			out = append(out, *r)
		}
	}
	return out, nil
}

type fakeSpotUpdater struct {
	spot    *models.SpotDoc
	updated *struct {
		avg   float64
		count int
		heat  int
	}
}

func (f *fakeSpotUpdater) GetByID(_ context.Context, _ int64) (*models.SpotDoc, error) {
	return f.spot, nil
}

func (f *fakeSpotUpdater) UpdateStats(_ context.Context, _ int64, avgRating float64, ratingCount, heatScore int, _ string) error {
	f.updated = &struct {
		avg   float64
		count int
		heat  int
	}{avgRating, ratingCount, heatScore}
	return nil
}

func TestAddRatingRejectsOutOfRange(t *testing.T) {
	svc := NewRatingService(newFakeRatingWriter(), &fakeSpotUpdater{})

	assert.Error(t, svc.AddOrUpdate(context.Background(), 1, 10, 0, ""))
	assert.Error(t, svc.AddOrUpdate(context.Background(), 1, 10, 6, ""))
}

func TestAddRatingNewRecomputesStats(t *testing.T) {
	ratings := newFakeRatingWriter()
	spots := &fakeSpotUpdater{spot: &models.SpotDoc{SpotID: 10, AvgRating: 4.0, RatingCount: 2, HeatScore: 7}}
	svc := NewRatingService(ratings, spots)

	require.NoError(t, svc.AddOrUpdate(context.Background(), 1, 10, 5, "muy lindo"))

	require.Len(t, ratings.upserts, 1)
	assert.Equal(t, 5, ratings.upserts[0].Score)

	// (4.0*2 + 5) / 3 = 13/3
	require.NotNil(t, spots.updated)
	assert.InDelta(t, 13.0/3.0, spots.updated.avg, 1e-9)
	assert.Equal(t, 3, spots.updated.count)
	assert.Equal(t, 8, spots.updated.heat)
}

func TestUpdateRatingKeepsCount(t *testing.T) {
	ratings := newFakeRatingWriter()
	ratings.existing[[2]int64{1, 10}] = &models.RatingDoc{UserID: 1, SpotID: 10, Score: 2}
	spots := &fakeSpotUpdater{spot: &models.SpotDoc{SpotID: 10, AvgRating: 3.0, RatingCount: 3, HeatScore: 7}}
	svc := NewRatingService(ratings, spots)

	require.NoError(t, svc.AddOrUpdate(context.Background(), 1, 10, 5, ""))

	// (3.0*3 - 2 + 5) / 3 = 4.0; count y heat no cambian
	require.NotNil(t, spots.updated)
	assert.InDelta(t, 4.0, spots.updated.avg, 1e-9)
	assert.Equal(t, 3, spots.updated.count)
	assert.Equal(t, 7, spots.updated.heat)
}

func TestAddRatingSpotNotFound(t *testing.T) {
	svc := NewRatingService(newFakeRatingWriter(), &fakeSpotUpdater{})

	assert.Error(t, svc.AddOrUpdate(context.Background(), 1, 99, 4, ""))
}
