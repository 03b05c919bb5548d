package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/TheayX/WayTrip/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRatingScanner struct {
	docs []models.RatingDoc
	err  error
}

func (f *fakeRatingScanner) ListActive(_ context.Context) ([]models.RatingDoc, error) {
	return f.docs, f.err
}

type fakeNeighborWriter struct {
	mu      sync.Mutex
	entries map[int64][]models.Neighbor
	ttls    map[int64]time.Duration
}

func newFakeNeighborWriter() *fakeNeighborWriter {
	return &fakeNeighborWriter{
		entries: make(map[int64][]models.Neighbor),
		ttls:    make(map[int64]time.Duration),
	}
}

func (f *fakeNeighborWriter) ReplaceNeighbors(_ context.Context, spotID int64, neighbors []models.Neighbor, ttl time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries[spotID] = neighbors
	f.ttls[spotID] = ttl
	return nil
}

func (f *fakeNeighborWriter) get(spotID int64) []models.Neighbor {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.entries[spotID]
}

func rating(userID, spotID int64, score int) models.RatingDoc {
	return models.RatingDoc{UserID: userID, SpotID: spotID, Score: score}
}

func TestRebuildFullNormCosine(t *testing.T) {
	// user 1 puntúa A y B; user 2 solo A. La norma de A incluye a ambos
	// votantes aunque el producto punto solo use al que puntuó los dos:
	// sim(A,B) = 4*5 / (sqrt(4²+3²) * sqrt(5²)) = 20/25 = 0.8
	ratings := &fakeRatingScanner{docs: []models.RatingDoc{
		rating(1, 10, 4),
		rating(1, 20, 5),
		rating(2, 10, 3),
	}}
	sims := newFakeNeighborWriter()
	svc := NewSimilarityService(ratings, sims)

	require.NoError(t, svc.RebuildSimilarityMatrix(context.Background()))

	nA := sims.get(10)
	require.Len(t, nA, 1)
	assert.Equal(t, int64(20), nA[0].SpotID)
	assert.InDelta(t, 0.8, nA[0].Sim, 1e-9)
}

func TestRebuildSymmetry(t *testing.T) {
	ratings := &fakeRatingScanner{docs: []models.RatingDoc{
		rating(1, 10, 5), rating(1, 20, 3), rating(1, 30, 4),
		rating(2, 10, 2), rating(2, 20, 4),
		rating(3, 20, 5), rating(3, 30, 1),
	}}
	sims := newFakeNeighborWriter()
	svc := NewSimilarityService(ratings, sims)

	require.NoError(t, svc.RebuildSimilarityMatrix(context.Background()))

	simOf := func(i, j int64) float64 {
		for _, n := range sims.get(i) {
			if n.SpotID == j {
				return n.Sim
			}
		}
		return 0
	}

	for _, pair := range [][2]int64{{10, 20}, {10, 30}, {20, 30}} {
		assert.InDelta(t, simOf(pair[0], pair[1]), simOf(pair[1], pair[0]), 1e-12,
			"sim(%d,%d) debe ser simétrica", pair[0], pair[1])
	}
}

func TestRebuildSelfExclusion(t *testing.T) {
	ratings := &fakeRatingScanner{docs: []models.RatingDoc{
		rating(1, 10, 5), rating(1, 20, 4),
		rating(2, 10, 3), rating(2, 20, 2),
	}}
	sims := newFakeNeighborWriter()
	svc := NewSimilarityService(ratings, sims)

	require.NoError(t, svc.RebuildSimilarityMatrix(context.Background()))

	for spotID, neighbors := range sims.entries {
		for _, n := range neighbors {
			assert.NotEqual(t, spotID, n.SpotID, "un spot nunca es su propio vecino")
		}
	}
}

func TestRebuildBoundedNeighbors(t *testing.T) {
	// 25 spots co-puntuados por el mismo usuario: 24 vecinos positivos
	// por spot, truncados a TopNNeighbors
	var docs []models.RatingDoc
	for spot := int64(1); spot <= 25; spot++ {
		docs = append(docs, rating(1, spot, 4))
		docs = append(docs, rating(2, spot, 5))
	}
	ratings := &fakeRatingScanner{docs: docs}
	sims := newFakeNeighborWriter()
	svc := NewSimilarityService(ratings, sims)

	require.NoError(t, svc.RebuildSimilarityMatrix(context.Background()))

	require.Len(t, sims.entries, 25)
	for spotID, neighbors := range sims.entries {
		assert.LessOrEqual(t, len(neighbors), TopNNeighbors, "spot %d", spotID)
	}
}

func TestRebuildNoCoRatersNoEntry(t *testing.T) {
	// usuarios disjuntos: los pares no co-ocurren y no se guarda similitud
	ratings := &fakeRatingScanner{docs: []models.RatingDoc{
		rating(1, 10, 5),
		rating(2, 20, 4),
	}}
	sims := newFakeNeighborWriter()
	svc := NewSimilarityService(ratings, sims)

	require.NoError(t, svc.RebuildSimilarityMatrix(context.Background()))

	assert.Empty(t, sims.get(10))
	assert.Empty(t, sims.get(20))
}

func TestRebuildNeighborsSortedDescending(t *testing.T) {
	ratings := &fakeRatingScanner{docs: []models.RatingDoc{
		rating(1, 10, 5), rating(1, 20, 5), rating(1, 30, 1),
		rating(2, 10, 4), rating(2, 20, 4),
		rating(3, 10, 3), rating(3, 30, 5),
	}}
	sims := newFakeNeighborWriter()
	svc := NewSimilarityService(ratings, sims)

	require.NoError(t, svc.RebuildSimilarityMatrix(context.Background()))

	neighbors := sims.get(10)
	require.NotEmpty(t, neighbors)
	for i := 1; i < len(neighbors); i++ {
		assert.GreaterOrEqual(t, neighbors[i-1].Sim, neighbors[i].Sim)
	}
}

func TestRebuildEmptyRatingsIsNoOp(t *testing.T) {
	ratings := &fakeRatingScanner{}
	sims := newFakeNeighborWriter()
	svc := NewSimilarityService(ratings, sims)

	require.NoError(t, svc.RebuildSimilarityMatrix(context.Background()))
	assert.Empty(t, sims.entries)

	st := svc.Status()
	assert.False(t, st.Running)
	assert.Empty(t, st.LastError)
}

func TestRebuildCancelledContext(t *testing.T) {
	ratings := &fakeRatingScanner{docs: []models.RatingDoc{
		rating(1, 10, 5), rating(1, 20, 4),
	}}
	sims := newFakeNeighborWriter()
	svc := NewSimilarityService(ratings, sims)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := svc.RebuildSimilarityMatrix(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, sims.entries)
}

func TestRebuildReplacesTTL(t *testing.T) {
	ratings := &fakeRatingScanner{docs: []models.RatingDoc{
		rating(1, 10, 5), rating(1, 20, 4),
		rating(2, 10, 2), rating(2, 20, 3),
	}}
	sims := newFakeNeighborWriter()
	svc := NewSimilarityService(ratings, sims)

	require.NoError(t, svc.RebuildSimilarityMatrix(context.Background()))
	assert.Equal(t, SimilarityTTL, sims.ttls[10])
	assert.Equal(t, SimilarityTTL, sims.ttls[20])

	st := svc.Status()
	assert.Equal(t, 2, st.ProcessedSpots)
}
