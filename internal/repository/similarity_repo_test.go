package repository

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/TheayX/WayTrip/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memCache struct {
	data map[string][]byte
}

func newMemCache() *memCache {
	return &memCache{data: make(map[string][]byte)}
}

func (c *memCache) GetJSON(_ context.Context, key string, dest any) (bool, error) {
	raw, ok := c.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dest)
}

func (c *memCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.data[key] = raw
	return nil
}

func (c *memCache) Delete(_ context.Context, key string) error {
	delete(c.data, key)
	return nil
}

func TestGetNeighborsMissingKeyIsEmpty(t *testing.T) {
	store := NewSimilarityStore(newMemCache())

	neighbors, err := store.GetNeighbors(context.Background(), 42, 0)
	require.NoError(t, err)
	assert.Empty(t, neighbors)
}

func TestReplaceAndGetNeighborsKeepsOrder(t *testing.T) {
	store := NewSimilarityStore(newMemCache())
	in := []models.Neighbor{
		{SpotID: 2, Sim: 0.9},
		{SpotID: 5, Sim: 0.7},
		{SpotID: 3, Sim: 0.4},
	}
	require.NoError(t, store.ReplaceNeighbors(context.Background(), 1, in, time.Hour))

	out, err := store.GetNeighbors(context.Background(), 1, 0)
	require.NoError(t, err)
	assert.Equal(t, in, out)

	// k acota la lista ya ordenada
	top, err := store.GetNeighbors(context.Background(), 1, 2)
	require.NoError(t, err)
	assert.Equal(t, in[:2], top)
}

func TestReplaceNeighborsOverwritesWholeEntry(t *testing.T) {
	store := NewSimilarityStore(newMemCache())
	require.NoError(t, store.ReplaceNeighbors(context.Background(), 1,
		[]models.Neighbor{{SpotID: 2, Sim: 0.9}, {SpotID: 3, Sim: 0.5}}, time.Hour))
	require.NoError(t, store.ReplaceNeighbors(context.Background(), 1,
		[]models.Neighbor{{SpotID: 4, Sim: 0.6}}, time.Hour))

	out, err := store.GetNeighbors(context.Background(), 1, 0)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, int64(4), out[0].SpotID)
}

func TestKeyNamespacesAreDisjoint(t *testing.T) {
	assert.Equal(t, "recommendation:similarity:7", similarityKey(7))
	assert.Equal(t, "recommendation:user:7", UserRecKey(7))
	assert.NotEqual(t, similarityKey(7), UserRecKey(7))
}
