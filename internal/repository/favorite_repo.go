package repository

import (
	"context"

	"github.com/TheayX/WayTrip/internal/db"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type FavoriteRepository struct {
	col *mongo.Collection
}

func NewFavoriteRepository() *FavoriteRepository {
	return &FavoriteRepository{col: db.DB().Collection("favorites")}
}

// ListActiveSpotIDs devuelve los spotIds favoritos activos del usuario.
func (r *FavoriteRepository) ListActiveSpotIDs(ctx context.Context, userID int64) ([]int64, error) {
	return distinctSpotIDs(ctx, r.col, bson.M{"userId": userID, "isDeleted": 0})
}

// distinctSpotIDs es un helper compartido con el repo de órdenes.
func distinctSpotIDs(ctx context.Context, col *mongo.Collection, filter bson.M) ([]int64, error) {
	vals, err := col.Distinct(ctx, "spotId", filter)
	if err != nil {
		return nil, err
	}

	out := make([]int64, 0, len(vals))
	for _, v := range vals {
		switch x := v.(type) {
		case int32:
			out = append(out, int64(x))
		case int64:
			out = append(out, x)
		case float64:
			out = append(out, int64(x))
		}
	}
	return out, nil
}
