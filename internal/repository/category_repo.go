package repository

import (
	"context"

	"github.com/TheayX/WayTrip/internal/db"
	"github.com/TheayX/WayTrip/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type CategoryRepository struct {
	categories *mongo.Collection
	regions    *mongo.Collection
}

func NewCategoryRepository() *CategoryRepository {
	return &CategoryRepository{
		categories: db.DB().Collection("spot_categories"),
		regions:    db.DB().Collection("regions"),
	}
}

// CategoryNames devuelve categoryId -> nombre (solo activas), para hidratar respuestas.
func (r *CategoryRepository) CategoryNames(ctx context.Context) (map[int64]string, error) {
	cur, err := r.categories.Find(ctx, bson.M{"isDeleted": 0})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := make(map[int64]string)
	for cur.Next(ctx) {
		var c models.CategoryDoc
		if err := cur.Decode(&c); err != nil {
			return nil, err
		}
		out[c.CategoryID] = c.Name
	}
	return out, cur.Err()
}

// RegionNames devuelve regionId -> nombre.
func (r *CategoryRepository) RegionNames(ctx context.Context) (map[int64]string, error) {
	cur, err := r.regions.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := make(map[int64]string)
	for cur.Next(ctx) {
		var reg models.RegionDoc
		if err := cur.Decode(&reg); err != nil {
			return nil, err
		}
		out[reg.RegionID] = reg.Name
	}
	return out, cur.Err()
}
