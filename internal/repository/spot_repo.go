package repository

import (
	"context"

	"github.com/TheayX/WayTrip/internal/db"
	"github.com/TheayX/WayTrip/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type SpotRepository struct {
	col *mongo.Collection
}

func NewSpotRepository() *SpotRepository {
	return &SpotRepository{col: db.DB().Collection("spots")}
}

// filtro base: solo spots publicados y no borrados
func publishedFilter() bson.M {
	return bson.M{"published": 1, "isDeleted": 0}
}

func (r *SpotRepository) GetByID(ctx context.Context, spotID int64) (*models.SpotDoc, error) {
	var s models.SpotDoc
	err := r.col.FindOne(ctx, bson.M{"spotId": spotID}).Decode(&s)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// GetByIDs trae spots por id (sin garantía de orden; el servicio reordena).
func (r *SpotRepository) GetByIDs(ctx context.Context, ids []int64) ([]models.SpotDoc, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	return r.find(ctx, bson.M{"spotId": bson.M{"$in": ids}}, nil)
}

// GetHot devuelve los spots publicados ordenados por heatScore descendente.
func (r *SpotRepository) GetHot(ctx context.Context, limit int64) ([]models.SpotDoc, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "heatScore", Value: -1}}).
		SetLimit(limit)
	return r.find(ctx, publishedFilter(), opts)
}

// GetPublishedByCategories devuelve spots publicados de esas categorías,
// ordenados por heatScore descendente (rama "preference" del cold start).
func (r *SpotRepository) GetPublishedByCategories(ctx context.Context, categoryIDs []int64, limit int64) ([]models.SpotDoc, error) {
	if len(categoryIDs) == 0 {
		return nil, nil
	}
	filter := publishedFilter()
	filter["categoryId"] = bson.M{"$in": categoryIDs}

	opts := options.Find().
		SetSort(bson.D{{Key: "heatScore", Value: -1}}).
		SetLimit(limit)
	return r.find(ctx, filter, opts)
}

// UpdateStats pisa avgRating / ratingCount / heatScore (lo usa el servicio de ratings).
func (r *SpotRepository) UpdateStats(ctx context.Context, spotID int64, avgRating float64, ratingCount, heatScore int, updatedAt string) error {
	_, err := r.col.UpdateOne(ctx,
		bson.M{"spotId": spotID},
		bson.M{"$set": bson.M{
			"avgRating":   avgRating,
			"ratingCount": ratingCount,
			"heatScore":   heatScore,
			"updatedAt":   updatedAt,
		}},
	)
	return err
}

func (r *SpotRepository) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.SpotDoc, error) {
	var cur *mongo.Cursor
	var err error
	if opts != nil {
		cur, err = r.col.Find(ctx, filter, opts)
	} else {
		cur, err = r.col.Find(ctx, filter)
	}
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.SpotDoc
	for cur.Next(ctx) {
		var s models.SpotDoc
		if err := cur.Decode(&s); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, cur.Err()
}
