package repository

import (
	"context"
	"time"

	"github.com/TheayX/WayTrip/internal/db"
	"github.com/TheayX/WayTrip/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type RatingRepository struct {
	col *mongo.Collection
}

func NewRatingRepository() *RatingRepository {
	return &RatingRepository{col: db.DB().Collection("ratings")}
}

// UpsertRating crea o pisa el rating activo de (userId, spotId).
func (r *RatingRepository) UpsertRating(ctx context.Context, userID, spotID int64, score int, comment string) error {
	_, err := r.col.UpdateOne(ctx,
		bson.M{"userId": userID, "spotId": spotID, "isDeleted": 0},
		bson.M{"$set": bson.M{
			"score":   score,
			"comment": comment,
			// guardamos epoch (int64)
			"timestamp": time.Now().Unix(),
		}},
		options.Update().SetUpsert(true),
	)
	return err
}

// GetOne devuelve el rating activo de (userId, spotId), o nil si no existe.
func (r *RatingRepository) GetOne(ctx context.Context, userID, spotID int64) (*models.RatingDoc, error) {
	var doc models.RatingDoc
	err := r.col.FindOne(ctx, bson.M{"userId": userID, "spotId": spotID, "isDeleted": 0}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// GetActiveByUser devuelve todos los ratings activos del usuario.
func (r *RatingRepository) GetActiveByUser(ctx context.Context, userID int64) ([]models.RatingDoc, error) {
	return r.find(ctx, bson.M{"userId": userID, "isDeleted": 0})
}

// CountActiveByUser cuenta los ratings activos del usuario (umbral de cold start).
func (r *RatingRepository) CountActiveByUser(ctx context.Context, userID int64) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{"userId": userID, "isDeleted": 0})
}

// ListActive devuelve TODOS los ratings activos (scan completo, sin paginar).
// Lo usa el rebuild de similitudes.
func (r *RatingRepository) ListActive(ctx context.Context) ([]models.RatingDoc, error) {
	return r.find(ctx, bson.M{"isDeleted": 0})
}

func (r *RatingRepository) find(ctx context.Context, filter bson.M) ([]models.RatingDoc, error) {
	cur, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.RatingDoc
	for cur.Next(ctx) {
		var doc models.RatingDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		out = append(out, doc)
	}
	return out, cur.Err()
}
