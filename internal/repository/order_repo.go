package repository

import (
	"context"

	"github.com/TheayX/WayTrip/internal/db"
	"github.com/TheayX/WayTrip/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type OrderRepository struct {
	col *mongo.Collection
}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{col: db.DB().Collection("orders")}
}

// ListNonCancelledSpotIDs devuelve los spotIds con orden activa del usuario
// (cualquier estado menos cancelada).
func (r *OrderRepository) ListNonCancelledSpotIDs(ctx context.Context, userID int64) ([]int64, error) {
	return distinctSpotIDs(ctx, r.col, bson.M{
		"userId":    userID,
		"isDeleted": 0,
		"status":    bson.M{"$ne": models.OrderStatusCancelled},
	})
}
