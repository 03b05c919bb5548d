package models

// Estados de una orden de compra de entradas.
const (
	OrderStatusPending   = 0
	OrderStatusPaid      = 1
	OrderStatusCancelled = 2
	OrderStatusRefunded  = 3
)

type FavoriteDoc struct {
	UserID    int64  `json:"userId" bson:"userId"`
	SpotID    int64  `json:"spotId" bson:"spotId"`
	IsDeleted int    `json:"isDeleted" bson:"isDeleted"`
	CreatedAt string `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
}

type OrderDoc struct {
	OrderNo     string  `json:"orderNo" bson:"orderNo"`
	UserID      int64   `json:"userId" bson:"userId"`
	SpotID      int64   `json:"spotId" bson:"spotId"`
	Quantity    int     `json:"quantity" bson:"quantity"`
	TotalAmount float64 `json:"totalAmount" bson:"totalAmount"`
	Status      int     `json:"status" bson:"status"`
	IsDeleted   int     `json:"isDeleted" bson:"isDeleted"`
	CreatedAt   string  `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
}
