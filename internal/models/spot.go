package models

// SpotDoc es el documento de un punto de interés en Mongo.
// Solo los spots publicados y no borrados son candidatos a recomendación.
type SpotDoc struct {
	SpotID      int64   `json:"spotId" bson:"spotId"`
	Name        string  `json:"name" bson:"name"`
	Description string  `json:"description,omitempty" bson:"description,omitempty"`
	Price       float64 `json:"price" bson:"price"`
	CoverImage  string  `json:"coverImage,omitempty" bson:"coverImage,omitempty"`
	Address     string  `json:"address,omitempty" bson:"address,omitempty"`
	CategoryID  int64   `json:"categoryId" bson:"categoryId"`
	RegionID    int64   `json:"regionId" bson:"regionId"`
	HeatScore   int     `json:"heatScore" bson:"heatScore"`
	AvgRating   float64 `json:"avgRating" bson:"avgRating"`
	RatingCount int     `json:"ratingCount" bson:"ratingCount"`
	Published   int     `json:"published" bson:"published"`
	IsDeleted   int     `json:"isDeleted" bson:"isDeleted"`
	CreatedAt   string  `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
	UpdatedAt   string  `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

// SpotItem es lo que devolvemos por API dentro de una recomendación.
type SpotItem struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	CoverImage   string  `json:"coverImage,omitempty"`
	Price        float64 `json:"price"`
	AvgRating    float64 `json:"avgRating"`
	RatingCount  int     `json:"ratingCount"`
	CategoryName string  `json:"categoryName,omitempty"`
	RegionName   string  `json:"regionName,omitempty"`
	Score        float64 `json:"score,omitempty"`
}

// HotSpotItem es un spot del ranking de populares (home / cold start).
type HotSpotItem struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	CoverImage   string  `json:"coverImage,omitempty"`
	Price        float64 `json:"price"`
	AvgRating    float64 `json:"avgRating"`
	HeatScore    int     `json:"heatScore"`
	CategoryName string  `json:"categoryName,omitempty"`
}

type HotSpotResponse struct {
	List []HotSpotItem `json:"list"`
}
