package models

type CategoryDoc struct {
	CategoryID int64  `json:"categoryId" bson:"categoryId"`
	Name       string `json:"name" bson:"name"`
	IsDeleted  int    `json:"isDeleted" bson:"isDeleted"`
}

type RegionDoc struct {
	RegionID int64  `json:"regionId" bson:"regionId"`
	Name     string `json:"name" bson:"name"`
}
