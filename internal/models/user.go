package models

// UserDoc es el usuario del miniprograma.
// Preferences guarda ids de categoría separados por coma ("1,3,5");
// vacío significa que el usuario aún no configuró sus gustos.
type UserDoc struct {
	UserID      int64  `json:"userId" bson:"userId"`
	Nickname    string `json:"nickname,omitempty" bson:"nickname,omitempty"`
	Avatar      string `json:"avatar,omitempty" bson:"avatar,omitempty"`
	Preferences string `json:"preferences,omitempty" bson:"preferences,omitempty"`
	IsDeleted   int    `json:"isDeleted" bson:"isDeleted"`
	CreatedAt   string `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
}
