package handler

import (
	"encoding/json"
	"net/http"

	"github.com/TheayX/WayTrip/internal/service"
)

type RatingHandler struct {
	svc *service.RatingService
}

func NewRatingHandler(s *service.RatingService) *RatingHandler { return &RatingHandler{svc: s} }

type ratingRequest struct {
	SpotID  int64  `json:"spotId"`
	Score   int    `json:"score"`
	Comment string `json:"comment,omitempty"`
}

// @Summary Crear/actualizar rating del usuario autenticado
// @Tags ratings
// @Accept json
// @Param body body ratingRequest true "rating"
// @Success 204
// @Security BearerAuth
// @Router /api/v1/ratings [post]
func (h *RatingHandler) PostRating(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	userID := UserIDFromContext(r.Context())

	var req ratingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), 400)
		return
	}
	if err := h.svc.AddOrUpdate(r.Context(), userID, req.SpotID, req.Score, req.Comment); err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// @Summary Listar ratings del usuario autenticado
// @Tags ratings
// @Produce json
// @Success 200 {array} models.RatingDoc
// @Security BearerAuth
// @Router /api/v1/ratings [get]
func (h *RatingHandler) GetRatings(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	userID := UserIDFromContext(r.Context())

	list, err := h.svc.GetByUser(r.Context(), userID)
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	_ = json.NewEncoder(w).Encode(list)
}
