package handler

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"github.com/TheayX/WayTrip/internal/service"

	"github.com/go-chi/chi/v5"
)

// AdminSimilarityHandler expone el mantenimiento de la matriz de similitud.
type AdminSimilarityHandler struct {
	svc *service.SimilarityService
}

func NewAdminSimilarityHandler(svc *service.SimilarityService) *AdminSimilarityHandler {
	return &AdminSimilarityHandler{svc: svc}
}

// @Summary Estado del último rebuild de similitudes
// @Tags admin-similarity
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.SimilarityStatus
// @Router /api/v1/admin/similarity/status [get]
func (h *AdminSimilarityHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Status())
}

// @Summary Disparar rebuild manual de la matriz de similitud
// @Description El rebuild corre en background; si ya hay uno en curso el trigger se ignora.
// @Tags admin-similarity
// @Security BearerAuth
// @Produce json
// @Success 202 {object} map[string]string
// @Router /api/v1/admin/similarity/rebuild [post]
func (h *AdminSimilarityHandler) PostRebuild(w http.ResponseWriter, r *http.Request) {
	// no atamos el rebuild al request: puede tardar minutos
	go func() {
		if err := h.svc.RebuildSimilarityMatrix(context.Background()); err != nil {
			log.Printf("[admin] rebuild manual falló: %v", err)
		}
	}()

	writeJSON(w, http.StatusAccepted, map[string]string{"status": "rebuild encolado"})
}

// Utilidad pequeña para respuestas JSON.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Helper para montar rutas en main.go
func MountAdminSimilarityRoutes(r chi.Router, h *AdminSimilarityHandler) {
	r.Route("/admin/similarity", func(r chi.Router) {
		r.Get("/status", h.GetStatus)
		r.Post("/rebuild", h.PostRebuild)
	})
}
