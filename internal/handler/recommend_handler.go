package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/TheayX/WayTrip/internal/models"
	"github.com/TheayX/WayTrip/internal/service"

	"github.com/gorilla/websocket"
)

type RecommendHandler struct {
	svc *service.RecommendService
}

func NewRecommendHandler(s *service.RecommendService) *RecommendHandler {
	return &RecommendHandler{svc: s}
}

func limitParam(r *http.Request) int {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	return limit
}

// @Summary Recomendaciones personalizadas del usuario autenticado
// @Tags recommendations
// @Produce json
// @Param limit query int false "cantidad de spots (máx 50)"
// @Success 200 {object} models.RecommendationResponse
// @Security BearerAuth
// @Router /api/v1/recommendations [get]
func (h *RecommendHandler) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	userID := UserIDFromContext(r.Context())

	resp, err := h.svc.GetRecommendations(r.Context(), userID, limitParam(r))
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	_ = json.NewEncoder(w).Encode(resp)
}

// @Summary Recalcular recomendaciones ignorando el cache
// @Tags recommendations
// @Produce json
// @Param limit query int false "cantidad de spots (máx 50)"
// @Success 200 {object} models.RecommendationResponse
// @Security BearerAuth
// @Router /api/v1/recommendations/refresh [post]
func (h *RecommendHandler) RefreshRecommendations(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	userID := UserIDFromContext(r.Context())

	resp, err := h.svc.RefreshRecommendations(r.Context(), userID, limitParam(r))
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	_ = json.NewEncoder(w).Encode(resp)
}

// @Summary Spots populares (sin personalizar)
// @Tags home
// @Produce json
// @Param limit query int false "cantidad de spots"
// @Success 200 {object} models.HotSpotResponse
// @Router /api/v1/home/hot-spots [get]
func (h *RecommendHandler) GetHotSpots(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	resp, err := h.svc.GetHotSpots(r.Context(), limitParam(r))
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	_ = json.NewEncoder(w).Encode(resp)
}

// @Summary Historial de recomendaciones calculadas para el usuario
// @Tags recommendations
// @Produce json
// @Param limit query int false "cantidad de entradas (máx 50)"
// @Success 200 {array} models.Recommendation
// @Security BearerAuth
// @Router /api/v1/recommendations/history [get]
func (h *RecommendHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	userID := UserIDFromContext(r.Context())

	recs, err := h.svc.GetHistory(r.Context(), userID, limitParam(r))
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	if recs == nil {
		recs = []models.Recommendation{}
	}
	_ = json.NewEncoder(w).Encode(recs)
}

// upgrader global (no afecta a swagger)
var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// @Summary Recomendaciones en tiempo real (WebSocket)
// @Tags recommendations
// @Produce json
// @Param limit query int false "cantidad de spots (máx 50)"
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /api/v1/ws/recommendations [get]
func (h *RecommendHandler) GetRecommendationsWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		http.Error(w, "No se pudo abrir WebSocket", 400)
		return
	}
	defer conn.Close()

	userID := UserIDFromContext(r.Context())
	limit := limitParam(r)

	// mensaje inicial
	conn.WriteJSON(map[string]any{
		"type": "start",
		"msg":  "Conexión WS abierta, calculando recomendaciones…",
	})

	resp, err := h.svc.RefreshRecommendations(r.Context(), userID, limit)
	if err != nil {
		conn.WriteJSON(map[string]any{
			"type":  "error",
			"error": err.Error(),
		})
		return
	}

	conn.WriteJSON(map[string]any{
		"type":           "recommendations",
		"userId":         userID,
		"recType":        resp.Type,
		"needPreference": resp.NeedPreference,
		"list":           resp.List,
	})
}
