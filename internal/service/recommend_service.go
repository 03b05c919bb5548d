package service

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/TheayX/WayTrip/internal/cache"
	"github.com/TheayX/WayTrip/internal/models"
	"github.com/TheayX/WayTrip/internal/repository"
)

const (
	// MinRatingsForCF: con menos ratings activos que esto, cold start.
	MinRatingsForCF = 3

	DefaultLimit = 10
	MaxLimit     = 50 // por seguridad, no deja pedir 1000 ítems

	// RecCacheTTL es el TTL del cache de recomendaciones por usuario.
	RecCacheTTL = time.Hour
)

// Contratos que el servicio consume. Los repos de Mongo los implementan;
// los tests usan fakes en memoria.

type RatingStore interface {
	GetActiveByUser(ctx context.Context, userID int64) ([]models.RatingDoc, error)
	CountActiveByUser(ctx context.Context, userID int64) (int64, error)
}

type SpotStore interface {
	GetByIDs(ctx context.Context, ids []int64) ([]models.SpotDoc, error)
	GetHot(ctx context.Context, limit int64) ([]models.SpotDoc, error)
	GetPublishedByCategories(ctx context.Context, categoryIDs []int64, limit int64) ([]models.SpotDoc, error)
}

type UserStore interface {
	FindByID(ctx context.Context, userID int64) (*models.UserDoc, error)
}

type FavoriteStore interface {
	ListActiveSpotIDs(ctx context.Context, userID int64) ([]int64, error)
}

type OrderStore interface {
	ListNonCancelledSpotIDs(ctx context.Context, userID int64) ([]int64, error)
}

type CategoryStore interface {
	CategoryNames(ctx context.Context) (map[int64]string, error)
	RegionNames(ctx context.Context) (map[int64]string, error)
}

// NeighborReader lee las listas de vecinos publicadas por el rebuild.
type NeighborReader interface {
	GetNeighbors(ctx context.Context, spotID int64, k int) ([]models.Neighbor, error)
}

// RecommendationLog guarda y lee el historial en Mongo (la escritura es best effort).
type RecommendationLog interface {
	Insert(ctx context.Context, rec *models.Recommendation) error
	FindByUser(ctx context.Context, userID int64, limit int64) ([]models.Recommendation, error)
}

type RecommendService struct {
	ratings    RatingStore
	spots      SpotStore
	users      UserStore
	favorites  FavoriteStore
	orders     OrderStore
	categories CategoryStore
	sims       NeighborReader
	history    RecommendationLog
	cache      cache.Cache
}

func NewRecommendService(
	ratings RatingStore,
	spots SpotStore,
	users UserStore,
	favorites FavoriteStore,
	orders OrderStore,
	categories CategoryStore,
	sims NeighborReader,
	history RecommendationLog,
	c cache.Cache,
) *RecommendService {
	return &RecommendService{
		ratings:    ratings,
		spots:      spots,
		users:      users,
		favorites:  favorites,
		orders:     orders,
		categories: categories,
		sims:       sims,
		history:    history,
		cache:      c,
	}
}

// lo que guardamos en recommendation:user:<id>
type cachedRecommendation struct {
	Type    string  `json:"type"`
	SpotIDs []int64 `json:"spotIds"`
}

// GetRecommendations devuelve la lista personalizada del usuario,
// usando el cache si hay una entrada vigente.
func (s *RecommendService) GetRecommendations(ctx context.Context, userID int64, limit int) (*models.RecommendationResponse, error) {
	limit = normalizeLimit(limit)

	var cached cachedRecommendation
	if ok, err := s.cache.GetJSON(ctx, repository.UserRecKey(userID), &cached); err == nil && ok && len(cached.SpotIDs) > 0 {
		return s.buildResponse(ctx, cached.SpotIDs, nil, limit, cached.Type, false)
	}

	return s.compute(ctx, userID, limit)
}

// RefreshRecommendations descarta el cache del usuario y recalcula.
// Nunca lee el cache.
func (s *RecommendService) RefreshRecommendations(ctx context.Context, userID int64, limit int) (*models.RecommendationResponse, error) {
	limit = normalizeLimit(limit)

	if err := s.cache.Delete(ctx, repository.UserRecKey(userID)); err != nil {
		// el recálculo pisa la entrada igual
		log.Printf("[recommend] error borrando cache de usuario %d: %v", userID, err)
	}

	return s.compute(ctx, userID, limit)
}

func (s *RecommendService) compute(ctx context.Context, userID int64, limit int) (*models.RecommendationResponse, error) {
	count, err := s.ratings.CountActiveByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	// cold start: historial insuficiente
	if count < MinRatingsForCF {
		return s.coldStart(ctx, userID, limit)
	}

	// pedimos 2x para absorber lo que descarta el filtro de interacciones
	candidates, scores, err := s.itemCFCandidates(ctx, userID, limit*2)
	if err != nil {
		return nil, err
	}

	filtered, err := s.filterInteracted(ctx, userID, candidates)
	if err != nil {
		return nil, err
	}
	if len(filtered) == 0 {
		return s.coldStart(ctx, userID, limit)
	}

	s.cacheResult(ctx, userID, models.RecTypePersonalized, filtered)
	s.logHistory(ctx, userID, models.RecTypePersonalized, filtered, scores)

	return s.buildResponse(ctx, filtered, scores, limit, models.RecTypePersonalized, false)
}

// itemCFCandidates acumula score[j] += sim(i,j) * rating(i) sobre los vecinos
// de cada spot puntuado por el usuario. Sin datos de vecinos devuelve vacío
// (dispara cold start). Empates se ordenan por spotId ascendente.
func (s *RecommendService) itemCFCandidates(ctx context.Context, userID int64, max int) ([]int64, map[int64]float64, error) {
	ratings, err := s.ratings.GetActiveByUser(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	if len(ratings) == 0 {
		return nil, nil, nil
	}

	ratingMap := make(map[int64]int, len(ratings))
	for _, r := range ratings {
		ratingMap[r.SpotID] = r.Score
	}

	scores := make(map[int64]float64)
	for spotID, score := range ratingMap {
		// entrada ausente o expirada => sin vecinos, no aporta nada
		neighbors, err := s.sims.GetNeighbors(ctx, spotID, 0)
		if err != nil {
			return nil, nil, err
		}

		for _, n := range neighbors {
			if _, rated := ratingMap[n.SpotID]; rated {
				continue
			}
			scores[n.SpotID] += n.Sim * float64(score)
		}
	}

	ids := make([]int64, 0, len(scores))
	for id := range scores {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		if scores[ids[i]] != scores[ids[j]] {
			return scores[ids[i]] > scores[ids[j]]
		}
		return ids[i] < ids[j]
	})

	if len(ids) > max {
		ids = ids[:max]
	}
	return ids, scores, nil
}

// filterInteracted quita de los candidatos los spots con los que el usuario
// ya interactuó: puntuados, favoritos y con orden no cancelada. La unión se
// calcula una sola vez; el orden de los candidatos restantes se preserva.
func (s *RecommendService) filterInteracted(ctx context.Context, userID int64, candidates []int64) ([]int64, error) {
	if len(candidates) == 0 {
		return candidates, nil
	}

	exclude := make(map[int64]struct{})

	rated, err := s.ratings.GetActiveByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	for _, r := range rated {
		exclude[r.SpotID] = struct{}{}
	}

	favs, err := s.favorites.ListActiveSpotIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	for _, id := range favs {
		exclude[id] = struct{}{}
	}

	ordered, err := s.orders.ListNonCancelledSpotIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	for _, id := range ordered {
		exclude[id] = struct{}{}
	}

	out := make([]int64, 0, len(candidates))
	for _, id := range candidates {
		if _, skip := exclude[id]; skip {
			continue
		}
		out = append(out, id)
	}
	return out, nil
}

// coldStart sirve una lista útil cuando ItemCF no puede: primero por
// preferencias del usuario, si no hay, populares con aviso de configurar
// gustos. Nunca falla por falta de datos (puede devolver lista vacía).
func (s *RecommendService) coldStart(ctx context.Context, userID int64, limit int) (*models.RecommendationResponse, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("usuario %d no encontrado", userID)
	}

	categoryIDs := parsePreferences(user.Preferences)
	if len(categoryIDs) > 0 {
		spots, err := s.spots.GetPublishedByCategories(ctx, categoryIDs, int64(limit))
		if err != nil {
			return nil, err
		}

		ids := make([]int64, 0, len(spots))
		for _, sp := range spots {
			ids = append(ids, sp.SpotID)
		}

		s.cacheResult(ctx, userID, models.RecTypePreference, ids)
		s.logHistory(ctx, userID, models.RecTypePreference, ids, nil)

		return s.buildResponse(ctx, ids, nil, limit, models.RecTypePreference, false)
	}

	// sin preferencias: populares + needPreference. Esta rama NO se cachea,
	// así configurar gustos surte efecto en la próxima llamada sin esperar TTL.
	hot, err := s.GetHotSpots(ctx, limit)
	if err != nil {
		return nil, err
	}

	resp := &models.RecommendationResponse{
		Type:           models.RecTypeHot,
		NeedPreference: true,
		List:           make([]models.SpotItem, 0, len(hot.List)),
	}
	for _, h := range hot.List {
		resp.List = append(resp.List, models.SpotItem{
			ID:           h.ID,
			Name:         h.Name,
			CoverImage:   h.CoverImage,
			Price:        h.Price,
			AvgRating:    h.AvgRating,
			CategoryName: h.CategoryName,
		})
	}
	return resp, nil
}

// GetHistory lista las últimas recomendaciones calculadas para el usuario.
func (s *RecommendService) GetHistory(ctx context.Context, userID int64, limit int) ([]models.Recommendation, error) {
	return s.history.FindByUser(ctx, userID, int64(normalizeLimit(limit)))
}

// GetHotSpots devuelve los spots publicados más populares por heatScore.
// Lo usa la rama "hot" del cold start y la home pública.
func (s *RecommendService) GetHotSpots(ctx context.Context, limit int) (*models.HotSpotResponse, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	spots, err := s.spots.GetHot(ctx, int64(limit))
	if err != nil {
		return nil, err
	}

	catNames, err := s.categories.CategoryNames(ctx)
	if err != nil {
		return nil, err
	}

	resp := &models.HotSpotResponse{List: make([]models.HotSpotItem, 0, len(spots))}
	for _, sp := range spots {
		resp.List = append(resp.List, models.HotSpotItem{
			ID:           sp.SpotID,
			Name:         sp.Name,
			CoverImage:   sp.CoverImage,
			Price:        sp.Price,
			AvgRating:    sp.AvgRating,
			HeatScore:    sp.HeatScore,
			CategoryName: catNames[sp.CategoryID],
		})
	}
	return resp, nil
}

// buildResponse hidrata los ids con el catálogo preservando el orden.
// Spots borrados o despublicados se descartan en silencio.
func (s *RecommendService) buildResponse(ctx context.Context, ids []int64, scores map[int64]float64, limit int, typ string, needPreference bool) (*models.RecommendationResponse, error) {
	if len(ids) > limit {
		ids = ids[:limit]
	}

	resp := &models.RecommendationResponse{
		Type:           typ,
		NeedPreference: needPreference,
		List:           []models.SpotItem{},
	}
	if len(ids) == 0 {
		return resp, nil
	}

	spots, err := s.spots.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	catNames, err := s.categories.CategoryNames(ctx)
	if err != nil {
		return nil, err
	}
	regNames, err := s.categories.RegionNames(ctx)
	if err != nil {
		return nil, err
	}

	spotMap := make(map[int64]models.SpotDoc, len(spots))
	for _, sp := range spots {
		spotMap[sp.SpotID] = sp
	}

	for _, id := range ids {
		sp, ok := spotMap[id]
		if !ok || sp.IsDeleted != 0 || sp.Published != 1 {
			continue
		}

		item := models.SpotItem{
			ID:           sp.SpotID,
			Name:         sp.Name,
			CoverImage:   sp.CoverImage,
			Price:        sp.Price,
			AvgRating:    sp.AvgRating,
			RatingCount:  sp.RatingCount,
			CategoryName: catNames[sp.CategoryID],
			RegionName:   regNames[sp.RegionID],
		}
		if scores != nil {
			item.Score = scores[id]
		}
		resp.List = append(resp.List, item)
	}
	return resp, nil
}

// cacheResult guarda los ids calculados (si hay) con TTL de 1h.
func (s *RecommendService) cacheResult(ctx context.Context, userID int64, typ string, ids []int64) {
	if len(ids) == 0 {
		return
	}
	entry := cachedRecommendation{Type: typ, SpotIDs: ids}
	if err := s.cache.SetJSON(ctx, repository.UserRecKey(userID), entry, RecCacheTTL); err != nil {
		log.Printf("[recommend] error cacheando recomendación de usuario %d: %v", userID, err)
	}
}

// logHistory inserta el historial en Mongo; si falla no rompemos la respuesta.
func (s *RecommendService) logHistory(ctx context.Context, userID int64, typ string, ids []int64, scores map[int64]float64) {
	if s.history == nil || len(ids) == 0 {
		return
	}

	items := make([]models.RecItem, 0, len(ids))
	for _, id := range ids {
		items = append(items, models.RecItem{SpotID: id, Score: scores[id]})
	}

	rec := &models.Recommendation{
		UserID:    userID,
		Type:      typ,
		Items:     items,
		CreatedAt: time.Now(),
	}
	if err := s.history.Insert(ctx, rec); err != nil {
		log.Printf("[recommend] error guardando historial de usuario %d: %v", userID, err)
	}
}

func normalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}

// parsePreferences parsea "1,3,5" a ids de categoría; entradas inválidas se ignoran.
func parsePreferences(prefs string) []int64 {
	if strings.TrimSpace(prefs) == "" {
		return nil
	}

	var out []int64
	for _, part := range strings.Split(prefs, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			continue
		}
		out = append(out, id)
	}
	return out
}
