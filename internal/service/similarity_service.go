package service

import (
	"context"
	"log"
	"math"
	"sort"
	"sync"
	"time"

	"github.com/TheayX/WayTrip/internal/models"

	"golang.org/x/sync/errgroup"
)

const (
	// TopNNeighbors es cuántos vecinos guardamos por spot.
	TopNNeighbors = 20

	// SimilarityTTL: si nadie reconstruye en 24h la entrada expira.
	SimilarityTTL = 24 * time.Hour

	rebuildWorkers = 4
)

// RatingScanner es lo que el rebuild necesita del repo de ratings.
type RatingScanner interface {
	ListActive(ctx context.Context) ([]models.RatingDoc, error)
}

// NeighborWriter publica la lista de vecinos de un spot en el cache.
type NeighborWriter interface {
	ReplaceNeighbors(ctx context.Context, spotID int64, neighbors []models.Neighbor, ttl time.Duration) error
}

// SimilarityService recalcula la matriz de similitud ítem-ítem desde cero.
// Corre como tarea programada (una vez al día) y también por trigger manual.
type SimilarityService struct {
	ratings RatingScanner
	sims    NeighborWriter

	mu     sync.Mutex
	status models.SimilarityStatus
}

func NewSimilarityService(ratings RatingScanner, sims NeighborWriter) *SimilarityService {
	return &SimilarityService{ratings: ratings, sims: sims}
}

// Status devuelve una copia del estado del último rebuild.
func (s *SimilarityService) Status() models.SimilarityStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// tryStart marca el rebuild como corriendo; false si ya había uno en curso.
func (s *SimilarityService) tryStart() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.status.Running {
		return false
	}
	s.status.Running = true
	return true
}

func (s *SimilarityService) finish(start time.Time, processed int, runErr error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status.Running = false
	s.status.LastRunAt = start
	s.status.LastDurationMs = time.Since(start).Milliseconds()
	s.status.ProcessedSpots = processed
	if runErr != nil {
		s.status.LastError = runErr.Error()
	} else {
		s.status.LastError = ""
	}
}

// RebuildSimilarityMatrix recalcula todas las similitudes y reemplaza las
// entradas del cache. Si ya hay un rebuild corriendo, el nuevo se descarta
// (cada entrada se pisa completa, así que no hay estado parcial visible).
func (s *SimilarityService) RebuildSimilarityMatrix(ctx context.Context) error {
	if !s.tryStart() {
		log.Println("[similarity] rebuild ya en curso, se ignora el trigger")
		return nil
	}

	start := time.Now()
	processed := 0
	var runErr error
	defer func() { s.finish(start, processed, runErr) }()

	log.Println("[similarity] iniciando rebuild de la matriz de similitud...")

	ratings, err := s.ratings.ListActive(ctx)
	if err != nil {
		runErr = err
		return err
	}
	if len(ratings) == 0 {
		// sin ratings no hay nada que calcular; no es un error
		log.Println("[similarity] sin ratings, se omite el rebuild")
		return nil
	}

	// 1) matriz usuario -> spot -> score
	matrix := make(map[int64]map[int64]float64)
	for _, r := range ratings {
		userRatings, ok := matrix[r.UserID]
		if !ok {
			userRatings = make(map[int64]float64)
			matrix[r.UserID] = userRatings
		}
		userRatings[r.SpotID] = float64(r.Score)
	}

	// 2) normas y productos punto.
	// La norma de cada spot se acumula sobre TODOS sus votantes; el producto
	// punto solo sobre usuarios que puntuaron ambos spots del par.
	norms := make(map[int64]float64)
	dots := make(map[int64]map[int64]float64)

	for _, userRatings := range matrix {
		ids := make([]int64, 0, len(userRatings))
		for id := range userRatings {
			ids = append(ids, id)
		}

		for i, a := range ids {
			ra := userRatings[a]
			norms[a] += ra * ra

			for _, b := range ids[i+1:] {
				d := ra * userRatings[b]
				addDot(dots, a, b, d)
				addDot(dots, b, a, d)
			}
		}
	}
	for id, n := range norms {
		norms[id] = math.Sqrt(n)
	}

	// orden estable de procesamiento
	spotIDs := make([]int64, 0, len(norms))
	for id := range norms {
		spotIDs = append(spotIDs, id)
	}
	sort.Slice(spotIDs, func(i, j int) bool { return spotIDs[i] < spotIDs[j] })

	// 3) top-N por spot y publicación al cache, en paralelo acotado.
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(rebuildWorkers)

	var pmu sync.Mutex

	for _, spotID := range spotIDs {
		// un apagado no espera la pasada O(S²) completa
		if ctx.Err() != nil {
			runErr = ctx.Err()
			break
		}

		spotID := spotID
		g.Go(func() error {
			neighbors := topNeighbors(spotID, dots[spotID], norms)
			if err := s.sims.ReplaceNeighbors(gctx, spotID, neighbors, SimilarityTTL); err != nil {
				// un spot fallido no aborta el rebuild completo
				log.Printf("[similarity] error guardando vecinos de spot %d: %v", spotID, err)
				return nil
			}
			pmu.Lock()
			processed++
			pmu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	log.Printf("[similarity] rebuild completo: %d spots procesados en %s", processed, time.Since(start))
	return runErr
}

func addDot(dots map[int64]map[int64]float64, a, b int64, d float64) {
	row, ok := dots[a]
	if !ok {
		row = make(map[int64]float64)
		dots[a] = row
	}
	row[b] += d
}

// topNeighbors arma la lista ordenada de vecinos de un spot.
// Solo se conservan similitudes estrictamente positivas; empates se
// resuelven por spotId ascendente para que la salida sea determinista.
func topNeighbors(spotID int64, dots map[int64]float64, norms map[int64]float64) []models.Neighbor {
	out := make([]models.Neighbor, 0, len(dots))

	ni := norms[spotID]
	if ni == 0 {
		return out
	}

	for j, dot := range dots {
		nj := norms[j]
		if nj == 0 {
			continue
		}
		sim := dot / (ni * nj)
		if sim > 0 {
			out = append(out, models.Neighbor{SpotID: j, Sim: sim})
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Sim != out[j].Sim {
			return out[i].Sim > out[j].Sim
		}
		return out[i].SpotID < out[j].SpotID
	})

	if len(out) > TopNNeighbors {
		out = out[:TopNNeighbors]
	}
	return out
}
