package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/TheayX/WayTrip/internal/cache"
	"github.com/TheayX/WayTrip/internal/config"
	"github.com/TheayX/WayTrip/internal/db"
	"github.com/TheayX/WayTrip/internal/repository"
	"github.com/TheayX/WayTrip/internal/service"
)

// Rebuild manual de la matriz de similitud: corre una pasada completa y termina.
// Pensado para operadores (cron externo, debugging de datos nuevos).
func main() {
	cfg := config.Load()
	db.InitMongo(cfg)
	redisCache := cache.InitRedis(cfg)

	ratingRepo := repository.NewRatingRepository()
	simStore := repository.NewSimilarityStore(redisCache)
	simSvc := service.NewSimilarityService(ratingRepo, simStore)

	// un Ctrl-C corta la pasada entre spot y spot
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := simSvc.RebuildSimilarityMatrix(ctx); err != nil {
		log.Fatalf("[rebuild] falló: %v", err)
	}

	st := simSvc.Status()
	log.Printf("[rebuild] listo: %d spots en %dms", st.ProcessedSpots, st.LastDurationMs)
}
