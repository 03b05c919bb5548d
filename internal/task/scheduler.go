package task

import (
	"context"
	"log"
	"time"
)

// RebuildHour: la matriz se reconstruye todos los días a las 03:00.
const RebuildHour = 3

// Rebuilder es lo que el scheduler necesita del servicio de similitudes.
type Rebuilder interface {
	RebuildSimilarityMatrix(ctx context.Context) error
}

// StartDailyRebuild lanza una goroutine que dispara el rebuild una vez al día.
// Un rebuild fallido se loguea y el scheduler sigue vivo; ctx cancelado lo detiene.
func StartDailyRebuild(ctx context.Context, svc Rebuilder) {
	go func() {
		for {
			wait := time.Until(NextRun(time.Now()))
			log.Printf("[task] próximo rebuild de similitudes en %s", wait.Round(time.Second))

			select {
			case <-ctx.Done():
				log.Println("[task] scheduler de similitudes detenido")
				return
			case <-time.After(wait):
				runRebuild(ctx, svc)
			}
		}
	}()
}

func runRebuild(ctx context.Context, svc Rebuilder) {
	defer func() {
		if rec := recover(); rec != nil {
			log.Printf("[task] pánico en rebuild de similitudes: %v", rec)
		}
	}()

	log.Println("[task] tarea programada: actualizando matriz de similitud")
	if err := svc.RebuildSimilarityMatrix(ctx); err != nil {
		log.Printf("[task] rebuild de similitudes falló: %v", err)
		return
	}
	log.Println("[task] matriz de similitud actualizada")
}

// NextRun devuelve la próxima ocurrencia de las RebuildHour:00 después de `now`.
func NextRun(now time.Time) time.Time {
	next := time.Date(now.Year(), now.Month(), now.Day(), RebuildHour, 0, 0, 0, now.Location())
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}
