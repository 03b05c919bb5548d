package main

import (
	"context"
	"log"
	"net/http"

	_ "github.com/TheayX/WayTrip/docs" // swagger docs

	"github.com/TheayX/WayTrip/internal/cache"
	"github.com/TheayX/WayTrip/internal/config"
	"github.com/TheayX/WayTrip/internal/db"
	"github.com/TheayX/WayTrip/internal/handler"
	"github.com/TheayX/WayTrip/internal/repository"
	"github.com/TheayX/WayTrip/internal/service"
	"github.com/TheayX/WayTrip/internal/task"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

// @title WayTrip API
// @version 1.0
// @description Recomendaciones personalizadas de spots turísticos (ItemCF, Mongo, Redis)
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Load()

	// Mongo y Redis
	db.InitMongo(cfg)
	redisCache := cache.InitRedis(cfg)

	// repos
	userRepo := repository.NewUserRepository()
	spotRepo := repository.NewSpotRepository()
	ratingRepo := repository.NewRatingRepository()
	favoriteRepo := repository.NewFavoriteRepository()
	orderRepo := repository.NewOrderRepository()
	categoryRepo := repository.NewCategoryRepository()
	recRepo := repository.NewRecommendationRepository()
	simStore := repository.NewSimilarityStore(redisCache)

	// services
	ratingSvc := service.NewRatingService(ratingRepo, spotRepo)
	recSvc := service.NewRecommendService(
		ratingRepo, spotRepo, userRepo, favoriteRepo, orderRepo,
		categoryRepo, simStore, recRepo, redisCache,
	)
	simSvc := service.NewSimilarityService(ratingRepo, simStore)

	// rebuild diario de la matriz de similitud
	task.StartDailyRebuild(context.Background(), simSvc)

	// handlers
	ratingH := handler.NewRatingHandler(ratingSvc)
	recH := handler.NewRecommendHandler(recSvc)
	adminSimH := handler.NewAdminSimilarityHandler(simSvc)

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// =============
	// Rutas públicas
	// =============
	r.Get("/health", handler.Health)
	r.Get("/api/v1/home/hot-spots", recH.GetHotSpots)

	// ===========================
	// Rutas protegidas con JWT
	// ===========================
	authMw := handler.JWTAuth(cfg.JWTSecret)

	r.Group(func(r chi.Router) {
		r.Use(authMw)

		r.Route("/api/v1", func(r chi.Router) {
			r.Get("/recommendations", recH.GetRecommendations)
			r.Post("/recommendations/refresh", recH.RefreshRecommendations)
			r.Get("/recommendations/history", recH.GetHistory)
			r.Get("/ws/recommendations", recH.GetRecommendationsWS)

			r.Get("/ratings", ratingH.GetRatings)
			r.Post("/ratings", ratingH.PostRating)

			// ---- solo ADMIN ----
			r.Group(func(r chi.Router) {
				r.Use(handler.AdminOnly())
				handler.MountAdminSimilarityRoutes(r, adminSimH)
			})
		})
	})

	// Swagger UI
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	log.Printf("HTTP escuchando en :%s", cfg.HTTPPort)
	log.Fatal(http.ListenAndServe(":"+cfg.HTTPPort, r))
}
