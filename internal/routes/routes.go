package routes

import (
	"github.com/ErkinAl/MuvTimeBack/internal/config"
	"github.com/ErkinAl/MuvTimeBack/internal/handlers"
	"github.com/ErkinAl/MuvTimeBack/internal/middleware"
	"github.com/ErkinAl/MuvTimeBack/internal/repository"
	"github.com/ErkinAl/MuvTimeBack/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
)

func RegisterRoutes(app *fiber.App, cfg *config.Config, db *pgxpool.Pool) {
	statsRepo := repository.NewUserStatsRepository(db)
	profileRepo := repository.NewUserProfileRepository(db)
	sessionRepo := repository.NewExerciseSessionRepository(db)

	statsService := services.NewStatsService(db, statsRepo, profileRepo, sessionRepo)
	statsHandler := handlers.NewStatsHandler(statsService)
	testHandler := handlers.NewTestHandler(statsService)

	api := app.Group("/api")

	test := api.Group("/test")
	test.Get("", testHandler.Ping)
	test.Get("/health", testHandler.Health)
	test.Get("/db-test", testHandler.DatabaseTest)

	v1 := api.Group("/v1")
	if cfg.JWTSecret != "" {
		v1.Use(middleware.AuthRequired(cfg.JWTSecret))
	}

	stats := v1.Group("/stats")
	stats.Get("/:userId", statsHandler.GetStats)
	stats.Post("/:userId/update", statsHandler.UpdateStats)
	stats.Get("/:userId/sessions", statsHandler.GetSessions)
	stats.Post("/:userId/reset", statsHandler.ResetStats)
	stats.Post("/:userId/initialize", statsHandler.InitializeStats)

	RegisterDocs(app, cfg)
}
