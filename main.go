package main

import (
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"notes-api/config"
	"notes-api/controllers"
	"notes-api/database"
	"notes-api/metrics"
	"notes-api/middleware"
	"notes-api/repository"
	"notes-api/routes"
)

func main() {
	cfg := config.Load()

	if cfg.Environment == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	client := database.Connect(cfg.MongoURI)
	defer client.Close()

	noteRepo := repository.NewNoteRepository(client)
	appMetrics := metrics.New()

	router := NewRouter(noteRepo, appMetrics)

	log.Info().Str("port", cfg.Port).Str("env", cfg.Environment).Msg("Starting notes API")
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("Server exited")
	}
}

// NewRouter assembles the gin engine: recovery, CORS, the request
// logging/metrics hook, and all routes.
func NewRouter(noteRepo *repository.NoteRepository, appMetrics *metrics.Metrics) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.Default())
	router.Use(middleware.RequestLogger(appMetrics))

	routes.NoteRoutes(router, controllers.NewNoteController(noteRepo, appMetrics))
	routes.MetricsRoutes(router, controllers.NewMetricsController(noteRepo, appMetrics))

	return router
}
