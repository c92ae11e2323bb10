package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"notes-api/metrics"
	"notes-api/repository"
)

type MetricsController struct {
	repo    *repository.NoteRepository
	metrics *metrics.Metrics
}

func NewMetricsController(repo *repository.NoteRepository, m *metrics.Metrics) *MetricsController {
	return &MetricsController{repo: repo, metrics: m}
}

func (ctrl *MetricsController) GetMetrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		var ctx, cancel = context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		// an unreachable store reports zero notes rather than failing
		// the whole endpoint
		notesInDB, err := ctrl.repo.Count(ctx)
		if err != nil {
			log.Warn().Err(err).Msg("Error counting notes")
			notesInDB = 0
		}

		c.JSON(http.StatusOK, ctrl.metrics.Snapshot(notesInDB))
	}
}

func (ctrl *MetricsController) Health() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	}
}
