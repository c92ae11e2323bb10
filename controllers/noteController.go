package controllers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"

	"notes-api/metrics"
	"notes-api/models"
	"notes-api/repository"
)

var validate = validator.New()

const requestTimeout = 100 * time.Second

type NoteController struct {
	repo    *repository.NoteRepository
	metrics *metrics.Metrics
}

func NewNoteController(repo *repository.NoteRepository, m *metrics.Metrics) *NoteController {
	return &NoteController{repo: repo, metrics: m}
}

func (ctrl *NoteController) CreateNote() gin.HandlerFunc {
	return func(c *gin.Context) {
		var ctx, cancel = context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		var req models.CreateNoteRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No data provided"})
			return
		}

		if validationErr := validate.Struct(req); validationErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Title is required"})
			return
		}

		note, err := ctrl.repo.Create(ctx, req.Title, req.Body)
		if err != nil {
			if errors.Is(err, repository.ErrEmptyTitle) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Title is required"})
				return
			}
			log.Error().Err(err).Msg("Error creating note")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create note"})
			return
		}

		ctrl.metrics.IncNotesCreated()

		log.Info().Str("note_id", note.ID.Hex()).Msg("Created note")
		c.JSON(http.StatusCreated, note)
	}
}

func (ctrl *NoteController) GetNotes() gin.HandlerFunc {
	return func(c *gin.Context) {
		var ctx, cancel = context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		notes, err := ctrl.repo.ListAll(ctx)
		if err != nil {
			log.Error().Err(err).Msg("Error listing notes")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve notes"})
			return
		}

		log.Info().Int("count", len(notes)).Msg("Retrieved notes")
		c.JSON(http.StatusOK, notes)
	}
}

func (ctrl *NoteController) GetNote() gin.HandlerFunc {
	return func(c *gin.Context) {
		var ctx, cancel = context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		noteID := c.Param("note_id")

		note, err := ctrl.repo.GetByID(ctx, noteID)
		if err != nil {
			switch {
			case errors.Is(err, repository.ErrInvalidID):
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid note ID"})
			case errors.Is(err, repository.ErrNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": "Note not found"})
			default:
				log.Error().Err(err).Str("note_id", noteID).Msg("Error retrieving note")
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve note"})
			}
			return
		}

		c.JSON(http.StatusOK, note)
	}
}

func (ctrl *NoteController) SearchNotes() gin.HandlerFunc {
	return func(c *gin.Context) {
		var ctx, cancel = context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		query := c.Query("q")

		notes, err := ctrl.repo.Search(ctx, query)
		if err != nil {
			if errors.Is(err, repository.ErrEmptyQuery) {
				c.JSON(http.StatusBadRequest, gin.H{"error": `Query parameter "q" is required`})
				return
			}
			log.Error().Err(err).Str("query", query).Msg("Error searching notes")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to search notes"})
			return
		}

		log.Info().Int("count", len(notes)).Str("query", query).Msg("Found notes matching query")
		c.JSON(http.StatusOK, notes)
	}
}

func (ctrl *NoteController) DeleteNote() gin.HandlerFunc {
	return func(c *gin.Context) {
		var ctx, cancel = context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		noteID := c.Param("note_id")

		deleted, err := ctrl.repo.DeleteByID(ctx, noteID)
		if err != nil {
			if errors.Is(err, repository.ErrInvalidID) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid note ID"})
				return
			}
			log.Error().Err(err).Str("note_id", noteID).Msg("Error deleting note")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete note"})
			return
		}

		if !deleted {
			c.JSON(http.StatusNotFound, gin.H{"error": "Note not found"})
			return
		}

		log.Info().Str("note_id", noteID).Msg("Deleted note")
		c.JSON(http.StatusOK, gin.H{"message": "Note deleted successfully"})
	}
}
