package routes

import (
	"github.com/gin-gonic/gin"

	"notes-api/controllers"
)

func NoteRoutes(incomingRoutes *gin.Engine, ctrl *controllers.NoteController) {
	incomingRoutes.POST("/notes", ctrl.CreateNote())
	incomingRoutes.GET("/notes", ctrl.GetNotes())
	incomingRoutes.GET("/notes/search", ctrl.SearchNotes())
	incomingRoutes.GET("/notes/:note_id", ctrl.GetNote())
	incomingRoutes.DELETE("/notes/:note_id", ctrl.DeleteNote())
}
