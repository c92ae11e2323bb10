package routes

import (
	"github.com/gin-gonic/gin"

	"notes-api/controllers"
)

func MetricsRoutes(incomingRoutes *gin.Engine, ctrl *controllers.MetricsController) {
	incomingRoutes.GET("/health", ctrl.Health())
	incomingRoutes.GET("/metrics", ctrl.GetMetrics())
}
