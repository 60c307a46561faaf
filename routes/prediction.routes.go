package routes

import (
	"assurly/internal/controllers"
	"assurly/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterPredictionRoutes(router *gin.Engine, predictionController *controllers.PredictionController) {
	predictionRoutes := router.Group("/predictions")
	predictionRoutes.Use(middleware.AuthMiddleware())

	// Self-service quote: one per user, resolved over every registered model.
	selfService := predictionRoutes.Group("/me")
	selfService.Use(middleware.UserRequired())
	{
		selfService.POST("", predictionController.CreateMyPrediction)
		selfService.GET("", predictionController.GetMyPrediction)
		selfService.PUT("", predictionController.UpdateMyPrediction)
	}

	staff := predictionRoutes.Group("")
	staff.Use(middleware.StaffRequired())
	{
		staff.POST("", predictionController.CreatePrediction)
		staff.GET("", predictionController.ListPredictions)
		staff.GET("/:id", predictionController.GetPredictionByID)
		staff.PUT("/:id", predictionController.UpdatePrediction)
		staff.DELETE("/:id", predictionController.DeletePrediction)
	}
}
