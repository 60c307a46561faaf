package routes

import (
	"assurly/internal/controllers"
	"assurly/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRegModelRoutes(router *gin.Engine, regModelController *controllers.RegModelController) {
	modelRoutes := router.Group("/models")
	modelRoutes.Use(middleware.AuthMiddleware(), middleware.StaffRequired())
	{
		modelRoutes.POST("", regModelController.CreateRegModel)
		modelRoutes.GET("", regModelController.ListRegModels)
		modelRoutes.GET("/:id", regModelController.GetRegModelByID)
		modelRoutes.DELETE("/:id", regModelController.DeleteRegModel)
	}
}
