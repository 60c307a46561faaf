package routes

import (
	"assurly/internal/controllers"
	"assurly/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterContactRoutes(router *gin.Engine, contactController *controllers.ContactController) {
	contactRoutesPublic := router.Group("/contact")
	{
		contactRoutesPublic.POST("", contactController.CreateMessage)
	}
	contactRoutesPrivate := router.Group("/contact")
	contactRoutesPrivate.Use(middleware.AuthMiddleware(), middleware.StaffRequired())
	{
		contactRoutesPrivate.GET("", contactController.ListMessages)
	}
}
