package routes

import (
	"assurly/internal/controllers"
	"assurly/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterUserRoutes(router *gin.Engine, userController *controllers.UserController) {
	userRoutesPublic := router.Group("/users")
	{
		userRoutesPublic.POST("/", userController.Register)
		userRoutesPublic.POST("/login", userController.Login)
		userRoutesPublic.GET("/staff", userController.ListStaff)
	}
	userRoutesPrivate := router.Group("/users")
	userRoutesPrivate.Use(middleware.AuthMiddleware())
	{
		userRoutesPrivate.GET("/me", userController.GetCurrentUser)
	}
}
