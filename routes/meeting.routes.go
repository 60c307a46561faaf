package routes

import (
	"assurly/internal/controllers"
	"assurly/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterMeetingRoutes(router *gin.Engine, meetingController *controllers.MeetingController) {
	availabilityRoutes := router.Group("/availabilities")
	availabilityRoutes.Use(middleware.AuthMiddleware(), middleware.StaffRequired())
	{
		availabilityRoutes.POST("", meetingController.CreateAvailability)
		availabilityRoutes.DELETE("/:id", meetingController.DeleteAvailability)
	}

	staffRoutes := router.Group("/staff")
	staffRoutes.Use(middleware.AuthMiddleware())
	{
		staffRoutes.GET("/:id/availabilities", meetingController.GetStaffAvailabilities)
	}

	appointmentRoutes := router.Group("/appointments")
	appointmentRoutes.Use(middleware.AuthMiddleware())
	{
		appointmentRoutes.POST("", middleware.UserRequired(), meetingController.CreateAppointment)
		appointmentRoutes.GET("/me", meetingController.GetMyAppointments)
		appointmentRoutes.DELETE("/:id", meetingController.DeleteAppointment)
	}
}
