package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"assurly/database"
	"assurly/docs"
	"assurly/internal/controllers"
	"assurly/internal/regression"
	"assurly/internal/repository"
	"assurly/internal/services"
	"assurly/routes"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: no .env file found: %v", err)
	}

	docs.SwaggerInfo.Title = "Assurly API"
	docs.SwaggerInfo.Description = "Insurance quoting API: premiums estimated by pre-trained regression models, advisor appointments included."
	docs.SwaggerInfo.Version = "1.0"
	docs.SwaggerInfo.Schemes = []string{"http", "https"}

	database.ConnectDatabase()
	if err := database.MigrateDatabase(); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}
	database.MonitorDBConnections()

	userRepo := repository.NewUserRepository(database.DB)
	regModelRepo := repository.NewRegModelRepository(database.DB)
	predictionRepo := repository.NewPredictionRepository(database.DB)
	availabilityRepo := repository.NewAvailabilityRepository(database.DB)
	appointmentRepo := repository.NewAppointmentRepository(database.DB, availabilityRepo)
	contactRepo := repository.NewContactRepository(database.DB)

	modelDir := os.Getenv("MODEL_DIR")
	if modelDir == "" {
		modelDir = "."
	}
	registry := regression.NewFileRegistry(modelDir)
	resolver := services.NewResolver(registry, regModelRepo)

	userController := controllers.NewUserController(userRepo)
	regModelController := controllers.NewRegModelController(regModelRepo)
	predictionController := controllers.NewPredictionController(predictionRepo, resolver)
	meetingController := controllers.NewMeetingController(availabilityRepo, appointmentRepo)
	contactController := controllers.NewContactController(contactRepo)

	gin.SetMode(gin.ReleaseMode)
	router := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))

	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "Assurly API is running",
			"version": "1.0.0",
			"status":  "healthy",
		})
	})

	routes.RegisterUserRoutes(router, userController)
	routes.RegisterRegModelRoutes(router, regModelController)
	routes.RegisterPredictionRoutes(router, predictionController)
	routes.RegisterMeetingRoutes(router, meetingController)
	routes.RegisterContactRoutes(router, contactController)
	routes.RegisterSwaggerRoutes(router)

	router.GET("/debug/database", func(c *gin.Context) {
		sqlDB, err := database.DB.DB()
		if err != nil {
			c.JSON(500, gin.H{"database_health": false, "error": err.Error()})
			return
		}

		var result int
		row := sqlDB.QueryRowContext(c.Request.Context(), "SELECT 1")
		err = row.Scan(&result)
		c.JSON(200, gin.H{"database_health": err == nil && result == 1})
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	log.Printf("API documentation: http://localhost:%s/swagger/index.html", port)

	server := &http.Server{
		Addr:           ":" + port,
		Handler:        router,
		ReadTimeout:    30 * time.Second,
		WriteTimeout:   30 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	if err := server.ListenAndServe(); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
