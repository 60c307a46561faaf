package main

import (
	"context"
	"flag"
	"log"
	"os"

	"assurly/database"
	"assurly/internal/regression"
	"assurly/internal/repository"
	"assurly/internal/services"
	"assurly/internal/utils"

	"github.com/joho/godotenv"
)

func init() {
	if err := godotenv.Load(); err != nil {
		if err := godotenv.Load("../../.env"); err != nil {
			log.Printf("Warning: no .env file found: %v", err)
		}
	}
}

func main() {
	modelDir := flag.String("model-dir", os.Getenv("MODEL_DIR"), "Directory regression model paths are resolved against")
	skipMigrate := flag.Bool("skip-migrate", false, "Skip running database migrations before seeding")
	flag.Parse()

	if *modelDir == "" {
		*modelDir = "."
	}

	database.ConnectDatabase()
	if !*skipMigrate {
		if err := database.MigrateDatabase(); err != nil {
			log.Fatalf("Failed to run database migrations: %v", err)
		}
	}

	regModelRepo := repository.NewRegModelRepository(database.DB)
	registry := regression.NewFileRegistry(*modelDir)
	resolver := services.NewResolver(registry, regModelRepo)

	seeder := utils.NewSeeder(database.DB, resolver)
	if err := seeder.Seed(context.Background()); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Println("Done")
}
