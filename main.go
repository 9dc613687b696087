// file: main.go
package main

import (
	"os"

	"codefest/database"
	"codefest/routes"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Info("No .env file found, using environment variables")
	}

	database.Connect()
	database.MigrateTables()
	database.SeedDefaultAdmin()
	database.InitRedis()

	r := routes.SetupRouter()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Infof("Starting server on :%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
