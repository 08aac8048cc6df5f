// Schema migration tool: creates or updates every hub table.
// cmd/migrate/main.go
package main

import (
	"log"

	"community-hub-api/config"
	"community-hub-api/models"

	"github.com/joho/godotenv"
)

func main() {
	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	// Initialize database
	config.InitDB()

	tables := []struct {
		name  string
		model interface{}
	}{
		{"users", &models.User{}},
		{"admins", &models.Admin{}},
		{"submissions", &models.Submission{}},
		{"images", &models.ImageMetadata{}},
		{"videos", &models.VideoMetadata{}},
		{"audio", &models.AudioMetadata{}},
		{"web_data", &models.WebData{}},
		{"comments", &models.Comment{}},
		{"notifications", &models.Notification{}},
		{"validation_queue", &models.ValidationQueueEntry{}},
		{"admin_actions", &models.AdminAction{}},
	}

	for _, t := range tables {
		if err := config.DB.AutoMigrate(t.model); err != nil {
			log.Fatalf("Failed to migrate table %s: %v", t.name, err)
		}
		log.Printf("Migrated table %s\n", t.name)
	}

	log.Println("Schema migration completed!")
}
