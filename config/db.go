package config

import (
	"log"
	"os"

	"orgsite-cms/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// InitDB connects to Postgres and migrates the schema. A missing
// DATABASE_URL is a fatal startup condition.
func InitDB() *gorm.DB {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL environment variable is not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.News{},
		&models.NewsImage{},
		&models.NewsVideo{},
		&models.Comment{},
		&models.Event{},
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return db
}
