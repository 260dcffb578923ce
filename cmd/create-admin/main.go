package main

import (
	"fmt"
	"log"
	"os"

	"orgsite-cms/config"
	"orgsite-cms/models"
	"orgsite-cms/repositories"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

// Seeds the first admin account. Safe to run repeatedly: it does
// nothing when an admin already exists.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	db := config.InitDB()
	userRepo := repositories.NewUserRepository(db)

	exists, err := userRepo.AdminExists()
	if err != nil {
		log.Fatalf("Failed to check for existing admin: %v", err)
	}
	if exists {
		fmt.Println("Admin user already exists")
		return
	}

	username := envOr("ADMIN_USERNAME", "admin")
	email := envOr("ADMIN_EMAIL", "admin@example.com")
	password := envOr("ADMIN_PASSWORD", "change-me-now")

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	admin := &models.User{
		Username: username,
		Email:    email,
		Password: string(hash),
		IsAdmin:  true,
	}
	if err := userRepo.Create(admin); err != nil {
		log.Fatalf("Failed to create admin: %v", err)
	}

	fmt.Printf("Admin user created (id=%d, username=%s)\n", admin.ID, admin.Username)
}

func envOr(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}
