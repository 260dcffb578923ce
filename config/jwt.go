package config

import (
	"os"
	"time"
)

var JWTSecret []byte
var JWTExpiration time.Duration

func init() {
	secret := os.Getenv("SECRET_KEY")
	if secret == "" {
		secret = "dev-secret-key"
	}
	JWTSecret = []byte(secret)
	JWTExpiration = 24 * time.Hour
}
