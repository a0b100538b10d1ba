package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	BackendURL    string
	Port          string
	SessionSecret string
	Env           string
}

func LoadConfig() Config {
	err := godotenv.Load()
	if err != nil {
		log.Println(".env file not found, using defaults")
	}

	backendURL := os.Getenv("BACKEND_URL")
	if backendURL == "" {
		backendURL = "http://localhost:5000"
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	return Config{
		BackendURL:    backendURL,
		Port:          port,
		SessionSecret: os.Getenv("SESSION_SECRET"),
		Env:           os.Getenv("APP_ENV"),
	}
}
