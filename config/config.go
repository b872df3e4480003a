package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

const (
	BackendMemory   = "memory"
	BackendDatabase = "database"
)

type Config struct {
	Port        string
	Env         string
	Backend     string
	DatabaseURL string
	CORSOrigins string
}

var AppConfig *Config

func Load() {
	_ = godotenv.Load()

	AppConfig = &Config{
		Port:        GetEnv("PORT", "8000"),
		Env:         GetEnv("ENV", "development"),
		Backend:     GetEnv("BACKEND", BackendMemory),
		DatabaseURL: GetEnv("DATABASE_URL", "./data/todo.db"),
		CORSOrigins: GetEnv("CORS_ORIGINS", "http://localhost:3000"),
	}

	if AppConfig.Backend != BackendMemory && AppConfig.Backend != BackendDatabase {
		log.Fatalf("BACKEND must be %q or %q, got %q", BackendMemory, BackendDatabase, AppConfig.Backend)
	}
}

func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
