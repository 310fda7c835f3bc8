package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Storage driver names accepted by STORAGE_DRIVER.
const (
	DriverMemory   = "memory"
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
)

type Config struct {
	Port          string
	Env           string
	StorageDriver string
	MongoURI      string
	MongoDatabase string
	PostgresURL   string
	AuthEnabled   bool
	JWTSecret     string
	SeedData      bool
}

func Load() *Config {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, assuming environment variables are set.")
	}

	return &Config{
		Port:          getEnv("PORT", "8080"),
		Env:           getEnv("ENV", "development"),
		StorageDriver: getEnv("STORAGE_DRIVER", DriverMemory),
		MongoURI:      getEnv("MONGO_URI", ""),
		MongoDatabase: getEnv("MONGO_DATABASE", "dnndon"),
		PostgresURL:   getEnv("POSTGRES_CONN_STR", ""),
		AuthEnabled:   getEnv("AUTH_ENABLED", "false") == "true",
		JWTSecret:     getEnv("JWT_SECRET", ""),
		SeedData:      getEnv("SEED_DATA", "true") == "true",
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
