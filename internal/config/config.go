package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL string
	MongoURI    string
	MongoDB     string
	ServerPort  string
	APIBaseURL  string
	Environment string
}

// Load reads the optional .env file and resolves the process configuration
// from the environment, falling back to development defaults.
func Load() *Config {
	_ = godotenv.Load() // .env is optional, normal in production

	cfg := &Config{
		DatabaseURL: getEnv("DATABASE_URL", "postgres://localhost/listings?sslmode=disable"),
		MongoURI:    getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:     getEnv("MONGO_DB", "listings"),
		ServerPort:  getEnv("PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),
	}
	cfg.APIBaseURL = getEnv("API_BASE_URL", "http://localhost:"+cfg.ServerPort)
	return cfg
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
