package config

import "os"

type Config struct {
	MongoURI    string
	Environment string
	Port        string
}

// Load reads configuration from the environment, falling back to defaults.
func Load() Config {
	return Config{
		MongoURI:    getEnv("MONGO_URI", "mongodb://mongo:27017/notes"),
		Environment: getEnv("APP_ENV", "development"),
		Port:        getEnv("PORT", "8080"),
	}
}

func getEnv(key string, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
