package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	// Server
	Port      string
	ClientUrl string

	// Postgres
	PostgresHost     string
	PostgresPort     string
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string

	// Redis cache (optional, cache is disabled when host is empty)
	RedisHost     string
	RedisPort     string
	RedisPassword string

	// Replit connector credential material for the Google Sheets mirror
	ConnectorsHostname string
	ReplIdentity       string
	WebReplRenewal     string
)

// LoadConfig loads the .env file if present and populates the config variables
func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	Port = getEnv("PORT", "8080")
	ClientUrl = getEnv("CLIENT_URL", "http://localhost:5173")

	PostgresHost = getEnv("POSTGRES_HOST", "localhost")
	PostgresPort = getEnv("POSTGRES_PORT", "5432")
	PostgresUser = getEnv("POSTGRES_USER", "postgres")
	PostgresPassword = getEnv("POSTGRES_PASSWORD", "postgres")
	PostgresDB = getEnv("POSTGRES_DB", "heist")

	RedisHost = getEnv("REDIS_HOST", "")
	RedisPort = getEnv("REDIS_PORT", "6379")
	RedisPassword = getEnv("REDIS_PASSWORD", "")

	ConnectorsHostname = getEnv("REPLIT_CONNECTORS_HOSTNAME", "")
	ReplIdentity = getEnv("REPL_IDENTITY", "")
	WebReplRenewal = getEnv("WEB_REPL_RENEWAL", "")
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
