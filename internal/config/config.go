package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Драйверы хранилища пользователей.
const (
	StoreDriverPostgres = "postgres"
	StoreDriverMongo    = "mongo"
	StoreDriverMemory   = "memory"
)

type Config struct {
	ServerPort string
	LogLevel   string

	StoreDriver  string
	StoreTimeout time.Duration

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	MongoURI        string
	MongoDatabase   string
	MongoCollection string

	RedisURL           string
	RateLimitPerMinute int

	IdentitySyncURL     string
	IdentitySyncCookie  string
	IdentitySyncTimeout time.Duration

	ServiceToken   string
	SystemUsername string
}

func LoadConfig() (Config, error) {

	err := godotenv.Load()

	return Config{
		ServerPort: getEnv("SERVER_PORT", "4690"),
		LogLevel:   getEnv("LOG_LEVEL", "info"),

		StoreDriver:  getEnv("STORE_DRIVER", StoreDriverPostgres),
		StoreTimeout: getDuration("STORE_TIMEOUT", 5*time.Second),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "password"),
		DBName:     getEnv("DB_NAME", "flow_gaming"),

		MongoURI:        getEnv("MONGO_URI", "mongodb://localhost:27017/"),
		MongoDatabase:   getEnv("MONGO_DATABASE", "flow_gaming"),
		MongoCollection: getEnv("MONGO_COLLECTION", "users"),

		RedisURL:           getEnv("REDIS_URL", ""),
		RateLimitPerMinute: getPositiveInt("RATE_LIMIT_PER_MINUTE", 120),

		IdentitySyncURL:     getEnv("IDENTITY_SYNC_URL", "http://localhost:4700"),
		IdentitySyncCookie:  getEnv("IDENTITY_SYNC_COOKIE", ""),
		IdentitySyncTimeout: getDuration("IDENTITY_SYNC_TIMEOUT", 5*time.Second),

		ServiceToken:   getEnv("SERVICE_TOKEN", ""),
		SystemUsername: getEnv("SYSTEM_USERNAME", "system"),
	}, err
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getPositiveInt(key string, defaultValue int) int {
	if n, err := strconv.Atoi(os.Getenv(key)); err == nil && n > 0 {
		return n
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	if d, err := time.ParseDuration(os.Getenv(key)); err == nil && d > 0 {
		return d
	}
	return defaultValue
}
