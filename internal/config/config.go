package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr      string
	MySQLDSN      string
	RedisAddr     string
	APISecret     string
	TokenLifespan time.Duration
	LogLevel      string
}

// Load reads configuration from the environment, with an optional .env
// file for local development.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		HTTPAddr:      getenv("HTTP_ADDR", ":8080"),
		MySQLDSN:      getenv("MYSQL_DSN", "root:root@tcp(localhost:3306)/controlhs?parseTime=true"),
		RedisAddr:     getenv("REDIS_ADDR", "localhost:6379"),
		APISecret:     getenv("API_SECRET", "controlhs-secret"),
		TokenLifespan: time.Duration(getenvInt("TOKEN_HOUR_LIFESPAN", 24)) * time.Hour,
		LogLevel:      getenv("LOG_LEVEL", "info"),
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getenvInt(k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
