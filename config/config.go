package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config holds the runtime settings for the service.
type Config struct {
	HTTPAddr     string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration

	// RedisAddr selects the Redis result cache; empty means the in-memory
	// cache is used instead.
	RedisAddr string
	CacheTTL  time.Duration

	RateLimitCapacity int
	RateLimitWindow   time.Duration

	// OpenAIKey enables the optional LLM narrative; empty disables it.
	OpenAIKey string
}

// Load reads configuration from the environment, with a .env file as an
// optional source.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("no .env file found, using environment only")
	}

	return &Config{
		HTTPAddr:          getEnv("HTTP_ADDR", ":8080"),
		ReadTimeout:       getDuration("HTTP_READ_TIMEOUT", 15*time.Second),
		WriteTimeout:      getDuration("HTTP_WRITE_TIMEOUT", 15*time.Second),
		IdleTimeout:       getDuration("HTTP_IDLE_TIMEOUT", 60*time.Second),
		RedisAddr:         getEnv("REDIS_ADDR", ""),
		CacheTTL:          getDuration("CACHE_TTL", time.Hour),
		RateLimitCapacity: getInt("RATE_LIMIT_CAPACITY", 30),
		RateLimitWindow:   getDuration("RATE_LIMIT_WINDOW", time.Minute),
		OpenAIKey:         getEnv("OPENAI_API_KEY", ""),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		logrus.WithField("key", key).Warn("invalid duration, using default")
		return defaultValue
	}
	return d
}

func getInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		logrus.WithField("key", key).Warn("invalid integer, using default")
		return defaultValue
	}
	return n
}
