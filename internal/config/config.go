package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	ListenPort      string        // ex: ":8080"
	ShutdownTimeout time.Duration // ex: 5s

	LogLevel  string // "debug" | "info" | "warn" | "error"
	PrettyLog bool   // true => zap dev (color), false => zap prod (JSON)

	StoreBackend string // "redis" (default) or "memory" (dev/test, non-persistent)
	SeedFile     string // path to a YAML seed file (optional, empty = no seeding)

	// Redis
	RedisAddr           string        // ex: "localhost:6379"
	RedisUser           string        // optional
	RedisPassword       string        // optional
	RedisDB             int           // Redis DB number
	RedisDT             time.Duration // Redis dial timeout (ex: 5s)
	RedisRT             time.Duration // Redis read timeout (ex: 3s)
	RedisWT             time.Duration // Redis write timeout (ex: 3s)
	RedisMaxWait        time.Duration // max wait between retries (ex: 10s)
	RedisPingTimeout    time.Duration // timeout for each ping attempt (ex: 5s)
	RedisPoolSize       int           // Redis connection pool size
	RedisConnectTimeout time.Duration // Total time to retry connecting (ex: 30s)
	RedisRetryInterval  time.Duration // Initial wait between retries (ex: 2s, grows exponentially)
}

func Load() *Config {
	cfg := &Config{
		// Server settings
		ListenPort:      getenv("SLATRACK_LISTEN_PORT", ":8080"),
		ShutdownTimeout: mustDuration("SLATRACK_SHUTDOWN_TIMEOUT", 5*time.Second),

		// Logging
		LogLevel:  getenv("SLATRACK_LOG_LEVEL", "info"),
		PrettyLog: mustBool("SLATRACK_PRETTY_LOG", true),

		// Storage
		StoreBackend: getenv("SLATRACK_STORE", "redis"),
		SeedFile:     getenv("SLATRACK_SEED_FILE", ""), // Optional, empty = no seeding

		// Redis settings
		RedisAddr:           getenv("SLATRACK_REDIS_ADDR", "localhost:6379"),
		RedisUser:           getenv("SLATRACK_REDIS_USERNAME", ""),
		RedisPassword:       getenv("SLATRACK_REDIS_PASSWORD", ""),
		RedisDB:             getenvInt("SLATRACK_REDIS_DB", 0),
		RedisDT:             mustDuration("SLATRACK_REDIS_DIAL_TIMEOUT", 5*time.Second),
		RedisRT:             mustDuration("SLATRACK_REDIS_READ_TIMEOUT", 3*time.Second),
		RedisWT:             mustDuration("SLATRACK_REDIS_WRITE_TIMEOUT", 3*time.Second),
		RedisMaxWait:        mustDuration("SLATRACK_REDIS_MAX_WAIT", 10*time.Second),
		RedisPingTimeout:    mustDuration("SLATRACK_REDIS_PING_TIMEOUT", 5*time.Second),
		RedisPoolSize:       getenvInt("SLATRACK_REDIS_POOL_SIZE", 10),
		RedisConnectTimeout: mustDuration("SLATRACK_REDIS_CONNECT_TIMEOUT", 30*time.Second),
		RedisRetryInterval:  mustDuration("SLATRACK_REDIS_RETRY_INTERVAL", 2*time.Second),
	}

	if cfg.StoreBackend != "redis" && cfg.StoreBackend != "memory" {
		panic(fmt.Sprintf("❌ FATAL: SLATRACK_STORE must be \"redis\" or \"memory\", got %q", cfg.StoreBackend))
	}

	return cfg
}

// helpers
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return strings.TrimSpace(v)
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func mustBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func mustDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
