package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/text/currency"
)

type Backend string

const (
	BackendNone     Backend = "none"
	BackendMemory   Backend = "memory"
	BackendFile     Backend = "file"
	BackendRedis    Backend = "redis"
	BackendMySQL    Backend = "mysql"
	BackendPostgres Backend = "postgres"
)

type Config struct {
	AppEnv   string
	LogLevel string

	Backend  Backend
	CartKey  string
	Currency currency.Unit

	CartDir     string        // file backend directory
	RedisAddr   string        // redis backend address
	CartTTL     time.Duration // redis key expiry, 0 keeps keys
	MySQLDSN    string
	DatabaseURL string // postgres connection string
}

// Load reads the configuration from the environment. Variables from a .env
// file in the working directory are applied first when the file exists;
// already exported variables win.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("godotenv.Load: %w", err)
	}

	return FromEnv()
}

func FromEnv() (Config, error) {
	unit, err := currency.ParseISO(getEnv("CART_CURRENCY", "GHS"))
	if err != nil {
		return Config{}, fmt.Errorf("CART_CURRENCY is not valid: %w", err)
	}

	ttl, err := time.ParseDuration(getEnv("CART_TTL", "0s"))
	if err != nil {
		return Config{}, fmt.Errorf("CART_TTL must be a duration: %w", err)
	}

	cfg := Config{
		AppEnv:   getEnv("APP_ENV", "dev"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		Backend:  Backend(strings.ToLower(getEnv("CART_BACKEND", string(BackendFile)))),
		CartKey:  getEnv("CART_KEY", "celestial-cart"),
		Currency: unit,

		CartDir:     getEnv("CART_DIR", defaultCartDir()),
		RedisAddr:   os.Getenv("REDIS_ADDR"),
		CartTTL:     ttl,
		MySQLDSN:    os.Getenv("MYSQL_DSN"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) validate() error {
	switch c.Backend {
	case BackendNone, BackendMemory:
	case BackendFile:
		if c.CartDir == "" {
			return fmt.Errorf("CART_DIR is required")
		}
	case BackendRedis:
		if c.RedisAddr == "" {
			return fmt.Errorf("REDIS_ADDR is required")
		}
	case BackendMySQL:
		if c.MySQLDSN == "" {
			return fmt.Errorf("MYSQL_DSN is required")
		}
	case BackendPostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required")
		}
	default:
		return fmt.Errorf("CART_BACKEND[%s] is not supported", c.Backend)
	}

	if c.CartTTL < 0 {
		return fmt.Errorf("CART_TTL must not be negative")
	}

	return nil
}

func defaultCartDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "celestial-shopping")
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
