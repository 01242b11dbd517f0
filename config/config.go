// Package config provides application configuration management.
// It loads configuration from environment variables with sensible defaults.
package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/neromancy/hasilbumi/store"
)

// Environment variables read by Load.
const (
	EnvStore       = "HB_STORE"
	EnvPath        = "HB_PATH"
	EnvRedisAddr   = "HB_REDIS_ADDR"
	EnvRedisDB     = "HB_REDIS_DB"
	EnvRedisPrefix = "HB_REDIS_PREFIX"
	EnvCurrency    = "HB_CURRENCY"
	EnvVerbose     = "HB_VERBOSE"
)

// Default paths, per store kind.
const (
	DefaultDir    = ".hasilbumi"
	DefaultDBFile = "hasilbumi.db"
)

// Config holds all application configuration.
type Config struct {
	Store       string // file, sqlite, redis or memory
	Path        string // empty means the default for Store
	RedisAddr   string
	RedisDB     int
	RedisPrefix string
	Currency    string // ISO 4217 code used to display amounts
	Verbose     bool
}

// Load loads configuration from environment variables.
func Load() *Config {
	return &Config{
		Store:       strings.ToLower(getEnv(EnvStore, store.KindFile)),
		Path:        getEnv(EnvPath, ""),
		RedisAddr:   getEnv(EnvRedisAddr, "localhost:6379"),
		RedisDB:     getEnvAsInt(EnvRedisDB, 0),
		RedisPrefix: getEnv(EnvRedisPrefix, "hasilbumi:"),
		Currency:    strings.ToUpper(getEnv(EnvCurrency, "IDR")),
		Verbose:     getEnvAsBool(EnvVerbose, false),
	}
}

// StoreOptions returns the options to open the configured store.
func (c *Config) StoreOptions() store.Options {
	path := c.Path
	if path == "" {
		switch c.Store {
		case store.KindSQLite:
			path = DefaultDBFile
		default:
			path = DefaultDir
		}
	}
	return store.Options{
		Kind:        c.Store,
		Path:        path,
		RedisAddr:   c.RedisAddr,
		RedisDB:     c.RedisDB,
		RedisPrefix: c.RedisPrefix,
	}
}

// Helper functions for environment variable parsing

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
