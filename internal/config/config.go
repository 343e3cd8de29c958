// Package config reads the small set of environment variables that
// configure the mkbsc service and CLI, each with a sensible default.
package config

import (
	"os"
	"strconv"
)

// Config holds the service's runtime configuration.
type Config struct {
	Port          string
	LogLevel      string
	FixpointLimit int
}

// Load reads Config from the environment.
func Load() Config {
	return Config{
		Port:          getEnv("PORT", "8080"),
		LogLevel:      getEnv("MKBSC_LOG_LEVEL", "info"),
		FixpointLimit: getEnvInt("MKBSC_FIXPOINT_LIMIT", 64),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
