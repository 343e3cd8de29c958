package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/HelmerNylen/mkbsc/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := config.Load()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 64, cfg.FixpointLimit)
}

func TestLoad_ReadsOverridesFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("MKBSC_LOG_LEVEL", "debug")
	t.Setenv("MKBSC_FIXPOINT_LIMIT", "5")

	cfg := config.Load()
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 5, cfg.FixpointLimit)
}

func TestLoad_IgnoresInvalidIntOverride(t *testing.T) {
	t.Setenv("MKBSC_FIXPOINT_LIMIT", "not-a-number")
	cfg := config.Load()
	assert.Equal(t, 64, cfg.FixpointLimit)
}
