package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "data", cfg.DataDir)
	assert.Equal(t, "localhost:6379", cfg.RedisURL)
	assert.Equal(t, "*", cfg.AllowedOrigins)
	assert.Equal(t, "development", cfg.Env)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("REDIS_URL", "redis://example:6379/1")
	t.Setenv("APP_ENV", "production")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "redis://example:6379/1", cfg.RedisURL)
	assert.Equal(t, "production", cfg.Env)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{"valid", Config{Port: "3000", DataDir: "data"}, false},
		{"missing port", Config{DataDir: "data"}, true},
		{"missing data dir", Config{Port: "3000"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
