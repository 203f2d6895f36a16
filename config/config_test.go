package config

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnvDefaults(t *testing.T) {
	for _, key := range []string{"ENV", "PORT", "AI_PROVIDER", "OPENROUTER_API_KEY", "OPENROUTER_BASE_URL", "AI_MODEL", "STORE_DRIVER", "STORE_CACHE", "RATE_LIMIT", "BODY_LIMIT"} {
		t.Setenv(key, "")
	}

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "8083", cfg.Port)
	assert.Equal(t, "openrouter", cfg.AIProvider)
	assert.Equal(t, "https://openrouter.ai/api/v1", cfg.OpenRouterBaseURL)
	assert.Equal(t, "", cfg.OpenRouterAPIKey)
	assert.Equal(t, "sqlite", cfg.StoreDriver)
	assert.False(t, cfg.StoreCache)
	assert.Equal(t, 3.0, cfg.RateLimit)
	assert.Equal(t, "50M", cfg.BodyLimit)
	assert.False(t, cfg.IsProduction())
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("AI_PROVIDER", "Gemini")
	t.Setenv("STORE_DRIVER", "postgres")
	t.Setenv("STORE_CACHE", "true")
	t.Setenv("DB_USERNAME", "wardrobe")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("DB_NAME", "closet")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "gemini", cfg.AIProvider)
	assert.True(t, cfg.StoreCache)
	assert.Equal(t, "postgres://wardrobe:secret@db:5433/closet", cfg.PostgresDSN())
}

func TestFromEnvRejectsUnknownValues(t *testing.T) {
	t.Setenv("STORE_DRIVER", "redis")
	_, err := FromEnv()
	assert.ErrorContains(t, err, "STORE_DRIVER")

	t.Setenv("STORE_DRIVER", "s3")
	t.Setenv("R2_BUCKET_NAME", "")
	_, err = FromEnv()
	assert.ErrorContains(t, err, "R2_BUCKET_NAME")

	t.Setenv("STORE_DRIVER", "memory")
	t.Setenv("AI_PROVIDER", "local")
	_, err = FromEnv()
	assert.ErrorContains(t, err, "AI_PROVIDER")

	t.Setenv("AI_PROVIDER", "openrouter")
	t.Setenv("STORE_CACHE", "maybe")
	_, err = FromEnv()
	assert.ErrorContains(t, err, "STORE_CACHE")
}

func TestSetupLogging(t *testing.T) {
	defer logrus.SetLevel(logrus.GetLevel())
	defer logrus.SetFormatter(logrus.StandardLogger().Formatter)

	SetupLogging(&Config{Env: "production", LogLevel: "debug"})
	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, logrus.StandardLogger().Formatter)

	SetupLogging(&Config{Env: "local", LogLevel: "nonsense"})
	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())
	assert.IsType(t, &logrus.TextFormatter{}, logrus.StandardLogger().Formatter)
}
