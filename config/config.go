package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"strings"

	"wardrobeapi/dbhelper"
	"wardrobeapi/services"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Config struct {
	Env      string
	Port     string
	LogLevel string

	AIProvider        string
	OpenRouterAPIKey  string
	OpenRouterBaseURL string
	AIModel           string
	GoogleAPIKey      string

	StoreDriver string
	StoreCache  bool
	SQLitePath  string
	DBUsername  string
	DBPassword  string
	DBHost      string
	DBPort      string
	DBName      string

	R2AccountID       string
	R2AccessKeyID     string
	R2AccessKeySecret string
	R2BucketName      string
	R2Prefix          string

	SentryDSN string
	RateLimit float64
	BodyLimit string
}

// Load reads .env when present and then the process environment. A missing
// AI credential is not an error here: the gateways report it per request.
func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config: reading .env: %w", err)
	}
	return FromEnv()
}

func FromEnv() (*Config, error) {
	cfg := &Config{
		Env:      services.GetEnv("ENV", "local"),
		Port:     services.GetEnv("PORT", "8083"),
		LogLevel: services.GetEnv("LOG_LEVEL", "info"),

		AIProvider:        strings.ToLower(services.GetEnv("AI_PROVIDER", "openrouter")),
		OpenRouterAPIKey:  services.GetEnv("OPENROUTER_API_KEY", ""),
		OpenRouterBaseURL: services.GetEnv("OPENROUTER_BASE_URL", services.DefaultOpenRouterBaseURL),
		AIModel:           services.GetEnv("AI_MODEL", ""),
		GoogleAPIKey:      services.GetEnv("GOOGLE_API_KEY", ""),

		StoreDriver: strings.ToLower(services.GetEnv("STORE_DRIVER", "sqlite")),
		SQLitePath:  services.GetEnv("SQLITE_PATH", "wardrobe.db"),
		DBUsername:  services.GetEnv("DB_USERNAME", ""),
		DBPassword:  services.GetEnv("DB_PASSWORD", ""),
		DBHost:      services.GetEnv("DB_HOST", "localhost"),
		DBPort:      services.GetEnv("DB_PORT", "5432"),
		DBName:      services.GetEnv("DB_NAME", ""),

		R2AccountID:       services.GetEnv("R2_ACCOUNT_ID", ""),
		R2AccessKeyID:     services.GetEnv("R2_ACCESS_KEY_ID", ""),
		R2AccessKeySecret: services.GetEnv("R2_ACCESS_KEY_SECRET", ""),
		R2BucketName:      services.GetEnv("R2_BUCKET_NAME", ""),
		R2Prefix:          services.GetEnv("R2_PREFIX", "wardrobe/"),

		SentryDSN: services.GetEnv("SENTRY_DSN", ""),
		BodyLimit: services.GetEnv("BODY_LIMIT", "50M"),
	}

	var err error
	if cfg.StoreCache, err = strconv.ParseBool(services.GetEnv("STORE_CACHE", "false")); err != nil {
		return nil, fmt.Errorf("config: STORE_CACHE: %w", err)
	}
	if cfg.RateLimit, err = strconv.ParseFloat(services.GetEnv("RATE_LIMIT", "3"), 64); err != nil {
		return nil, fmt.Errorf("config: RATE_LIMIT: %w", err)
	}

	switch cfg.AIProvider {
	case "openrouter", "gemini":
	default:
		return nil, fmt.Errorf("config: unknown AI_PROVIDER %q", cfg.AIProvider)
	}
	switch cfg.StoreDriver {
	case "memory", "sqlite", "postgres":
	case "s3":
		if cfg.R2BucketName == "" {
			return nil, fmt.Errorf("config: R2_BUCKET_NAME is required for the s3 store")
		}
	default:
		return nil, fmt.Errorf("config: unknown STORE_DRIVER %q", cfg.StoreDriver)
	}
	return cfg, nil
}

func (c *Config) PostgresDSN() string {
	return dbhelper.PostgresDSN(c.DBUsername, c.DBPassword, c.DBHost, c.DBPort, c.DBName)
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// SetupLogging configures the standard logrus logger: JSON in production,
// text everywhere else.
func SetupLogging(c *Config) {
	lvl, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	logrus.SetLevel(lvl)
	if c.IsProduction() {
		logrus.SetFormatter(&logrus.JSONFormatter{})
		return
	}
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
}
