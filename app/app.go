package app

import (
	"context"
	"fmt"

	"wardrobeapi/closet"
	"wardrobeapi/config"
	"wardrobeapi/dbhelper"
	"wardrobeapi/gateway"
	"wardrobeapi/services"
	"wardrobeapi/store"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds everything the HTTP server and the CLI share.
type App struct {
	Config     *config.Config
	Provider   services.LLMProvider
	Store      *store.Store
	Classifier *gateway.Classifier
	Planner    *gateway.Planner
	Closet     *closet.Service

	db *gorm.DB
}

func New(ctx context.Context, cfg *config.Config) (*App, error) {
	kv, db, err := OpenKV(ctx, cfg)
	if err != nil {
		return nil, err
	}
	a := Assemble(cfg, NewProvider(cfg), kv)
	a.db = db
	if err := a.Provider.Ready(); err != nil {
		logrus.WithField("provider", a.Provider.Name()).Warn("AI credential missing, analyze and plan requests will fail")
	}
	return a, nil
}

// Assemble wires the services over an already opened backend.
func Assemble(cfg *config.Config, provider services.LLMProvider, kv store.KV) *App {
	s := store.New(kv)
	classifier := gateway.NewClassifier(provider)
	planner := gateway.NewPlanner(provider)
	return &App{
		Config:     cfg,
		Provider:   provider,
		Store:      s,
		Classifier: classifier,
		Planner:    planner,
		Closet:     closet.NewService(s, classifier, planner),
	}
}

func NewProvider(cfg *config.Config) services.LLMProvider {
	if cfg.AIProvider == "gemini" {
		model := services.Flash25
		if cfg.AIModel != "" {
			model = services.ParseLLMModelName(cfg.AIModel)
		}
		return services.NewGeminiProvider(cfg.GoogleAPIKey, model)
	}
	return services.NewOpenRouterProvider(cfg.OpenRouterAPIKey, cfg.OpenRouterBaseURL, cfg.AIModel)
}

// OpenKV opens the configured backend. The returned *gorm.DB is nil unless
// the backend is relational.
func OpenKV(ctx context.Context, cfg *config.Config) (store.KV, *gorm.DB, error) {
	var (
		kv  store.KV
		db  *gorm.DB
		err error
	)
	switch cfg.StoreDriver {
	case "memory":
		kv = store.NewMemoryKV()
	case "sqlite":
		db, err = dbhelper.SetupDB("sqlite", cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		kv = store.NewGormKV(db)
	case "postgres":
		db, err = dbhelper.SetupDB("postgres", cfg.PostgresDSN())
		if err != nil {
			return nil, nil, err
		}
		kv = store.NewGormKV(db)
	case "s3":
		client, err := services.NewR2Client(ctx, services.R2Credentials{
			AccountID:       cfg.R2AccountID,
			AccessKeyID:     cfg.R2AccessKeyID,
			AccessKeySecret: cfg.R2AccessKeySecret,
		})
		if err != nil {
			return nil, nil, err
		}
		kv = store.NewS3KV(client, cfg.R2BucketName, cfg.R2Prefix)
	default:
		return nil, nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}

	if cfg.StoreCache {
		cached, err := store.NewCachedKV(kv)
		if err != nil {
			return nil, nil, err
		}
		kv = cached
	}
	logrus.WithFields(logrus.Fields{"driver": cfg.StoreDriver, "cache": cfg.StoreCache}).Info("store ready")
	return kv, db, nil
}

func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return dbhelper.Close(a.db)
}
