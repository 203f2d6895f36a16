package main

import (
	"context"
	"log"

	"wardrobeapi/app"
	"wardrobeapi/config"
	"wardrobeapi/controllers"

	"github.com/getsentry/sentry-go"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %s", err)
	}
	config.SetupLogging(cfg)

	flush, err := app.InitSentry(cfg)
	if err != nil {
		log.Fatalf("sentry.Init: %s", err)
	}
	defer flush()
	defer sentry.Recover()

	a, err := app.New(context.Background(), cfg)
	if err != nil {
		log.Fatalf("app: %s", err)
	}
	defer a.Close()

	e := controllers.SetupServer(controllers.Dependencies{
		Classifier: a.Classifier,
		Planner:    a.Planner,
		Closet:     a.Closet,
		BodyLimit:  cfg.BodyLimit,
	})
	e.Debug = !cfg.IsProduction()
	controllers.UseProductionMiddleware(e, cfg.RateLimit)

	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
