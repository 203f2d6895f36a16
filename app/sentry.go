package app

import (
	"time"

	"wardrobeapi/config"

	"github.com/getsentry/sentry-go"
)

const release = "wardrobeapi@1.0.0"

// InitSentry starts error reporting when SENTRY_DSN is set. The returned
// function flushes pending events and is safe to call either way.
func InitSentry(cfg *config.Config) (func(), error) {
	if cfg.SentryDSN == "" {
		return func() {}, nil
	}
	err := sentry.Init(sentry.ClientOptions{
		Dsn:              cfg.SentryDSN,
		Environment:      cfg.Env,
		Release:          release,
		Debug:            false,
		TracesSampleRate: 1.0,
	})
	if err != nil {
		return func() {}, err
	}
	return func() { sentry.Flush(2 * time.Second) }, nil
}
