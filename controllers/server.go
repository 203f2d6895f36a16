package controllers

import (
	"context"
	"net/http"

	"wardrobeapi/closet"
	"wardrobeapi/models"

	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/go-playground/validator"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

type CustomValidator struct {
	validator *validator.Validate
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func NewValidator() *CustomValidator {
	v := validator.New()
	v.RegisterValidation("category", models.ValidateCategory)
	return &CustomValidator{validator: v}
}

type ClassificationGateway interface {
	Ready() error
	Classify(ctx context.Context, images []string) ([]models.ClothingItem, error)
}

type PlanGateway interface {
	Ready() error
	Plan(ctx context.Context, items []models.ClothingItem, prefs models.Preferences) (*models.WeeklyPlan, error)
}

type Dependencies struct {
	Classifier ClassificationGateway
	Planner    PlanGateway
	Closet     *closet.Service
	// BodyLimit is an echo size string such as "50M". Empty disables the limit.
	BodyLimit string
}

func SetupServer(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = NewValidator()

	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))
	if deps.BodyLimit != "" {
		e.Use(middleware.BodyLimit(deps.BodyLimit))
	}

	e.GET("/healthcheck", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})

	api := e.Group("/api")

	gatewayController := GatewayController{Classifier: deps.Classifier, Planner: deps.Planner}
	gatewayController.GatewayRoutes(api)

	closetController := ClosetController{Closet: deps.Closet}
	closetController.ClosetRoutes(api.Group("/closet"))

	planController := PlanController{Closet: deps.Closet}
	planController.PlanRoutes(api.Group("/plan"))

	return e
}

// UseProductionMiddleware adds rate limiting, request logging and Sentry
// reporting. Tests run without it.
func UseProductionMiddleware(e *echo.Echo, requestsPerSecond float64) {
	if requestsPerSecond > 0 {
		e.Use(middleware.RateLimiter(middleware.NewRateLimiterMemoryStore(rate.Limit(requestsPerSecond))))
	}
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogError:   true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			entry := logrus.WithFields(logrus.Fields{
				"method":  v.Method,
				"uri":     v.URI,
				"status":  v.Status,
				"latency": v.Latency.String(),
			})
			if v.Error != nil {
				entry.WithError(v.Error).Error("request failed")
				return nil
			}
			entry.Info("request")
			return nil
		},
	}))
	e.Use(sentryecho.New(sentryecho.Options{Repanic: true}))
}
