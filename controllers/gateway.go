package controllers

import (
	"net/http"

	"wardrobeapi/gateway"
	"wardrobeapi/models"

	"github.com/labstack/echo/v4"
)

// GatewayController exposes the two stateless AI endpoints. The client owns
// all state; nothing here touches the store.
type GatewayController struct {
	Classifier ClassificationGateway
	Planner    PlanGateway
}

func (controller *GatewayController) GatewayRoutes(g *echo.Group) {
	g.POST("/analyze", controller.Analyze)
	g.POST("/generate-plan", controller.GeneratePlan)
}

func (controller *GatewayController) Analyze(c echo.Context) error {
	if err := controller.Classifier.Ready(); err != nil {
		return writeError(c, err)
	}
	var req models.AnalyzeIn
	if err := c.Bind(&req); err != nil {
		return writeError(c, gateway.InvalidImagesError())
	}

	items, err := controller.Classifier.Classify(c.Request().Context(), req.Images)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, models.AnalyzeOut{Items: items})
}

func (controller *GatewayController) GeneratePlan(c echo.Context) error {
	if err := controller.Planner.Ready(); err != nil {
		return writeError(c, err)
	}
	var req models.GeneratePlanIn
	if err := c.Bind(&req); err != nil {
		return writeError(c, gateway.InvalidBodyError(err))
	}
	prefs := models.DefaultPreferences()
	if req.Preferences != nil {
		prefs = *req.Preferences
	}

	plan, err := controller.Planner.Plan(c.Request().Context(), req.Items, prefs)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, plan)
}
