package controllers

import (
	"net/http"

	"wardrobeapi/closet"
	"wardrobeapi/models"

	"github.com/labstack/echo/v4"
)

type PlanController struct {
	Closet *closet.Service
}

func (controller *PlanController) PlanRoutes(g *echo.Group) {
	g.GET("", controller.GetPlan)
	g.POST("", controller.CreatePlan)
}

func (controller *PlanController) GetPlan(c echo.Context) error {
	view, err := controller.Closet.Plan(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	out := models.PlanViewOut{CanGenerate: view.CanGenerate}
	if view.HasPlan {
		out.Plan = resolvedPlanOut(view.Days)
	}
	return c.JSON(http.StatusOK, out)
}

func (controller *PlanController) CreatePlan(c echo.Context) error {
	var req models.GenerateClosetPlanIn
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "Invalid request body")
	}
	prefs := models.DefaultPreferences()
	if req.Preferences != nil {
		prefs = *req.Preferences
	}
	if err := c.Validate(prefs); err != nil {
		return errorJSON(c, http.StatusBadRequest, err.Error())
	}

	view, err := controller.Closet.GeneratePlan(c.Request().Context(), prefs)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, resolvedPlanOut(view.Days))
}

func resolvedPlanOut(days []closet.ResolvedDay) *models.ResolvedPlanOut {
	out := &models.ResolvedPlanOut{Days: make([]models.ResolvedDayOut, 0, len(days))}
	for _, day := range days {
		out.Days = append(out.Days, models.ResolvedDayOut{
			Day:    day.Day,
			Top:    day.Top,
			Bottom: day.Bottom,
			Outer:  day.Outer,
			Reason: day.Reason,
		})
	}
	return out
}
