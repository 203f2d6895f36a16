package controllers

import (
	"net/http"

	"wardrobeapi/closet"
	"wardrobeapi/models"

	"github.com/labstack/echo/v4"
)

type ClosetController struct {
	Closet *closet.Service
}

func (controller *ClosetController) ClosetRoutes(g *echo.Group) {
	g.GET("", controller.ListCloset)
	g.DELETE("", controller.ClearCloset)
	g.POST("/items", controller.UploadItems)
	g.PATCH("/items/:id", controller.RecategorizeItem)
	g.DELETE("/items/:id", controller.RemoveItem)
}

func (controller *ClosetController) ListCloset(c echo.Context) error {
	items, err := controller.Closet.Items(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	groups := []models.ClosetGroupOut{}
	for _, bucket := range closet.Group(items) {
		groups = append(groups, models.ClosetGroupOut{Category: bucket.Category, Items: bucket.Items})
	}
	return c.JSON(http.StatusOK, models.ClosetOut{Count: len(items), Groups: groups})
}

func (controller *ClosetController) UploadItems(c echo.Context) error {
	var req models.UploadItemsIn
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return errorJSON(c, http.StatusBadRequest, err.Error())
	}

	added, err := controller.Closet.Upload(c.Request().Context(), req.Images)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, models.AnalyzeOut{Items: added})
}

func (controller *ClosetController) RecategorizeItem(c echo.Context) error {
	var req models.RecategorizeIn
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return errorJSON(c, http.StatusBadRequest, err.Error())
	}

	item, err := controller.Closet.Recategorize(c.Request().Context(), c.Param("id"), req.Category)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, item)
}

func (controller *ClosetController) RemoveItem(c echo.Context) error {
	if err := controller.Closet.Remove(c.Request().Context(), c.Param("id")); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (controller *ClosetController) ClearCloset(c echo.Context) error {
	if err := controller.Closet.Clear(c.Request().Context()); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
