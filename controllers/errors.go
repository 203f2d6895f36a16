package controllers

import (
	"errors"
	"net/http"

	"wardrobeapi/closet"
	"wardrobeapi/gateway"
	"wardrobeapi/models"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

func errorJSON(c echo.Context, status int, message string) error {
	return c.JSON(status, map[string]string{"error": message})
}

// writeError maps service errors to a status and a single message.
func writeError(c echo.Context, err error) error {
	var gwErr *gateway.Error
	switch {
	case errors.As(err, &gwErr):
		return errorJSON(c, gwErr.Status, gwErr.Message)
	case errors.Is(err, closet.ErrItemNotFound):
		return errorJSON(c, http.StatusNotFound, closet.ErrItemNotFound.Error())
	case errors.Is(err, closet.ErrInvalidCategory):
		return errorJSON(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, models.ErrWardrobeTooSmall):
		return errorJSON(c, http.StatusBadRequest, models.ErrWardrobeTooSmall.Error())
	default:
		logrus.WithError(err).WithField("path", c.Path()).Error("request failed")
		return errorJSON(c, http.StatusInternalServerError, "internal server error")
	}
}
