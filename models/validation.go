package models

import (
	"github.com/go-playground/validator"
)

func ValidateCategory(fl validator.FieldLevel) bool {
	return Category(fl.Field().String()).Valid()
}
