package utils

import (
	"regexp"
	"slices"
	"strings"

	"Smart-Fridge-Backend/domain"

	"github.com/go-playground/validator/v10"
)

var Validate *validator.Validate

var phonePattern = regexp.MustCompile(`^\+?[0-9][0-9\- ()]{6,19}$`)

func InitValidator() {
	if Validate != nil {
		return
	}
	v := validator.New()
	_ = v.RegisterValidation("category", func(fl validator.FieldLevel) bool {
		return slices.Contains(domain.Categories, strings.ToLower(fl.Field().String()))
	})
	_ = v.RegisterValidation("location", func(fl validator.FieldLevel) bool {
		return slices.Contains(domain.StorageLocations, strings.ToLower(fl.Field().String()))
	})
	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})
	Validate = v
}
