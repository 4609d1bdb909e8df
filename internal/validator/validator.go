// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("category_kind", validateKind)
		_ = v.RegisterValidation("entry_kind", validateKind)
		_ = v.RegisterValidation("entry_status", validateEntryStatus)
		_ = v.RegisterValidation("entry_date", validateEntryDate)
	}
}

func validateKind(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "income", "expense":
		return true
	}
	return false
}

func validateEntryStatus(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "paid", "unpaid":
		return true
	}
	return false
}

func validateEntryDate(fl validator.FieldLevel) bool {
	_, err := time.Parse("02-01-2006", fl.Field().String())
	return err == nil
}
