package handlers

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const yearMonthLayout = "2006-01"

// validateYearMonth accepts strings in YYYY-MM form with a real month.
func validateYearMonth(fl validator.FieldLevel) bool {
	_, err := time.Parse(yearMonthLayout, fl.Field().String())
	return err == nil
}

// RegisterValidators adds the custom binding rules used by request DTOs.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected binding validator engine %T", binding.Validator.Engine())
	}
	if err := v.RegisterValidation("yearmonth", validateYearMonth); err != nil {
		return fmt.Errorf("failed to register yearmonth validator: %w", err)
	}
	return nil
}
