package handlers

import (
	"github.com/SscSPs/nbp_rates_app/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators adds the custom binding tags used by request DTOs to gin's validator.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return v.RegisterValidation("nbptable", validateNBPTable)
}

// validateNBPTable accepts the NBP table letters in any case.
func validateNBPTable(fl validator.FieldLevel) bool {
	_, err := domain.ParseTable(fl.Field().String())
	return err == nil
}
