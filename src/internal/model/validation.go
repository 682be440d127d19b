package model

import (
	"wallet-service/src/internal/entity"

	"github.com/go-playground/validator/v10"
)

// NewValidator returns a validator with the domain tags registered.
func NewValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("rank", func(fl validator.FieldLevel) bool {
		return entity.Rank(fl.Field().String()).Valid()
	})
	return v
}
