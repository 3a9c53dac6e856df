package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"nutrilog/apperrors"
	"nutrilog/middlewares"
)

// bindError keeps validator errors for field messages and turns anything
// else (malformed JSON, wrong types) into a validation error.
func bindError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return verrs
	}
	return apperrors.NewValidation("invalid request body")
}

func owner(c *gin.Context) (uuid.UUID, bool) {
	id, ok := middlewares.Owner(c)
	if !ok {
		_ = c.Error(apperrors.NewUnauthorized("unauthorized"))
	}
	return id, ok
}
