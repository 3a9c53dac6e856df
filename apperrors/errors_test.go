package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypeChecks(t *testing.T) {
	assert.True(t, IsValidation(NewValidation("bad weight")))
	assert.True(t, IsNotFound(NewNotFound("Product not found")))
	assert.True(t, IsUnauthorized(NewUnauthorized("invalid token")))
	assert.True(t, IsInternal(NewInternal("db down", errors.New("conn refused"))))

	assert.False(t, IsNotFound(NewValidation("bad weight")))
	assert.True(t, IsInternal(errors.New("plain")))
}

func TestWrap_PreservesType(t *testing.T) {
	err := Wrap(NewNotFound("No products found"), "list day")

	assert.True(t, IsNotFound(err))
	assert.Equal(t, "list day: No products found", MessageOf(err))
}

func TestWrap_PlainErrorBecomesInternal(t *testing.T) {
	cause := errors.New("timeout")
	err := Wrap(cause, "create entry")

	assert.True(t, IsInternal(err))
	assert.ErrorIs(t, err, cause)
}

func TestWrap_Nil(t *testing.T) {
	assert.NoError(t, Wrap(nil, "noop"))
}

func TestTypeOf_SeesThroughFmtWrapping(t *testing.T) {
	err := fmt.Errorf("outer: %w", NewValidation("Invalid date"))

	assert.True(t, IsValidation(err))
	assert.Equal(t, "Invalid date", MessageOf(err))
}
