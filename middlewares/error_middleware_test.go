package middlewares

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"nutrilog/apperrors"
)

func serveError(t *testing.T, logger *zap.Logger, err error) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(ErrorHandler(logger))
	router.GET("/fail", func(c *gin.Context) {
		_ = c.Error(err)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/fail", nil))
	return w
}

func TestErrorHandler_StatusMapping(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		body   string
	}{
		{"validation", apperrors.NewValidation("Weight must be a positive number"), http.StatusBadRequest, `{"message":"Weight must be a positive number"}`},
		{"not found", apperrors.NewNotFound("Product not found"), http.StatusNotFound, `{"message":"Product not found"}`},
		{"unauthorized", apperrors.NewUnauthorized("invalid token"), http.StatusUnauthorized, `{"message":"invalid token"}`},
		{"internal", apperrors.NewInternal("find eaten products", errors.New("connection refused")), http.StatusInternalServerError, `{"message":"Internal server error"}`},
		{"plain", errors.New("boom"), http.StatusInternalServerError, `{"message":"Internal server error"}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := serveError(t, zap.NewNop(), tc.err)
			assert.Equal(t, tc.status, w.Code)
			assert.JSONEq(t, tc.body, w.Body.String())
		})
	}
}

func TestErrorHandler_LogsInternalWithoutLeaking(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)

	w := serveError(t, zap.New(core), apperrors.NewInternal("find user", errors.New("password=hunter2")))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "hunter2")
	assert.Equal(t, 1, logs.FilterMessage("request failed").Len())
}

func TestErrorHandler_NotFoundIsNotLogged(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)

	serveError(t, zap.New(core), apperrors.NewNotFound("Product not found"))

	assert.Zero(t, logs.Len())
}
