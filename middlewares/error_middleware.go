package middlewares

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"nutrilog/apperrors"
	"nutrilog/utils"
)

// ErrorHandler turns the first error recorded on the context into the
// response. Handlers only call c.Error and return.
func ErrorHandler(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		err := c.Errors[0].Err

		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			c.JSON(http.StatusBadRequest, gin.H{"message": utils.ValidationMessage(verrs)})
			return
		}

		switch apperrors.TypeOf(err) {
		case apperrors.ErrorTypeValidation:
			c.JSON(http.StatusBadRequest, gin.H{"message": apperrors.MessageOf(err)})
		case apperrors.ErrorTypeNotFound:
			c.JSON(http.StatusNotFound, gin.H{"message": apperrors.MessageOf(err)})
		case apperrors.ErrorTypeUnauthorized:
			c.JSON(http.StatusUnauthorized, gin.H{"message": apperrors.MessageOf(err)})
		default:
			logger.Error("request failed",
				zap.String("method", c.Request.Method),
				zap.String("path", c.FullPath()),
				zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		}
	}
}
