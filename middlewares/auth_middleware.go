// middlewares/auth_middleware.go
package middlewares

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"nutrilog/apperrors"
	"nutrilog/repositories"
	"nutrilog/utils"
)

const ownerKey = "userID"

// AuthMiddleware verifies the bearer token and stores the caller's user id
// in the context. The id comes from the userId claim, or from an email
// claim resolved through users.
func AuthMiddleware(secret []byte, users repositories.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			abortWith(c, apperrors.NewUnauthorized("Authorization header required"))
			return
		}

		claims, err := utils.ParseJWT(secret, strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil {
			abortWith(c, apperrors.NewUnauthorized("invalid token"))
			return
		}

		// 1) Prefer userId claim
		if v, ok := claims["userId"].(string); ok && v != "" {
			id, err := uuid.Parse(v)
			if err != nil {
				abortWith(c, apperrors.NewUnauthorized("invalid claims"))
				return
			}
			c.Set(ownerKey, id)
			c.Next()
			return
		}

		// 2) Fallback: email claim
		email, _ := claims["email"].(string)
		if email == "" {
			abortWith(c, apperrors.NewUnauthorized("email claim missing"))
			return
		}

		user, err := users.FindByEmail(c.Request.Context(), email)
		if err != nil {
			if apperrors.IsNotFound(err) {
				abortWith(c, apperrors.NewUnauthorized("user not found"))
				return
			}
			abortWith(c, err)
			return
		}

		c.Set(ownerKey, user.ID)
		c.Set("email", email)
		c.Next()
	}
}

// Owner returns the authenticated user id set by AuthMiddleware.
func Owner(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get(ownerKey)
	if !ok {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}

func abortWith(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}
