package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"nutrilog/models"
	"nutrilog/repositories"
	"nutrilog/utils"
)

var testSecret = []byte("test-secret-key-for-testing-only")

func newAuthRouter(users repositories.UserRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(ErrorHandler(zap.NewNop()), AuthMiddleware(testSecret, users))
	router.GET("/test", func(c *gin.Context) {
		id, _ := Owner(c)
		c.JSON(http.StatusOK, gin.H{"userID": id.String()})
	})
	return router
}

func TestAuthMiddleware_MissingAuthHeader(t *testing.T) {
	router := newAuthRouter(repositories.NewMemoryUserRepository())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"message":"Authorization header required"}`, w.Body.String())
}

func TestAuthMiddleware_InvalidAuthFormat(t *testing.T) {
	router := newAuthRouter(repositories.NewMemoryUserRepository())

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("Authorization", "InvalidFormat")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	router := newAuthRouter(repositories.NewMemoryUserRepository())

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("Authorization", "Bearer invalid_token_xyz")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"message":"invalid token"}`, w.Body.String())
}

func TestAuthMiddleware_UserIDClaim(t *testing.T) {
	id := uuid.New()
	token, err := utils.GenerateJWT(testSecret, id, "user@example.com", time.Hour)
	require.NoError(t, err)

	router := newAuthRouter(repositories.NewMemoryUserRepository())
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"userID":"`+id.String()+`"}`, w.Body.String())
}

func TestAuthMiddleware_EmailClaimFallback(t *testing.T) {
	users := repositories.NewMemoryUserRepository()
	user := users.Save(models.User{Email: "known@example.com"})

	token, err := utils.GenerateJWT(testSecret, uuid.Nil, "known@example.com", time.Hour)
	require.NoError(t, err)

	router := newAuthRouter(users)
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("Authorization", "Bearer "+tokenWithoutUserID(t, token))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"userID":"`+user.ID.String()+`"}`, w.Body.String())
}

func TestAuthMiddleware_UnknownEmail(t *testing.T) {
	token, err := utils.GenerateJWT(testSecret, uuid.Nil, "ghost@example.com", time.Hour)
	require.NoError(t, err)

	router := newAuthRouter(repositories.NewMemoryUserRepository())
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("Authorization", "Bearer "+tokenWithoutUserID(t, token))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// tokenWithoutUserID re-signs token with only its email and exp claims.
func tokenWithoutUserID(t *testing.T, token string) string {
	t.Helper()
	claims, err := utils.ParseJWT(testSecret, token)
	require.NoError(t, err)

	delete(claims, "userId")
	return signClaims(t, claims)
}
