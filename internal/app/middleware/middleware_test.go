package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/WeberBSG/ParTea/internal/app/domain/auth"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testJWTConfig() auth.JWTConfig {
	return auth.JWTConfig{SecretKey: "test-secret", TokenExpiration: time.Hour}
}

func signToken(t *testing.T, jwtConfig auth.JWTConfig) string {
	t.Helper()
	token, err := auth.NewJWTService().GenerateToken(jwtConfig, "u1", "tea@party.com", "Tea Enthusiast")
	require.NoError(t, err)
	return token
}

func whoAmI(c *gin.Context) {
	if user := GetUserFromContext(c); user != nil {
		c.JSON(http.StatusOK, gin.H{"id": user.ID})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": "anonymous"})
}

func TestAuthMiddleware(t *testing.T) {
	jwtConfig := testJWTConfig()

	r := gin.New()
	r.GET("/private", AuthMiddleware(jwtConfig), whoAmI)

	t.Run("valid token passes and sets the user", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/private", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, jwtConfig))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"id":"u1"}`, w.Body.String())
	})

	t.Run("missing header is rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/private", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("malformed header is rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/private", nil)
		req.Header.Set("Authorization", "Token abc")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("token signed with another secret is rejected", func(t *testing.T) {
		other := auth.JWTConfig{SecretKey: "other", TokenExpiration: time.Hour}
		req := httptest.NewRequest(http.MethodGet, "/private", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, other))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestOptionalAuthMiddleware(t *testing.T) {
	jwtConfig := testJWTConfig()

	r := gin.New()
	r.GET("/public", OptionalAuthMiddleware(jwtConfig), whoAmI)

	t.Run("anonymous passes through", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/public", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"id":"anonymous"}`, w.Body.String())
	})

	t.Run("valid token attaches the user", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/public", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, jwtConfig))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"id":"u1"}`, w.Body.String())
	})
}

func TestCORSMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(CORSMiddleware())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	t.Run("headers are set", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("preflight short-circuits", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})
}

func TestGetUserIDFromContext(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Equal(t, "anonymous", GetUserIDFromContext(c))

	c.Set("user_id", "u1")
	assert.Equal(t, "u1", GetUserIDFromContext(c))
}
