package middleware

import (
	"context"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/WeberBSG/ParTea/internal/app/domain/auth"
	"github.com/WeberBSG/ParTea/internal/app/models"
	"github.com/WeberBSG/ParTea/internal/app/observability/metrics"
)

// Define typed context keys
type contextKey string

const UserContextKey contextKey = "user"
const UserIDKey contextKey = "userID"

// CORSMiddleware handles CORS headers
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

// SecurityMiddleware adds security headers
func SecurityMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("X-Content-Type-Options", "nosniff")
		c.Writer.Header().Set("X-Frame-Options", "DENY")
		c.Writer.Header().Set("X-XSS-Protection", "1; mode=block")
		c.Writer.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")

		c.Next()
	}
}

// AuthMiddleware validates the session token and requires a logged-in user.
func AuthMiddleware(jwtConfig auth.JWTConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := auth.NewJWTService().ValidateRequest(jwtConfig, c.Request)
		if err != nil {
			c.AbortWithStatusJSON(401, gin.H{"error": "Login required"})
			return
		}

		setUserContext(c, claims)
		c.Next()
	}
}

// OptionalAuthMiddleware sets user context if a valid token exists, but
// doesn't require auth.
func OptionalAuthMiddleware(jwtConfig auth.JWTConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, err := auth.NewJWTService().ValidateRequest(jwtConfig, c.Request); err == nil {
			setUserContext(c, claims)
		}
		c.Next()
	}
}

func setUserContext(c *gin.Context, claims *auth.Claims) {
	user := &models.User{
		ID:    claims.UserID,
		Name:  claims.Name,
		Email: claims.Email,
	}

	c.Set(string(UserContextKey), user)
	c.Set("user_id", claims.UserID)
	c.Set("user_email", claims.Email)
	c.Set("user_name", claims.Name)
}

// GetUserFromContext extracts user information from Gin context
func GetUserFromContext(c *gin.Context) *models.User {
	user, exists := c.Get(string(UserContextKey))
	if !exists {
		return nil
	}

	userModel, ok := user.(*models.User)
	if !ok {
		return nil
	}

	return userModel
}

// GetUserIDFromContext extracts just the user ID from context
func GetUserIDFromContext(c *gin.Context) string {
	if userID, exists := c.Get("user_id"); exists {
		if idStr, ok := userID.(string); ok {
			return idStr
		}
	}
	return "anonymous"
}

// ObservabilityMiddleware records request counts and latencies.
func ObservabilityMiddleware() gin.HandlerFunc {
	return gin.HandlerFunc(func(c *gin.Context) {
		start := time.Now()

		c.Next()

		m := metrics.Get()
		if m == nil {
			return
		}

		duration := time.Since(start).Seconds()
		statusCode := c.Writer.Status()

		m.HTTPRequestsTotal.Add(context.Background(), 1,
			metric.WithAttributes(
				attribute.String("method", c.Request.Method),
				attribute.String("path", c.FullPath()),
				attribute.String("status", strconv.Itoa(statusCode)),
			))

		m.HTTPRequestDuration.Record(context.Background(), duration,
			metric.WithAttributes(
				attribute.String("method", c.Request.Method),
				attribute.String("path", c.FullPath()),
			))

		if c.Request.URL.Path == "/auth/login" || c.Request.URL.Path == "/auth/logout" {
			m.AuthRequestsTotal.Add(context.Background(), 1,
				metric.WithAttributes(
					attribute.String("endpoint", c.Request.URL.Path),
					attribute.String("status", strconv.Itoa(statusCode)),
				))
		}
	})
}
