package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AuthHandlers struct {
	service Service
	logger  *zap.Logger
}

func NewAuthHandlers(service Service, logger *zap.Logger) *AuthHandlers {
	return &AuthHandlers{service: service, logger: logger}
}

// Login performs the mock login and returns the session user with a token.
func (h *AuthHandlers) Login(c *gin.Context) {
	user, token, err := h.service.Login(c.Request.Context())
	if err != nil {
		h.logger.Error("Login failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user, "token": token})
}

// Logout drops the mock session.
func (h *AuthHandlers) Logout(c *gin.Context) {
	h.service.Logout(c.Request.Context())
	c.Status(http.StatusNoContent)
}

// Me returns the current session user.
func (h *AuthHandlers) Me(c *gin.Context) {
	user, ok := h.service.CurrentUser()
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Login required"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

// UpdateProfile edits the session user's profile fields.
func (h *AuthHandlers) UpdateProfile(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Login required"})
		return
	}

	var params UpdateProfileParams
	if err := c.ShouldBindJSON(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid profile payload"})
		return
	}

	user, err := h.service.UpdateProfile(c.Request.Context(), userID.(string), params)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "No active session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}
