package party

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/WeberBSG/ParTea/internal/app/domain/location"
	"github.com/WeberBSG/ParTea/internal/app/middleware"
	"github.com/WeberBSG/ParTea/internal/app/models"
)

type FeedHandlers struct {
	feed   FeedService
	logger *zap.Logger
}

func NewFeedHandlers(feed FeedService, logger *zap.Logger) *FeedHandlers {
	return &FeedHandlers{feed: feed, logger: logger}
}

// GetFeed returns the current session feed.
func (h *FeedHandlers) GetFeed(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"posts": h.feed.List()})
}

type refreshRequest struct {
	location.Report
	Query string `json:"query"`
}

// RefreshFeed runs the nearby search sequence from the client's geolocation
// report. Every failure carries a human-readable message and, except for
// misconfiguration, invites a manual retry.
func (h *FeedHandlers) RefreshFeed(c *gin.Context) {
	var req refreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid refresh request"})
		return
	}

	posts, err := h.feed.RefreshNearby(c.Request.Context(), location.FromReport(req.Report), req.Query)
	if err != nil {
		status, message := refreshErrorResponse(err)
		h.logger.Warn("Feed refresh failed",
			zap.Int("status", status),
			zap.Error(err))
		c.JSON(status, gin.H{
			"error":     message,
			"retryable": !errors.Is(err, models.ErrMissingAPIKey),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"posts": posts})
}

// CreatePost creates a user-submitted post. Requires a logged-in session.
func (h *FeedHandlers) CreatePost(c *gin.Context) {
	user := middleware.GetUserFromContext(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Login required"})
		return
	}

	var draft NewPost
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title, description and location name are required"})
		return
	}

	post := h.feed.AddPost(c.Request.Context(), *user, draft)
	c.JSON(http.StatusCreated, post)
}

// MyPosts lists the posts attributed to the logged-in user's handle.
func (h *FeedHandlers) MyPosts(c *gin.Context) {
	user := middleware.GetUserFromContext(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Login required"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"posts": h.feed.PostsByUsername(user.Username())})
}

// SharePost returns the share payload for a post: validated URL when the map
// link qualifies, clipboard text as the fallback.
func (h *FeedHandlers) SharePost(c *gin.Context) {
	post, err := h.feed.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	c.JSON(http.StatusOK, BuildSharePayload(post, requestOrigin(c)))
}

func requestOrigin(c *gin.Context) string {
	if origin := c.GetHeader("Origin"); origin != "" {
		return origin
	}
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + c.Request.Host
}

func refreshErrorResponse(err error) (int, string) {
	switch {
	case errors.Is(err, models.ErrLocationPermissionDenied):
		return http.StatusForbidden, "Location access denied. Please enable GPS."
	case errors.Is(err, models.ErrLocationUnsupported):
		return http.StatusBadRequest, "Geolocation not supported."
	case errors.Is(err, models.ErrLocationUnavailable):
		return http.StatusServiceUnavailable, "Location unavailable. Please try again."
	case errors.Is(err, models.ErrMissingAPIKey):
		return http.StatusInternalServerError, "Search is not configured."
	case errors.Is(err, models.ErrSearchFailed):
		return http.StatusBadGateway, "Failed to fetch parties from Gemini."
	default:
		return http.StatusInternalServerError, "An unexpected error occurred."
	}
}
