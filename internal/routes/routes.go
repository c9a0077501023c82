package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/WeberBSG/ParTea/internal/app/domain/auth"
	"github.com/WeberBSG/ParTea/internal/app/domain/party"
	"github.com/WeberBSG/ParTea/internal/app/middleware"
)

// AppHandlers bundles the HTTP handlers for route registration.
type AppHandlers struct {
	Auth *auth.AuthHandlers
	Feed *party.FeedHandlers
}

// Setup registers all application routes.
func Setup(r *gin.Engine, handlers AppHandlers, jwtConfig auth.JWTConfig, logger *zap.Logger) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authGroup := r.Group("/auth")
	{
		authGroup.POST("/login", handlers.Auth.Login)
		authGroup.POST("/logout", handlers.Auth.Logout)
		authGroup.GET("/me", middleware.AuthMiddleware(jwtConfig), handlers.Auth.Me)
	}

	feed := r.Group("/feed")
	feed.Use(middleware.OptionalAuthMiddleware(jwtConfig))
	{
		feed.GET("", handlers.Feed.GetFeed)
		feed.POST("/refresh", handlers.Feed.RefreshFeed)
	}

	posts := r.Group("/posts")
	{
		posts.POST("", middleware.AuthMiddleware(jwtConfig), handlers.Feed.CreatePost)
		posts.GET("/mine", middleware.AuthMiddleware(jwtConfig), handlers.Feed.MyPosts)
		posts.GET("/:id/share", middleware.OptionalAuthMiddleware(jwtConfig), handlers.Feed.SharePost)
	}

	profile := r.Group("/profile")
	profile.Use(middleware.AuthMiddleware(jwtConfig))
	{
		profile.PUT("", handlers.Auth.UpdateProfile)
	}

	logger.Info("Routes registered")
}
