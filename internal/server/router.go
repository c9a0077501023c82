package server

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/WeberBSG/ParTea/internal/app/domain/auth"
	"github.com/WeberBSG/ParTea/internal/app/domain/party"
	middleware2 "github.com/WeberBSG/ParTea/internal/app/middleware"
	"github.com/WeberBSG/ParTea/internal/routes"
)

// SetupRouter configures and returns the Gin router with all middleware and routes
func SetupRouter(s *Server, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	r.Use(middleware2.OTELGinMiddleware("partea"))
	r.Use(gin.Recovery())
	r.Use(middleware2.ObservabilityMiddleware())
	r.Use(middleware2.CORSMiddleware())
	r.Use(middleware2.SecurityMiddleware())

	handlers := routes.AppHandlers{
		Auth: auth.NewAuthHandlers(s.AuthService(), logger),
		Feed: party.NewFeedHandlers(s.FeedService(), logger),
	}

	routes.Setup(r, handlers, s.AuthService().JWTConfig(), logger)

	return r
}
