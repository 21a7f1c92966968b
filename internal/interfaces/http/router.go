package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ecoride/helpdesk/internal/interfaces/http/middleware"
	"github.com/ecoride/helpdesk/internal/interfaces/http/routes"
)

func (c *Container) setupMiddleware() {
	if c.cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	c.engine.Use(middleware.Recovery(c.log.Named("recovery")))
	c.engine.Use(middleware.RequestID())
	c.engine.Use(middleware.RequestLogger(c.log.Named("http")))
	c.engine.Use(middleware.CORS(c.cfg.Server.AllowedOrigins))
	c.engine.Use(middleware.SecurityHeaders())
	c.engine.Use(middleware.RateLimit(c.redis, c.cfg.RateLimit, c.log.Named("ratelimit")))
}

func (c *Container) setupRoutes() {
	c.engine.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	requirePermission := func(resource, action string) gin.HandlerFunc {
		return middleware.RequirePermission(c.enforcer, c.log.Named("permission"), resource, action)
	}

	routes.SetupKnowledgeRoutes(c.engine, &routes.KnowledgeRouteConfig{
		KnowledgeHandler: c.knowledgeHandler,
		AuthMiddleware:   c.authMiddleware,
		Permission:       requirePermission,
	})

	routes.SetupChatRoutes(c.engine, &routes.ChatRouteConfig{
		ChatHandler:    c.chatHandler,
		AuthMiddleware: c.authMiddleware,
	})

	routes.SetupQueryRoutes(c.engine, &routes.QueryRouteConfig{
		QueryHandler:   c.queryHandler,
		AuthMiddleware: c.authMiddleware,
		Permission:     requirePermission,
	})
}
