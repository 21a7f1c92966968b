package routes

import (
	"github.com/gin-gonic/gin"

	knowledgehandlers "github.com/ecoride/helpdesk/internal/interfaces/http/handlers/knowledge"
	"github.com/ecoride/helpdesk/internal/interfaces/http/middleware"
	"github.com/ecoride/helpdesk/internal/shared/authorization"
)

type KnowledgeRouteConfig struct {
	KnowledgeHandler *knowledgehandlers.Handler
	AuthMiddleware   *middleware.AuthMiddleware
	Permission       func(resource, action string) gin.HandlerFunc
}

func SetupKnowledgeRoutes(engine *gin.Engine, config *KnowledgeRouteConfig) {
	// public listing, no auth
	engine.GET("/help-center", config.KnowledgeHandler.GetHelpCenter)

	admin := engine.Group("/admin/knowledge")
	admin.Use(config.AuthMiddleware.RequireAuth(), authorization.RequireAdmin())
	{
		admin.POST("",
			config.Permission("knowledge", "create"),
			config.KnowledgeHandler.CreateEntry)
		admin.GET("",
			config.Permission("knowledge", "read"),
			config.KnowledgeHandler.ListEntries)

		// specific paths before parameterized ones
		admin.PATCH("/:id/status",
			config.Permission("knowledge", "update"),
			config.KnowledgeHandler.SetEntryStatus)

		admin.PUT("/:id",
			config.Permission("knowledge", "update"),
			config.KnowledgeHandler.UpdateEntry)
		admin.DELETE("/:id",
			config.Permission("knowledge", "delete"),
			config.KnowledgeHandler.DeleteEntry)
	}
}
