package routes

import (
	"github.com/gin-gonic/gin"

	queryhandlers "github.com/ecoride/helpdesk/internal/interfaces/http/handlers/query"
	"github.com/ecoride/helpdesk/internal/interfaces/http/middleware"
	"github.com/ecoride/helpdesk/internal/shared/authorization"
)

type QueryRouteConfig struct {
	QueryHandler   *queryhandlers.Handler
	AuthMiddleware *middleware.AuthMiddleware
	Permission     func(resource, action string) gin.HandlerFunc
}

func SetupQueryRoutes(engine *gin.Engine, config *QueryRouteConfig) {
	queries := engine.Group("/queries")
	queries.Use(config.AuthMiddleware.RequireAuth())
	{
		queries.POST("", config.QueryHandler.SubmitQuery)
		queries.GET("", config.QueryHandler.ListQueries)
		queries.GET("/:id", config.QueryHandler.GetQuery)
	}

	admin := engine.Group("/admin/queries")
	admin.Use(config.AuthMiddleware.RequireAuth(), authorization.RequireAdmin())
	{
		admin.GET("",
			config.Permission("query", "read"),
			config.QueryHandler.ListQueries)
		admin.POST("/:id/response",
			config.Permission("query", "respond"),
			config.QueryHandler.RespondToQuery)
		admin.POST("/:id/close",
			config.Permission("query", "close"),
			config.QueryHandler.CloseQuery)
	}
}
