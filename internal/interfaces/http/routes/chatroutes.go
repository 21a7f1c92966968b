package routes

import (
	"github.com/gin-gonic/gin"

	chathandlers "github.com/ecoride/helpdesk/internal/interfaces/http/handlers/chat"
	"github.com/ecoride/helpdesk/internal/interfaces/http/middleware"
)

type ChatRouteConfig struct {
	ChatHandler    *chathandlers.Handler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupChatRoutes(engine *gin.Engine, config *ChatRouteConfig) {
	conversations := engine.Group("/conversations")
	conversations.Use(config.AuthMiddleware.RequireAuth())
	{
		conversations.POST("", config.ChatHandler.StartConversation)
		conversations.GET("", config.ChatHandler.ListConversations)

		conversations.POST("/:id/messages", config.ChatHandler.SendMessage)
		conversations.GET("/:id/messages", config.ChatHandler.ListMessages)
	}
}
