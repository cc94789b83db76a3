package routes

import (
	"github.com/gin-gonic/gin"

	commenthandlers "soapbox/internal/interfaces/http/handlers/comment"
	engagementhandlers "soapbox/internal/interfaces/http/handlers/engagement"
)

type CommentRouteConfig struct {
	CommentHandler    *commenthandlers.CommentHandler
	EngagementHandler *engagementhandlers.EngagementHandler
}

func SetupCommentRoutes(engine *gin.Engine, config *CommentRouteConfig) {
	comments := engine.Group("/comments")
	{
		comments.POST("/:id/vote",
			config.EngagementHandler.ToggleCommentUpvote)
		comments.DELETE("/:id",
			config.CommentHandler.DeleteComment)
	}
}
