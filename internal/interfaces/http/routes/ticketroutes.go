package routes

import (
	"github.com/gin-gonic/gin"

	commenthandlers "soapbox/internal/interfaces/http/handlers/comment"
	engagementhandlers "soapbox/internal/interfaces/http/handlers/engagement"
	tickethandlers "soapbox/internal/interfaces/http/handlers/ticket"
)

type TicketRouteConfig struct {
	TicketHandler     *tickethandlers.TicketHandler
	CommentHandler    *commenthandlers.CommentHandler
	EngagementHandler *engagementhandlers.EngagementHandler
}

func SetupTicketRoutes(engine *gin.Engine, config *TicketRouteConfig) {
	tickets := engine.Group("/tickets")
	{
		// IMPORTANT: Register specific paths BEFORE parameterized paths to avoid route conflicts

		// Specific action endpoints (must come BEFORE /:id to avoid conflicts)
		tickets.PATCH("/:id/status",
			config.TicketHandler.ChangeStatus)
		tickets.PATCH("/:id/lock",
			config.TicketHandler.LockTicket)
		tickets.PATCH("/:id/archive",
			config.TicketHandler.ArchiveTicket)

		tickets.POST("/:id/comments",
			config.CommentHandler.AddComment)
		tickets.GET("/:id/comments/:commentId/thread",
			config.CommentHandler.GetThread)

		tickets.POST("/:id/vote",
			config.EngagementHandler.ToggleTicketUpvote)
		tickets.POST("/:id/subscriptions",
			config.EngagementHandler.Subscribe)
		tickets.DELETE("/:id/subscriptions",
			config.EngagementHandler.Unsubscribe)

		// Generic parameterized routes (must come LAST)
		tickets.PATCH("/:id",
			config.TicketHandler.UpdateTicket)
	}
}
