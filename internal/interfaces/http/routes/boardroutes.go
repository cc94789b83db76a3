package routes

import (
	"github.com/gin-gonic/gin"

	"soapbox/internal/domain/permission"
	activityhandlers "soapbox/internal/interfaces/http/handlers/activity"
	boardhandlers "soapbox/internal/interfaces/http/handlers/board"
	tickethandlers "soapbox/internal/interfaces/http/handlers/ticket"
	"soapbox/internal/interfaces/http/middleware"
)

type BoardRouteConfig struct {
	BoardHandler    *boardhandlers.BoardHandler
	TicketHandler   *tickethandlers.TicketHandler
	ActivityHandler *activityhandlers.ActivityHandler
	Permissions     permission.Service
}

func SetupBoardRoutes(engine *gin.Engine, config *BoardRouteConfig) {
	requireManager := middleware.RequireBoardManager(config.Permissions)

	boards := engine.Group("/boards")
	{
		// IMPORTANT: Register specific paths BEFORE parameterized paths to avoid route conflicts

		// Collection operations (no board parameter)
		boards.GET("",
			config.BoardHandler.ListBoards)
		boards.POST("",
			requireManager,
			config.BoardHandler.CreateBoard)

		// Nested resources (must come BEFORE /:board to avoid conflicts)
		boards.GET("/:board/tickets",
			config.TicketHandler.ListTickets)
		boards.POST("/:board/tickets",
			config.TicketHandler.CreateTicket)
		boards.GET("/:board/tickets/:ticket",
			config.TicketHandler.GetTicket)
		boards.GET("/:board/activity",
			config.ActivityHandler.BoardActivity)

		// Generic parameterized routes (must come LAST)
		boards.GET("/:board",
			config.BoardHandler.GetBoard)
		boards.PATCH("/:board",
			requireManager,
			config.BoardHandler.UpdateBoard)
		boards.DELETE("/:board",
			requireManager,
			config.BoardHandler.DeleteBoard)
	}
}
