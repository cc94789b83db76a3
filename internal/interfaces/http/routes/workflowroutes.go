package routes

import (
	"github.com/gin-gonic/gin"

	"soapbox/internal/domain/permission"
	workflowhandlers "soapbox/internal/interfaces/http/handlers/workflow"
	"soapbox/internal/interfaces/http/middleware"
)

type WorkflowRouteConfig struct {
	WorkflowHandler *workflowhandlers.WorkflowHandler
	Permissions     permission.Service
}

func SetupWorkflowRoutes(engine *gin.Engine, config *WorkflowRouteConfig) {
	requireManager := middleware.RequireBoardManager(config.Permissions)

	statusSets := engine.Group("/status-sets")
	{
		// Listing stays open so board views can render status pickers.
		statusSets.GET("",
			config.WorkflowHandler.ListStatusSets)
		statusSets.POST("",
			requireManager,
			config.WorkflowHandler.CreateStatusSet)
		statusSets.POST("/:id/statuses",
			requireManager,
			config.WorkflowHandler.AddStatus)
		statusSets.DELETE("/:id",
			requireManager,
			config.WorkflowHandler.DeleteStatusSet)
	}

	statuses := engine.Group("/statuses")
	{
		statuses.PATCH("/:id",
			requireManager,
			config.WorkflowHandler.UpdateStatus)
	}
}
