package routes

import (
	"github.com/gin-gonic/gin"

	activityhandlers "soapbox/internal/interfaces/http/handlers/activity"
)

type ActivityRouteConfig struct {
	ActivityHandler *activityhandlers.ActivityHandler
}

func SetupActivityRoutes(engine *gin.Engine, config *ActivityRouteConfig) {
	// The board-scoped timeline lives under /boards/:board/activity and is
	// registered with the board routes.
	engine.GET("/activity", config.ActivityHandler.GlobalActivity)
}
