package routes

import (
	"github.com/gin-gonic/gin"

	"soapbox/internal/domain/permission"
	settinghandlers "soapbox/internal/interfaces/http/handlers/setting"
	"soapbox/internal/interfaces/http/middleware"
)

type SettingRouteConfig struct {
	SettingHandler *settinghandlers.SettingHandler
	Permissions    permission.Service
}

func SetupSettingRoutes(engine *gin.Engine, config *SettingRouteConfig) {
	settings := engine.Group("/settings")
	{
		// Reads stay open; site name and default board feed public pages.
		settings.GET("",
			config.SettingHandler.GetSettings)
		settings.PUT("",
			middleware.RequireBoardManager(config.Permissions),
			config.SettingHandler.UpdateSettings)
	}
}
