package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/fiberops/subcore/internal/interfaces/http/handlers"
)

// SettingRouteConfig holds dependencies for operator setting routes.
type SettingRouteConfig struct {
	SettingHandler *handlers.SettingHandler
}

// SetupSettingRoutes configures operator setting routes.
func SetupSettingRoutes(api *gin.RouterGroup, cfg *SettingRouteConfig) {
	settings := api.Group("/settings")
	{
		settings.GET("/account-sequence", cfg.SettingHandler.GetAccountSequence)
		settings.PUT("/account-sequence", cfg.SettingHandler.UpdateAccountSequence)
		settings.DELETE("/account-sequence", cfg.SettingHandler.DeleteAccountSequence)

		settings.GET("/credential-patterns/:kind", cfg.SettingHandler.GetCredentialPattern)
		settings.PUT("/credential-patterns/:kind", cfg.SettingHandler.UpdateCredentialPattern)

		settings.GET("/aaa", cfg.SettingHandler.GetAAASettings)
		settings.PUT("/aaa", cfg.SettingHandler.UpdateAAASettings)
	}
}
