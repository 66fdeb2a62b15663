package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/fiberops/subcore/internal/interfaces/http/handlers"
	"github.com/fiberops/subcore/internal/interfaces/http/middleware"
)

// AccountRouteConfig holds dependencies for account and onboarding routes.
type AccountRouteConfig struct {
	AccountHandler     *handlers.AccountHandler
	ApplicationHandler *handlers.ApplicationHandler
	// RateLimiter is optional and guards state-changing commands.
	RateLimiter *middleware.RateLimiter
}

// SetupAccountRoutes configures account and onboarding routes.
func SetupAccountRoutes(api *gin.RouterGroup, cfg *AccountRouteConfig) {
	commands := api.Group("")
	if cfg.RateLimiter != nil {
		commands.Use(cfg.RateLimiter.Limit())
	}

	commands.POST("/applications/:id/approve", cfg.ApplicationHandler.Approve)

	accounts := commands.Group("/accounts")
	{
		accounts.POST("/allocate", cfg.AccountHandler.AllocateAccountNumber)
		accounts.POST("/:accountNo/reconnect", cfg.AccountHandler.Reconnect)
		accounts.POST("/:accountNo/disconnect", cfg.AccountHandler.Disconnect)
		accounts.POST("/:accountNo/suspend", cfg.AccountHandler.Suspend)
		accounts.POST("/:accountNo/pullout", cfg.AccountHandler.Pullout)
		accounts.POST("/:accountNo/migrate", cfg.AccountHandler.Migrate)
		accounts.PUT("/:accountNo/credentials", cfg.AccountHandler.UpdateCredentials)
	}

	api.GET("/accounts/:accountNo/events", cfg.AccountHandler.ListEvents)
}
