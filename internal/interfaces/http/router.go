package http

import (
	"github.com/gin-gonic/gin"

	"github.com/fiberops/subcore/internal/interfaces/http/middleware"
	"github.com/fiberops/subcore/internal/interfaces/http/routes"
)

// Router owns the gin engine and the container behind it.
type Router struct {
	container *Container
}

func NewRouter(container *Container) *Router {
	return &Router{container: container}
}

// SetupRoutes installs global middleware and mounts every route group.
func (r *Router) SetupRoutes() {
	c := r.container
	engine := c.engine

	engine.Use(middleware.RequestID())
	engine.Use(middleware.Recovery(c.log))
	engine.Use(middleware.Logger(c.log))
	engine.Use(middleware.CORS(c.cfg.Server.AllowedOrigins))
	engine.Use(middleware.SecurityHeaders())

	engine.GET("/health", c.hdlrs.healthHandler.Health)

	api := engine.Group("/api/v1")
	api.Use(c.operatorMiddleware.Identify())

	routes.SetupAccountRoutes(api, &routes.AccountRouteConfig{
		AccountHandler:     c.hdlrs.accountHandler,
		ApplicationHandler: c.hdlrs.applicationHandler,
		RateLimiter:        c.rateLimiter,
	})
	routes.SetupSettingRoutes(api, &routes.SettingRouteConfig{
		SettingHandler: c.hdlrs.settingHandler,
	})
}

func (r *Router) GetEngine() *gin.Engine {
	return r.container.engine
}

func (r *Router) Shutdown() {
	r.container.Shutdown()
}
