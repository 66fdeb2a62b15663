package http

import (
	"github.com/fiberops/subcore/internal/interfaces/http/handlers"
)

// allHandlers holds all HTTP handler instances.
type allHandlers struct {
	accountHandler     *handlers.AccountHandler
	applicationHandler *handlers.ApplicationHandler
	settingHandler     *handlers.SettingHandler
	healthHandler      *handlers.HealthHandler
}

func (c *Container) initHandlers() {
	u := c.ucs

	checks := map[string]handlers.Pinger{"database": sqlPinger{db: c.db}}
	if c.redis != nil {
		checks["redis"] = redisPinger{client: c.redis}
	}

	c.hdlrs = &allHandlers{
		accountHandler: handlers.NewAccountHandler(
			u.allocateAccountNumber,
			u.reconnect,
			u.disconnect,
			u.suspend,
			u.pullout,
			u.migrate,
			u.updateCredentials,
			u.listEvents,
			c.log,
		),
		applicationHandler: handlers.NewApplicationHandler(u.approveApplication, c.log),
		settingHandler: handlers.NewSettingHandler(
			u.getAccountSequence,
			u.updateAccountSequence,
			u.deleteAccountSequence,
			u.getCredentialPattern,
			u.updateCredentialPattern,
			u.getAAASettings,
			u.updateAAASettings,
			c.log,
		),
		healthHandler: handlers.NewHealthHandler(checks),
	}
}
