package http

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	settingUsecases "github.com/fiberops/subcore/internal/application/setting/usecases"
	"github.com/fiberops/subcore/internal/domain/connectivity"
	"github.com/fiberops/subcore/internal/infrastructure/aaa"
	"github.com/fiberops/subcore/internal/infrastructure/auth"
	"github.com/fiberops/subcore/internal/infrastructure/cache"
	"github.com/fiberops/subcore/internal/infrastructure/config"
	"github.com/fiberops/subcore/internal/infrastructure/pubsub"
	"github.com/fiberops/subcore/internal/interfaces/http/middleware"
	"github.com/fiberops/subcore/internal/shared/db"
	"github.com/fiberops/subcore/internal/shared/logger"
)

const (
	defaultCommandRateLimit  = 120
	defaultCommandRateWindow = time.Minute
)

// transitionLocker matches the provisioning use cases' locker contract.
type transitionLocker interface {
	TryAcquire(ctx context.Context, key string) (release func(), acquired bool, err error)
}

// Container holds infrastructure components, repositories, use cases and
// handlers, and wires them together. A nil redis client selects the
// in-process locker and the logging publisher.
type Container struct {
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface
	redis  *redis.Client

	txMgr           *db.TransactionManager
	settingProvider *settingUsecases.SettingProvider
	aaaClient       *aaa.Client
	publisher       connectivity.Publisher
	locker          transitionLocker

	repos *repositories
	ucs   *allUseCases
	hdlrs *allHandlers

	operatorMiddleware *middleware.OperatorMiddleware
	rateLimiter        *middleware.RateLimiter
}

func NewContainer(database *gorm.DB, redisClient *redis.Client, cfg *config.Config, log logger.Interface) *Container {
	c := &Container{
		engine: gin.New(),
		db:     database,
		cfg:    cfg,
		log:    log,
		redis:  redisClient,
	}

	// Section 1: Infrastructure - repositories, settings, AAA, locks, notifications
	c.initInfrastructure()

	// Section 2: Use cases
	c.initUseCases()

	// Section 3: Handlers and middlewares
	c.initHandlers()
	c.initMiddlewares()

	return c
}

func (c *Container) initInfrastructure() {
	c.repos = newRepositories(c.db, c.log)
	c.txMgr = db.NewTransactionManager(c.db)

	c.settingProvider = settingUsecases.NewSettingProvider(c.repos.settingRepo, c.cfg.AAA, c.log)
	c.aaaClient = aaa.NewClient(c.log)
	// The client drops its circuit breakers whenever operators change the AAA settings.
	c.settingProvider.Subscribe(c.aaaClient)

	if c.redis != nil {
		lockTTL := time.Duration(c.cfg.Provisioning.LockTTLSeconds) * time.Second
		c.locker = cache.NewRedisTransitionLocker(c.redis, lockTTL, c.log)
		c.publisher = pubsub.NewRedisConnectivityEventBus(c.redis, c.log)
		c.log.Infow("using redis for transition locks and connectivity notifications")
	} else {
		c.locker = cache.NewMemoryTransitionLocker()
		c.publisher = pubsub.NewLoggingPublisher(c.log)
		c.log.Warnw("redis disabled, transition locks are local to this process")
	}
}

func (c *Container) initMiddlewares() {
	var verifier *auth.OperatorTokenVerifier
	if secret := c.cfg.Auth.Operator.Secret; secret != "" {
		verifier = auth.NewOperatorTokenVerifier(secret)
	} else if c.cfg.Auth.Operator.Require {
		c.log.Warnw("operator tokens are required but no secret is configured, token checks are disabled")
	}
	c.operatorMiddleware = middleware.NewOperatorMiddleware(verifier, c.cfg.Auth.Operator.Require, c.log)

	if c.redis != nil {
		limit, window := defaultCommandRateLimit, defaultCommandRateWindow
		if n := c.cfg.Provisioning.CommandRateLimit; n > 0 {
			limit = n
		}
		if secs := c.cfg.Provisioning.CommandRateWindowSeconds; secs > 0 {
			window = time.Duration(secs) * time.Second
		}
		c.rateLimiter = middleware.NewRateLimiter(c.redis, limit, window, c.log)
	}
}

// Shutdown releases resources owned by the container.
func (c *Container) Shutdown() {
	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			c.log.Warnw("failed to close redis client", "error", err)
		}
	}
}

type sqlPinger struct {
	db *gorm.DB
}

func (p sqlPinger) Ping(ctx context.Context) error {
	sqlDB, err := p.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

type redisPinger struct {
	client *redis.Client
}

func (p redisPinger) Ping(ctx context.Context) error {
	return p.client.Ping(ctx).Err()
}
