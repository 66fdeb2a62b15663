package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/fiberops/subcore/internal/infrastructure/config"
	"github.com/fiberops/subcore/internal/infrastructure/database"
	"github.com/fiberops/subcore/internal/infrastructure/migration"
	httpRouter "github.com/fiberops/subcore/internal/interfaces/http"
	"github.com/fiberops/subcore/internal/shared/biztime"
	sharedConfig "github.com/fiberops/subcore/internal/shared/config"
	"github.com/fiberops/subcore/internal/shared/logger"
)

var (
	env                string
	configPath         string
	autoMigrate        bool
	skipMigrationCheck bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the HTTP server",
		Long:  `Start the subcore provisioning API with the specified configuration.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")
	cmd.Flags().BoolVar(&autoMigrate, "auto-migrate", false, "Apply pending migrations on startup (not recommended for production)")
	cmd.Flags().BoolVar(&skipMigrationCheck, "skip-migration-check", false, "Skip migration status check on startup")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env, configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, cfg.Server.Mode); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.NewLogger()

	if err := biztime.Init(cfg.Server.Timezone); err != nil {
		return fmt.Errorf("failed to initialize business timezone: %w", err)
	}

	log.Infow("starting server",
		"environment", env,
		"mode", cfg.Server.Mode,
		"auto_migrate", autoMigrate)

	gin.SetMode(cfg.Server.Mode)
	gin.DefaultWriter = io.Discard
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, nuHandlers int) {}

	if err := database.Init(&cfg.Database, log); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	if err := handleMigrations(log); err != nil {
		return err
	}

	redisClient, err := openRedis(cmd.Context(), &cfg.Redis, log)
	if err != nil {
		return err
	}

	container := httpRouter.NewContainer(database.Get(), redisClient, cfg, log)
	router := httpRouter.NewRouter(container)
	router.SetupRoutes()
	defer router.Shutdown()

	srv := &http.Server{
		Addr:              cfg.Server.GetAddr(),
		Handler:           router.GetEngine(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return serve(cmd.Context(), srv, log)
}

// openRedis returns nil when redis is disabled. Transition locks then stay
// in-process and commands are not rate limited.
func openRedis(ctx context.Context, cfg *sharedConfig.RedisConfig, log logger.Interface) (*redis.Client, error) {
	if !cfg.Enabled {
		log.Warnw("redis disabled, using in-process transition locks and no rate limiting")
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.GetAddr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.GetAddr(), err)
	}
	log.Infow("redis connected", "addr", cfg.GetAddr())
	return client, nil
}

// serve runs srv until ctx is cancelled, then drains in-flight requests.
func serve(ctx context.Context, srv *http.Server, log logger.Interface) error {
	errCh := make(chan error, 1)
	go func() {
		log.Infow("listening", "address", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server stopped: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Infow("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	log.Infow("server stopped")
	return nil
}

// handleMigrations applies pending migrations with --auto-migrate and
// otherwise only reports the schema version.
func handleMigrations(log logger.Interface) error {
	if skipMigrationCheck {
		log.Infow("migration check skipped")
		return nil
	}

	sqlDB, err := database.Get().DB()
	if err != nil {
		return fmt.Errorf("failed to get sql db: %w", err)
	}
	migrator := migration.NewMigrator(sqlDB, log)

	if !autoMigrate {
		version, err := migrator.Version()
		if err != nil {
			log.Warnw("could not read schema version", "error", err)
			return nil
		}
		log.Infow("schema version", "version", version)
		return nil
	}

	if env == "production" {
		log.Warnw("applying migrations at startup in production")
	}
	if err := migrator.Up(); err != nil {
		return fmt.Errorf("auto-migration failed: %w", err)
	}
	return nil
}
