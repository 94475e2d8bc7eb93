package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"prequal-reporting-api/internal/cache"
	"prequal-reporting-api/internal/config"
	"prequal-reporting-api/internal/controller"
	"prequal-reporting-api/internal/repo"
	"prequal-reporting-api/internal/service"
	"prequal-reporting-api/migrations"
	"prequal-reporting-api/pkg/http_server"
	"prequal-reporting-api/pkg/postgres"

	"github.com/golang-migrate/migrate/v4/database"
	pgmigrate "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/labstack/echo"
	"go.uber.org/zap"
)

func connect(cfg *config.Config, logger *zap.Logger) (*postgres.Postgres, error) {
	logger.Info("connecting database")
	postgresDB, err := postgres.NewDB(cfg.PostgresConn)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	return postgresDB, nil
}

func migrationDriver(postgresDB *postgres.Postgres, cfg *config.Config) (database.Driver, error) {
	driver, err := pgmigrate.WithInstance(postgresDB.Database, &pgmigrate.Config{DatabaseName: cfg.PostgresDatabase})
	if err != nil {
		return nil, fmt.Errorf("create migration driver: %w", err)
	}

	return driver, nil
}

// Migrate applies (steps == 0) or rolls back (steps > 0) schema migrations.
func Migrate(cfg *config.Config, logger *zap.Logger, steps int) error {
	postgresDB, err := connect(cfg, logger)
	if err != nil {
		return err
	}
	defer postgresDB.Close()

	driver, err := migrationDriver(postgresDB, cfg)
	if err != nil {
		return err
	}

	if steps > 0 {
		logger.Info("rolling back migrations", zap.Int("steps", steps))
		return migrations.Down(driver, cfg.PostgresDatabase, steps)
	}

	logger.Info("running migrations")
	return migrations.Up(driver, cfg.PostgresDatabase)
}

func MigrationVersion(cfg *config.Config, logger *zap.Logger) (uint, bool, error) {
	postgresDB, err := connect(cfg, logger)
	if err != nil {
		return 0, false, err
	}
	defer postgresDB.Close()

	driver, err := migrationDriver(postgresDB, cfg)
	if err != nil {
		return 0, false, err
	}

	return migrations.Version(driver, cfg.PostgresDatabase)
}

func schemaCache(ctx context.Context, cfg *config.Config, logger *zap.Logger) (service.SchemaCache, func()) {
	if !cfg.CacheEnabled() {
		logger.Info("schema cache disabled")
		return nil, func() {}
	}

	client, err := cache.Connect(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		logger.Warn("schema cache unavailable, serving from database", zap.Error(err))
		return nil, func() {}
	}

	logger.Info("schema cache enabled", zap.String("addr", cfg.RedisAddr), zap.Duration("ttl", cfg.SchemaCacheTTL))
	return cache.NewRedisCache(client, cfg.SchemaCacheTTL), func() { _ = client.Close() }
}

// Run serves the API until ctx is cancelled, a termination signal arrives or
// the listener fails.
func Run(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	postgresDB, err := connect(cfg, logger)
	if err != nil {
		return err
	}
	defer postgresDB.Close()

	if err := postgresDB.Ping(ctx); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}

	if cfg.RunMigrations {
		driver, err := migrationDriver(postgresDB, cfg)
		if err != nil {
			return err
		}
		logger.Info("running migrations")
		if err := migrations.Up(driver, cfg.PostgresDatabase); err != nil {
			return err
		}
	}

	sc, closeCache := schemaCache(ctx, cfg, logger)
	defer closeCache()

	repositories := repo.NewRepositories(postgresDB)
	services := service.NewServices(repositories, service.Options{SchemaCache: sc, Logger: logger})
	handler := echo.New()
	handler.HideBanner = true

	logger.Info("setup routes")
	controller.SetupRoutesHandlers(handler, services, controller.RouterConfig{
		AllowOrigins: cfg.CORSAllowOrigins,
		Logger:       logger,
	})

	logger.Info("starting server", zap.String("address", cfg.ServerAddress))
	httpServer := http_server.New(handler, cfg.ServerAddress,
		http_server.WithShutdownTimeout(cfg.ShutdownTimeout),
		http_server.WithReadHeaderTimeout(cfg.ReadHeaderTimeout),
	)

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(interrupt)

	select {
	case s := <-interrupt:
		logger.Info("got signal", zap.String("signal", s.String()))
	case <-ctx.Done():
		logger.Info("context cancelled")
	case err := <-httpServer.Notify():
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
	}

	logger.Info("shutting down")
	if err := httpServer.Shutdown(); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	logger.Info("successful shutdown")

	return nil
}
