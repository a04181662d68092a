package main

import (
	"context"
	"fmt"
	"os"

	"production_scheduler/internal/adapter/export"
	"production_scheduler/internal/adapter/http/routes"
	"production_scheduler/internal/adapter/persistence/repository"
	"production_scheduler/internal/domain/status"
	"production_scheduler/internal/infrastructure/cache"
	"production_scheduler/internal/infrastructure/config"
	"production_scheduler/internal/infrastructure/database"
	"production_scheduler/internal/infrastructure/identity"
	"production_scheduler/internal/infrastructure/logger"
	"production_scheduler/internal/usecase"
	"production_scheduler/internal/usecase/interfaces"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

// @title           Production Scheduler API
// @version         1.0
// @description     Customer order-book portal (calendar, table, export, print) and operator console backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the session token.

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "production-scheduler: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if err := status.Validate(); err != nil {
		return fmt.Errorf("status table: %w", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log, err := logger.New(loggerConfig(cfg))
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	ctx := context.Background()

	ddb, err := database.ConnectDynamoDB(ctx, cfg.AWS, log)
	if err != nil {
		return err
	}

	versions, err := versionStore(ctx, cfg, ddb, log)
	if err != nil {
		return err
	}

	opts := []repository.CachedOrderRepositoryOption{
		repository.WithTTL(cfg.Cache.OrdersTTL),
		repository.WithLogger(log.Named("orders")),
	}
	if versions != nil {
		opts = append(opts, repository.WithVersionStore(versions))
	}
	orders := repository.NewCachedOrderRepository(repository.NewOrderDynamoRepository(ddb, cfg.AWS.OrdersTable), opts...)

	sessions, err := identity.NewSessionIssuer(cfg.Auth.SessionSecret, cfg.Auth.SessionTTL)
	if err != nil {
		return err
	}
	directory := identity.NewDirectory(cfg.Auth.Customers, cfg.Auth.LinkTokens, cfg.Admin())
	if cfg.Auth.AdminPasswordHash == "" {
		log.Warn("ADMIN_PASSWORD_HASH is empty; admin login is disabled")
	}

	normalizer := status.Default()
	router := routes.NewRouter(routes.Dependencies{
		Auth:   usecase.NewAuthUseCase(directory, sessions, log.Named("auth")),
		Portal: usecase.NewPortalUseCase(orders, export.Renderer{}, normalizer, log.Named("portal")),
		Admin:  usecase.NewAdminUseCase(orders, normalizer, log.Named("admin")),
		Logger: log,
	})

	log.Info("production scheduler configured",
		zap.String("env", cfg.Env),
		zap.Duration("order_cache_ttl", cfg.Cache.OrdersTTL),
		zap.String("data_version_backend", cfg.Cache.VersionBackend),
		zap.Int("customer_accounts", len(cfg.Auth.Customers)),
		zap.Int("link_tokens", len(cfg.Auth.LinkTokens)))

	return routes.Run(router, cfg.Port, log)
}

// loggerConfig starts from the environment preset and applies explicit LOG_* overrides.
func loggerConfig(cfg config.Config) logger.Config {
	lc := logger.ConfigForEnvironment(cfg.Env)
	if cfg.Log.Level != "" {
		lc.Level = cfg.Log.Level
	}
	if cfg.Log.Format != "" {
		lc.Format = cfg.Log.Format
	}
	if cfg.Log.Output != "" {
		lc.Output = cfg.Log.Output
	}
	return lc
}

func versionStore(ctx context.Context, cfg config.Config, ddb repository.DynamoDBAPI, log *zap.Logger) (interfaces.IDataVersionStore, error) {
	switch cfg.Cache.VersionBackend {
	case config.VersionBackendDynamoDB:
		return repository.NewMetaDynamoRepository(ddb, cfg.AWS.MetaTable), nil
	case config.VersionBackendRedis:
		client, err := cache.Dial(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			return nil, err
		}
		return cache.NewRedisVersionStore(client,
			cache.WithVersionKey(cfg.Redis.VersionKey),
			cache.WithVersionLogger(log.Named("version"))), nil
	default:
		return nil, nil
	}
}
