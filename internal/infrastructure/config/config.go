package config

import (
	"fmt"
	"strings"
	"time"

	"production_scheduler/internal/infrastructure/identity"

	"github.com/caarlos0/env/v11"
)

// Version backends for the cross-process data-version probe.
const (
	VersionBackendNone     = "none"
	VersionBackendDynamoDB = "dynamodb"
	VersionBackendRedis    = "redis"
)

type Config struct {
	Env  string `env:"APP_ENV" envDefault:"development"`
	Port int    `env:"PORT" envDefault:"8080"`

	Log   LogConfig `envPrefix:"LOG_"`
	AWS   AWSConfig
	Cache CacheConfig
	Redis RedisConfig `envPrefix:"REDIS_"`
	Auth  AuthConfig
}

type LogConfig struct {
	Level  string `env:"LEVEL"`
	Format string `env:"FORMAT"`
	Output string `env:"OUTPUT" envDefault:"stdout"`
}

// AWSConfig keeps the variable names the local DynamoDB setup already uses.
type AWSConfig struct {
	Region           string `env:"AWS_REGION" envDefault:"us-east-1"`
	AccessKeyID      string `env:"AWS_ACCESS_KEY_ID" envDefault:"local"`
	SecretAccessKey  string `env:"AWS_SECRET_ACCESS_KEY" envDefault:"local"`
	DynamoDBEndpoint string `env:"DYNAMODB_ENDPOINT"`
	OrdersTable      string `env:"ORDERS_TABLE" envDefault:"orders"`
	MetaTable        string `env:"META_TABLE" envDefault:"app_meta"`
}

type CacheConfig struct {
	OrdersTTL      time.Duration `env:"ORDER_CACHE_TTL" envDefault:"300s"`
	VersionBackend string        `env:"DATA_VERSION_BACKEND" envDefault:"none"`
}

type RedisConfig struct {
	Addr       string `env:"ADDR" envDefault:"localhost:6379"`
	Password   string `env:"PASSWORD"`
	DB         int    `env:"DB" envDefault:"0"`
	VersionKey string `env:"VERSION_KEY" envDefault:"production_scheduler:data_version"`
}

type AuthConfig struct {
	SessionSecret     string                    `env:"SESSION_SECRET,required,notEmpty"`
	SessionTTL        time.Duration             `env:"SESSION_TTL" envDefault:"12h"`
	AdminUsername     string                    `env:"ADMIN_USERNAME" envDefault:"admin"`
	AdminPasswordHash string                    `env:"ADMIN_PASSWORD_HASH"`
	Customers         identity.CustomerAccounts `env:"CUSTOMER_ACCOUNTS"`
	LinkTokens        identity.LinkTokens       `env:"CUSTOMER_TOKENS"`
}

// Load reads the environment (after godotenv has populated it) and validates the result.
func Load() (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("PORT out of range: %d", c.Port)
	}
	if c.Cache.OrdersTTL <= 0 {
		return fmt.Errorf("ORDER_CACHE_TTL must be positive, got %s", c.Cache.OrdersTTL)
	}
	if c.Auth.SessionTTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be positive, got %s", c.Auth.SessionTTL)
	}
	c.Cache.VersionBackend = strings.ToLower(strings.TrimSpace(c.Cache.VersionBackend))
	switch c.Cache.VersionBackend {
	case VersionBackendNone, VersionBackendDynamoDB, VersionBackendRedis:
	default:
		return fmt.Errorf("DATA_VERSION_BACKEND must be one of none, dynamodb, redis: got %q", c.Cache.VersionBackend)
	}
	return nil
}

func (c Config) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}

// Admin returns the operator account; it is disabled while no hash is configured.
func (c Config) Admin() identity.AdminAccount {
	return identity.AdminAccount{
		Username:     c.Auth.AdminUsername,
		PasswordHash: c.Auth.AdminPasswordHash,
	}
}
