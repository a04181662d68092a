package main

import (
	"context"
	"testing"

	"production_scheduler/internal/adapter/persistence/repository"
	"production_scheduler/internal/infrastructure/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLoggerConfig(t *testing.T) {
	t.Run("environment preset", func(t *testing.T) {
		lc := loggerConfig(config.Config{Env: "production"})
		assert.Equal(t, "json", lc.Format)
		assert.Equal(t, "info", lc.Level)
	})

	t.Run("explicit overrides", func(t *testing.T) {
		lc := loggerConfig(config.Config{Env: "development", Log: config.LogConfig{Level: "warn", Format: "json", Output: "stderr"}})
		assert.Equal(t, "warn", lc.Level)
		assert.Equal(t, "json", lc.Format)
		assert.Equal(t, "stderr", lc.Output)
	})
}

func TestVersionStore(t *testing.T) {
	t.Run("none keeps pure ttl", func(t *testing.T) {
		cfg := config.Config{Cache: config.CacheConfig{VersionBackend: config.VersionBackendNone}}
		v, err := versionStore(context.Background(), cfg, nil, zap.NewNop())
		require.NoError(t, err)
		assert.Nil(t, v)
	})

	t.Run("dynamodb", func(t *testing.T) {
		cfg := config.Config{Cache: config.CacheConfig{VersionBackend: config.VersionBackendDynamoDB}}
		v, err := versionStore(context.Background(), cfg, nil, zap.NewNop())
		require.NoError(t, err)
		assert.IsType(t, &repository.MetaDynamoRepository{}, v)
	})
}
