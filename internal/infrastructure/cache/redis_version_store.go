package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"production_scheduler/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const defaultVersionKey = "production_scheduler:data_version"

// RedisCommands is the subset of the go-redis client used by RedisVersionStore.
type RedisCommands interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Incr(ctx context.Context, key string) *redis.IntCmd
}

// RedisVersionStore keeps the order-book data version under a single INCR key,
// shared by every process that reads the same table.
type RedisVersionStore struct {
	client RedisCommands
	key    string
	logger *zap.Logger
}

var _ interfaces.IDataVersionStore = (*RedisVersionStore)(nil)

type RedisVersionStoreOption func(*RedisVersionStore)

func WithVersionKey(key string) RedisVersionStoreOption {
	return func(s *RedisVersionStore) {
		if key != "" {
			s.key = key
		}
	}
}

func WithVersionLogger(logger *zap.Logger) RedisVersionStoreOption {
	return func(s *RedisVersionStore) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// Dial connects to addr and verifies the connection with PING.
func Dial(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", addr, err)
	}
	return client, nil
}

func NewRedisVersionStore(client RedisCommands, opts ...RedisVersionStoreOption) *RedisVersionStore {
	s := &RedisVersionStore{
		client: client,
		key:    defaultVersionKey,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Current returns "0" while the key does not exist.
func (s *RedisVersionStore) Current(ctx context.Context) (string, error) {
	v, err := s.client.Get(ctx, s.key).Result()
	if errors.Is(err, redis.Nil) {
		return "0", nil
	}
	if err != nil {
		return "", fmt.Errorf("redis get %s: %w", s.key, err)
	}
	return v, nil
}

func (s *RedisVersionStore) Bump(ctx context.Context) (string, error) {
	n, err := s.client.Incr(ctx, s.key).Result()
	if err != nil {
		return "", fmt.Errorf("redis incr %s: %w", s.key, err)
	}
	s.logger.Debug("data version bumped", zap.String("key", s.key), zap.Int64("version", n))
	return strconv.FormatInt(n, 10), nil
}
