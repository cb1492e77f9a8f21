package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/kirim-labs/invoice-service/internal/config"
	"github.com/kirim-labs/invoice-service/internal/models"
)

const redisOpTimeout = 5 * time.Second

// RedisStore keeps the state blob under one redis key.
type RedisStore struct {
	client *redis.Client
	key    string
	logger *logrus.Logger
}

// NewRedisStore connects to redis and verifies the connection.
func NewRedisStore(cfg *config.Config, logger *logrus.Logger) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.GetRedisAddr(),
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 2,
		MaxRetries:   3,
	})

	ctx, cancel := context.WithTimeout(context.Background(), redisOpTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("error pinging redis: %w", err)
	}

	return &RedisStore{client: client, key: cfg.Storage.Key, logger: logger}, nil
}

// Load reads the state key. A missing key or malformed payload yields an
// empty default state.
func (s *RedisStore) Load() (*models.AppState, error) {
	ctx, cancel := context.WithTimeout(context.Background(), redisOpTimeout)
	defer cancel()

	data, err := s.client.Get(ctx, s.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return models.NewAppState(), nil
		}
		return nil, fmt.Errorf("error reading state from redis: %w", err)
	}

	state := models.NewAppState()
	if err := json.Unmarshal(data, state); err != nil {
		s.logger.WithError(err).WithField("key", s.key).Warn("Malformed state in redis, starting from empty state")
		return models.NewAppState(), nil
	}
	return state, nil
}

// Save replaces the state key with the serialized state. The key has no
// TTL; the record lives until overwritten.
func (s *RedisStore) Save(state *models.AppState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("error encoding state: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), redisOpTimeout)
	defer cancel()

	if err := s.client.Set(ctx, s.key, data, 0).Err(); err != nil {
		return fmt.Errorf("error writing state to redis: %w", err)
	}
	return nil
}

// Close releases the redis connection.
func (s *RedisStore) Close() error {
	return s.client.Close()
}
