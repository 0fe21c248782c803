package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"ideanest/config"
	"ideanest/models"

	"github.com/redis/go-redis/v9"
)

// ErrIdeaNotFound is returned when no record exists under the requested id.
var ErrIdeaNotFound = errors.New("idea not found")

// IdeaStore persists evaluated ideas in Redis, keyed by their generated id.
// Writes are best-effort from the caller's point of view: a failed Save is
// logged and swallowed, never surfaced to the user.
type IdeaStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewIdeaStore builds a store from config.
func NewIdeaStore(cfg *config.Config) *IdeaStore {
	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.Redis.Address,
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})
	return &IdeaStore{client: rdb}
}

// NewIdeaStoreFromClient wraps an existing client, used by tests.
func NewIdeaStoreFromClient(client *redis.Client, ttl time.Duration) *IdeaStore {
	return &IdeaStore{client: client, ttl: ttl}
}

// Ping tests the Redis connection.
func (s *IdeaStore) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

// Save stores an idea record under its id as a JSON value.
func (s *IdeaStore) Save(ctx context.Context, id string, record models.IdeaRecord) error {
	payload, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal idea record: %w", err)
	}
	if err := s.client.Set(ctx, id, payload, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store idea %s: %w", id, err)
	}
	return nil
}

// Get loads an idea record by id.
func (s *IdeaStore) Get(ctx context.Context, id string) (models.IdeaRecord, error) {
	var record models.IdeaRecord
	payload, err := s.client.Get(ctx, id).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return record, ErrIdeaNotFound
		}
		return record, fmt.Errorf("failed to load idea %s: %w", id, err)
	}
	if err := json.Unmarshal([]byte(payload), &record); err != nil {
		return record, fmt.Errorf("failed to unmarshal idea %s: %w", id, err)
	}
	return record, nil
}

// Close closes the underlying connection.
func (s *IdeaStore) Close() error {
	if s.client != nil {
		return s.client.Close()
	}
	return nil
}
