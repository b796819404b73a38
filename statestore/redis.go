package statestore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// NewRedis creates a store that keeps the hidden-categories set in a single Redis string key. This is the backend
// for deployments where several catalog views of the same user session share the set; concurrent toggles resolve
// last-write-wins, which is acceptable for a single-user preference.
func NewRedis(client *redis.Client, key string) Store {
	return &redisStore{
		client: client,
		key:    key,
	}
}

type redisStore struct {
	client *redis.Client
	key    string
}

func (s *redisStore) Load(ctx context.Context) ([]string, error) {
	value, err := s.client.Get(ctx, s.key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to read state key %s (%w)", s.key, err)
	}
	var categories []string
	if err := json.Unmarshal([]byte(value), &categories); err != nil {
		return nil, fmt.Errorf("failed to decode state key %s (%w)", s.key, err)
	}
	return categories, nil
}

func (s *redisStore) Save(ctx context.Context, categories []string) error {
	if categories == nil {
		categories = []string{}
	}
	contents, err := json.Marshal(categories)
	if err != nil {
		return fmt.Errorf("failed to encode state (%w)", err)
	}
	if err := s.client.Set(ctx, s.key, contents, 0).Err(); err != nil {
		return fmt.Errorf("failed to write state key %s (%w)", s.key, err)
	}
	return nil
}
