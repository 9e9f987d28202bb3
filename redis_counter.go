package pluralize

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisCounterStore keeps join counts in Redis so multiple servers can
// share them. Counts live under "<prefix><playerID>".
type RedisCounterStore struct {
	client    redis.UniversalClient
	keyPrefix string
}

var _ CounterStore = &RedisCounterStore{}

const defaultRedisKeyPrefix = "pluralize:joins:"

type RedisCounterOption func(*RedisCounterStore)

func WithRedisKeyPrefix(prefix string) RedisCounterOption {
	return func(s *RedisCounterStore) {
		if prefix != "" {
			s.keyPrefix = prefix
		}
	}
}

func NewRedisCounterStore(client redis.UniversalClient, opts ...RedisCounterOption) (*RedisCounterStore, error) {
	if client == nil {
		return nil, errors.New("pluralize: redis counter store requires a client")
	}

	store := &RedisCounterStore{
		client:    client,
		keyPrefix: defaultRedisKeyPrefix,
	}

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(store)
	}

	return store, nil
}

func (s *RedisCounterStore) Increment(ctx context.Context, playerID string) (int64, error) {
	count, err := s.client.Incr(ctx, s.key(playerID)).Result()
	if err != nil {
		return 0, fmt.Errorf("pluralize: increment join count for %s: %w", playerID, err)
	}
	return count, nil
}

func (s *RedisCounterStore) Count(ctx context.Context, playerID string) (int64, error) {
	count, err := s.client.Get(ctx, s.key(playerID)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("pluralize: read join count for %s: %w", playerID, err)
	}
	return count, nil
}

func (s *RedisCounterStore) key(playerID string) string {
	return s.keyPrefix + playerID
}
