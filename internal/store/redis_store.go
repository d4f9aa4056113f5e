package store

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/zamantopups/Mobile-Accessories/internal/apperror"
	"github.com/zamantopups/Mobile-Accessories/internal/infra"
)

// keyPrefix namespaces ledger blobs inside a possibly shared Redis.
const keyPrefix = "stockledger:"

// RedisStore persists the ledger blobs in Redis. All round-trips run
// through a circuit breaker so an outage degrades to warnings instead of
// stalling every mutation.
type RedisStore struct {
	rdb *redis.Client
	cb  *infra.CircuitBreaker
}

func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{
		rdb: rdb,
		cb:  infra.NewCircuitBreaker(infra.DefaultCBConfig()),
	}
}

func (s *RedisStore) Get(ctx context.Context, key string, dest interface{}) error {
	var data string
	var found bool
	err := s.cb.Execute(func() error {
		val, err := s.rdb.Get(ctx, keyPrefix+key).Result()
		if err == redis.Nil {
			// Missing blob is the empty default, not a backend failure.
			return nil
		}
		if err != nil {
			return err
		}
		data = val
		found = true
		return nil
	})
	if err != nil {
		return apperror.NewStore(key, err)
	}
	if !found {
		return nil
	}
	if err := json.Unmarshal([]byte(data), dest); err != nil {
		// Corrupt blob — degrade to the empty default.
		log.Warn().Str("key", key).Err(err).Msg("corrupt store blob ignored")
		return nil
	}
	return nil
}

func (s *RedisStore) Set(ctx context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return apperror.NewStore(key, err)
	}
	err = s.cb.Execute(func() error {
		return s.rdb.Set(ctx, keyPrefix+key, data, 0).Err()
	})
	if err != nil {
		return apperror.NewStore(key, err)
	}
	return nil
}

var _ Store = (*RedisStore)(nil)
