package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/seat-booking/internal/model"
)

// kv is the slice of the go-redis client the repository uses.
type kv interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// RedisRepository keeps each record list as one JSON string value.
type RedisRepository struct {
	rdb    kv
	prefix string
}

// NewRedisRepository namespaces keys with prefix (e.g. "ledger").
func NewRedisRepository(rdb *redis.Client, prefix string) *RedisRepository {
	return &RedisRepository{rdb: rdb, prefix: prefix}
}

func (r *RedisRepository) key(k string) string {
	if r.prefix == "" {
		return k
	}
	return r.prefix + ":" + k
}

func (r *RedisRepository) Load(ctx context.Context, key string) ([]model.Booking, error) {
	bs, err := r.rdb.Get(ctx, r.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis get: %w", err)
	}
	var records []model.Booking
	if err := json.Unmarshal(bs, &records); err != nil {
		return nil, fmt.Errorf("decode %s: %w", key, err)
	}
	return records, nil
}

func (r *RedisRepository) Save(ctx context.Context, key string, records []model.Booking) error {
	if records == nil {
		records = []model.Booking{}
	}
	payload, err := json.Marshal(records)
	if err != nil {
		return err
	}
	if err := r.rdb.Set(ctx, r.key(key), payload, 0).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}
