package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

type RedisSnapshotRepository struct {
	Client redis.UniversalClient
	Prefix string
}

func NewRedisSnapshotRepository(client redis.UniversalClient, prefix string) *RedisSnapshotRepository {
	if prefix == "" {
		prefix = "wallet"
	}
	return &RedisSnapshotRepository{
		Client: client,
		Prefix: prefix,
	}
}

func (r *RedisSnapshotRepository) Key(slot string) string {
	return r.Prefix + ":" + slot
}

func (r *RedisSnapshotRepository) Load(ctx context.Context, slot string, dst any) (bool, error) {
	payload, err := r.Client.Get(ctx, r.Key(slot)).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(payload, dst); err != nil {
		return true, fmt.Errorf("%w: %s: %v", ErrCorruptSnapshot, slot, err)
	}
	return true, nil
}

func (r *RedisSnapshotRepository) Save(ctx context.Context, slot string, src any) error {
	payload, err := json.Marshal(src)
	if err != nil {
		return err
	}
	return r.Client.Set(ctx, r.Key(slot), payload, 0).Err()
}
