// SPDX-License-Identifier: GPL-3.0-or-later
package liststore

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Redis key prefix for list properties
const redisKeyPrefix = "sweeper:property:"

// RedisPropertyStore implements domain.PropertyStore on Redis so multiple
// hosts can share one set of lists.
type RedisPropertyStore struct {
	client *redis.Client
}

func NewRedisPropertyStore(url string) (*RedisPropertyStore, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("could not parse redis url: %w", err)
	}

	client := redis.NewClient(opts)
	err = client.Ping(context.Background()).Err()
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("could not ping redis: %w", err)
	}

	return &RedisPropertyStore{client: client}, nil
}

func (r *RedisPropertyStore) GetProperty(key string) (string, bool, error) {
	value, err := r.client.Get(context.Background(), redisKeyPrefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("could not get property from redis: %w", err)
	}

	return value, true, nil
}

func (r *RedisPropertyStore) SetProperty(key, value string) error {
	err := r.client.Set(context.Background(), redisKeyPrefix+key, value, 0).Err()
	if err != nil {
		return fmt.Errorf("could not set property in redis: %w", err)
	}

	return nil
}

func (r *RedisPropertyStore) Close() error {
	return r.client.Close()
}
