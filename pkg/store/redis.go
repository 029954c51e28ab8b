// Copyright (C) 2026 FedForum Project
//
// This file is part of fedcore-go.
//
// fedcore-go is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// fedcore-go is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with fedcore-go.  If not, see <https://www.gnu.org/licenses/>.

package store

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisStore implements ObjectStore on a Redis server or cluster. Hashes
// map to Redis hashes, sorted sets to ZSETs and counters to INCR keys, so
// the persisted layout matches what the rest of the platform reads.
type RedisStore struct {
	client *redis.Client
}

var _ ObjectStore = (*RedisStore)(nil)

// NewRedisStore wraps an existing go-redis client. The caller owns the
// client's lifecycle.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) SetObject(ctx context.Context, key string, fields map[string]string) error {
	if len(fields) == 0 {
		return nil
	}
	if err := s.client.HSet(ctx, key, fields).Err(); err != nil {
		return fmt.Errorf("redis hset %s: %w", key, err)
	}
	return nil
}

func (s *RedisStore) GetObject(ctx context.Context, key string) (map[string]string, error) {
	obj, err := s.client.HGetAll(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("redis hgetall %s: %w", key, err)
	}
	return obj, nil
}

func (s *RedisStore) ObjectFieldsExist(ctx context.Context, key string, fields []string) (bool, error) {
	pipe := s.client.Pipeline()
	checks := make([]*redis.BoolCmd, len(fields))
	for i, field := range fields {
		checks[i] = pipe.HExists(ctx, key, field)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("redis hexists %s: %w", key, err)
	}
	for _, check := range checks {
		if !check.Val() {
			return false, nil
		}
	}
	return true, nil
}

func (s *RedisStore) SortedSetAdd(ctx context.Context, set string, score float64, member string) error {
	err := s.client.ZAdd(ctx, set, redis.Z{Score: score, Member: member}).Err()
	if err != nil {
		return fmt.Errorf("redis zadd %s: %w", set, err)
	}
	return nil
}

func (s *RedisStore) SortedSetMembers(ctx context.Context, set string) ([]string, error) {
	members, err := s.client.ZRange(ctx, set, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("redis zrange %s: %w", set, err)
	}
	return members, nil
}

func (s *RedisStore) IncrementCounters(ctx context.Context, keys []string) error {
	pipe := s.client.Pipeline()
	for _, key := range keys {
		pipe.Incr(ctx, key)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("redis incr: %w", err)
	}
	return nil
}
