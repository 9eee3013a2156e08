// Copyright (c) 2025, the itemd authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package item

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/itemworks/itemd/pkg/defaults"
	xerrors "github.com/itemworks/itemd/pkg/errors"
)

const (
	redisItemKeyPrefix = "item:"
	redisIndexKey      = "items:index"
	redisCounterKey    = "items:next_id"
)

// RedisStore is a Redis-backed Store implementation. Items are stored as
// JSON strings under item:<id> keys; a sorted set scored by id preserves
// insertion order (ids are monotonically increasing); the id counter lives
// in a Redis string driven by INCR.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore creates a RedisStore, verifies connectivity, and seeds the
// keyspace when it has never been initialized.
func NewRedisStore(ctx context.Context, client *redis.Client) (*RedisStore, error) {
	pingCtx, cancel := context.WithTimeout(ctx, defaults.RedisConnectTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		return nil, xerrors.Wrap(xerrors.ErrCodeUnavailable, "failed to connect to redis", err)
	}

	s := &RedisStore{client: client}

	// SetNX on the counter doubles as the "already seeded" check.
	seeded, err := client.SetNX(pingCtx, redisCounterKey, initialNextID-1, 0).Result()
	if err != nil {
		return nil, xerrors.Wrap(xerrors.ErrCodeUnavailable, "failed to initialize id counter", err)
	}
	if seeded {
		if err := s.writeSeed(pingCtx); err != nil {
			return nil, err
		}
	}

	return s, nil
}

func (s *RedisStore) writeSeed(ctx context.Context) error {
	pipe := s.client.TxPipeline()
	for _, it := range seedItems(time.Now().UTC()) {
		data, err := json.Marshal(it)
		if err != nil {
			return xerrors.Wrap(xerrors.ErrCodeInternal, "failed to marshal seed item", err)
		}
		pipe.Set(ctx, redisItemKey(it.ID), data, 0)
		pipe.ZAdd(ctx, redisIndexKey, redis.Z{Score: float64(it.ID), Member: strconv.Itoa(it.ID)})
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return xerrors.Wrap(xerrors.ErrCodeUnavailable, "failed to write seed items", err)
	}
	return nil
}

func redisItemKey(id int) string {
	return fmt.Sprintf("%s%d", redisItemKeyPrefix, id)
}

// opCtx bounds store operations that arrive without a deadline.
func opCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, defaults.RedisOperationTimeout)
}

// GetAll returns all items in insertion order.
func (s *RedisStore) GetAll(ctx context.Context) ([]Item, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	ids, err := s.client.ZRange(ctx, redisIndexKey, 0, -1).Result()
	if err != nil {
		return nil, xerrors.Wrap(xerrors.ErrCodeUnavailable, "failed to read item index", err)
	}
	if len(ids) == 0 {
		return []Item{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = redisItemKeyPrefix + id
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, xerrors.Wrap(xerrors.ErrCodeUnavailable, "failed to read items", err)
	}

	items := make([]Item, 0, len(values))
	for _, v := range values {
		data, ok := v.(string)
		if !ok {
			// Index entry without a backing key, e.g. removed concurrently.
			continue
		}
		var it Item
		if err := json.Unmarshal([]byte(data), &it); err != nil {
			return nil, xerrors.Wrap(xerrors.ErrCodeInternal, "failed to unmarshal item", err)
		}
		items = append(items, it)
	}
	return items, nil
}

// GetByID returns the item with the given id, or ErrNotFound.
func (s *RedisStore) GetByID(ctx context.Context, id int) (*Item, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	data, err := s.client.Get(ctx, redisItemKey(id)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrNotFound
		}
		return nil, xerrors.Wrap(xerrors.ErrCodeUnavailable, "failed to read item", err)
	}

	var it Item
	if err := json.Unmarshal([]byte(data), &it); err != nil {
		return nil, xerrors.Wrap(xerrors.ErrCodeInternal, "failed to unmarshal item", err)
	}
	return &it, nil
}

// Create allocates the next id via INCR and writes the item and its index
// entry in one transaction.
func (s *RedisStore) Create(ctx context.Context, req CreateRequest) (*Item, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	id, err := s.client.Incr(ctx, redisCounterKey).Result()
	if err != nil {
		return nil, xerrors.Wrap(xerrors.ErrCodeUnavailable, "failed to allocate item id", err)
	}

	it := Item{
		ID:        int(id),
		CreatedAt: time.Now().UTC(),
	}
	if req.Name != nil {
		it.Name = *req.Name
	}
	if req.Description != nil {
		it.Description = *req.Description
	}

	if err := s.write(ctx, it, true); err != nil {
		return nil, err
	}
	return &it, nil
}

func (s *RedisStore) write(ctx context.Context, it Item, index bool) error {
	data, err := json.Marshal(it)
	if err != nil {
		return xerrors.Wrap(xerrors.ErrCodeInternal, "failed to marshal item", err)
	}

	pipe := s.client.TxPipeline()
	pipe.Set(ctx, redisItemKey(it.ID), data, 0)
	if index {
		pipe.ZAdd(ctx, redisIndexKey, redis.Z{Score: float64(it.ID), Member: strconv.Itoa(it.ID)})
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return xerrors.Wrap(xerrors.ErrCodeUnavailable, "failed to write item", err)
	}
	return nil
}

// Update merges the present fields into the stored item and stamps UpdatedAt.
func (s *RedisStore) Update(ctx context.Context, id int, req UpdateRequest) (*Item, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	it, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		it.Name = *req.Name
	}
	if req.Description != nil {
		it.Description = *req.Description
	}
	now := time.Now().UTC()
	it.UpdatedAt = &now

	if err := s.write(ctx, *it, false); err != nil {
		return nil, err
	}
	return it, nil
}

// Remove deletes the item and its index entry, or returns ErrNotFound.
func (s *RedisStore) Remove(ctx context.Context, id int) error {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	pipe := s.client.TxPipeline()
	delCmd := pipe.Del(ctx, redisItemKey(id))
	pipe.ZRem(ctx, redisIndexKey, strconv.Itoa(id))
	if _, err := pipe.Exec(ctx); err != nil {
		return xerrors.Wrap(xerrors.ErrCodeUnavailable, "failed to delete item", err)
	}

	if delCmd.Val() == 0 {
		return ErrNotFound
	}
	return nil
}

// Reset drops every item and restores the seed set with the counter back
// at its initial value.
func (s *RedisStore) Reset(ctx context.Context) error {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	ids, err := s.client.ZRange(ctx, redisIndexKey, 0, -1).Result()
	if err != nil {
		return xerrors.Wrap(xerrors.ErrCodeUnavailable, "failed to read item index", err)
	}

	pipe := s.client.TxPipeline()
	for _, id := range ids {
		pipe.Del(ctx, redisItemKeyPrefix+id)
	}
	pipe.Del(ctx, redisIndexKey)
	pipe.Set(ctx, redisCounterKey, initialNextID-1, 0)
	if _, err := pipe.Exec(ctx); err != nil {
		return xerrors.Wrap(xerrors.ErrCodeUnavailable, "failed to clear items", err)
	}

	return s.writeSeed(ctx)
}
