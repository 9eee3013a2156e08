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
	"errors"
	"sync"
	"time"
)

// ErrNotFound is returned when an item is not found in the store.
// Not-found is an expected outcome, not a system fault; callers map it to
// 404 while any other store error maps to 500.
var ErrNotFound = errors.New("item not found")

// Store is the capability set the HTTP layer depends on. The in-memory
// implementation is the default; a Redis-backed one can be swapped in
// without changing callers.
type Store interface {
	// GetAll returns all items in insertion order.
	GetAll(ctx context.Context) ([]Item, error)
	// GetByID returns the item with the given id, or ErrNotFound.
	GetByID(ctx context.Context, id int) (*Item, error)
	// Create allocates the next id, stamps CreatedAt, and appends the item.
	Create(ctx context.Context, req CreateRequest) (*Item, error)
	// Update merges the fields present in req into the existing item and
	// stamps UpdatedAt. The id never changes. Returns ErrNotFound when no
	// item has the given id.
	Update(ctx context.Context, id int, req UpdateRequest) (*Item, error)
	// Remove deletes the item with the given id, or returns ErrNotFound.
	// Remaining item identities are unaffected; ids are never reused.
	Remove(ctx context.Context, id int) error
	// Reset discards all items and restores the fixed seed set with the
	// id counter back at its initial value. Exists for test isolation.
	Reset(ctx context.Context) error
}

// MemoryStore is the in-memory Store implementation: an ordered slice
// guarded by a mutex. Handlers run on parallel goroutines, so every access
// to the slice and the id counter holds the lock.
type MemoryStore struct {
	mu     sync.RWMutex
	items  []Item
	nextID int
}

// NewMemoryStore creates a MemoryStore populated with the seed items.
func NewMemoryStore() *MemoryStore {
	s := &MemoryStore{}
	s.seed()
	return s
}

func (s *MemoryStore) seed() {
	s.items = seedItems(time.Now().UTC())
	s.nextID = initialNextID
}

// GetAll returns a copy of all items in insertion order.
func (s *MemoryStore) GetAll(_ context.Context) ([]Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out, nil
}

// GetByID returns the item with the given id, or ErrNotFound.
func (s *MemoryStore) GetByID(_ context.Context, id int) (*Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.items {
		if s.items[i].ID == id {
			found := s.items[i]
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

// Create allocates the next id and appends the new item.
func (s *MemoryStore) Create(_ context.Context, req CreateRequest) (*Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	it := Item{
		ID:        s.nextID,
		CreatedAt: time.Now().UTC(),
	}
	if req.Name != nil {
		it.Name = *req.Name
	}
	if req.Description != nil {
		it.Description = *req.Description
	}
	s.nextID++
	s.items = append(s.items, it)

	created := it
	return &created, nil
}

// Update merges the present fields into the stored item in place and
// stamps UpdatedAt. An empty payload still stamps UpdatedAt (a "touch").
func (s *MemoryStore) Update(_ context.Context, id int, req UpdateRequest) (*Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID != id {
			continue
		}
		if req.Name != nil {
			s.items[i].Name = *req.Name
		}
		if req.Description != nil {
			s.items[i].Description = *req.Description
		}
		now := time.Now().UTC()
		s.items[i].UpdatedAt = &now

		updated := s.items[i]
		return &updated, nil
	}
	return nil, ErrNotFound
}

// Remove deletes the item with the given id. The id counter is unchanged,
// so deleted ids are never reused.
func (s *MemoryStore) Remove(_ context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// Reset restores the seed items and the initial id counter.
func (s *MemoryStore) Reset(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seed()
	return nil
}
