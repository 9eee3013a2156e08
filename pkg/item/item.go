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
	"fmt"
	"time"
)

// Item is the sole domain entity: a named record with store-assigned
// identity and creation/update timestamps.
type Item struct {
	ID          int        `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
}

// CreateRequest is the payload for creating a new item. Pointer fields
// distinguish absent values from zero values.
type CreateRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// UpdateRequest is the payload for updating an existing item. Only fields
// present in the payload are merged; an id in the payload is ignored.
type UpdateRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

const (
	seedCount     = 3
	initialNextID = seedCount + 1
)

// seedItems returns the fixed records every fresh store starts with.
func seedItems(now time.Time) []Item {
	items := make([]Item, 0, seedCount)
	for i := 1; i <= seedCount; i++ {
		items = append(items, Item{
			ID:          i,
			Name:        fmt.Sprintf("Item %d", i),
			Description: fmt.Sprintf("Description for item %d", i),
			CreatedAt:   now,
		})
	}
	return items
}
