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
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/itemworks/itemd/pkg/serializer"
)

// Response messages shared with the HTTP contract.
const (
	msgInvalidID    = "Invalid ID format"
	msgItemNotFound = "Item not found"
	msgItemDeleted  = "Item deleted successfully"
)

// DeleteResponse is the body returned by a successful delete.
type DeleteResponse struct {
	Message string `json:"message"`
}

// Handler translates HTTP requests into Store calls and Store results into
// HTTP responses. It holds no state beyond the store reference.
type Handler struct {
	store Store
}

// NewHandler creates a new item Handler backed by the given store.
func NewHandler(store Store) *Handler {
	return &Handler{store: store}
}

// parseID extracts and parses the {id} path variable. The path value is
// rejected before the store is consulted when it is not a base-10 integer.
func parseID(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		return 0, false
	}
	return id, true
}

// List handles GET /api/items.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.store.GetAll(r.Context())
	if err != nil {
		h.respondStoreError(w, "list", err)
		return
	}

	itemsTotal.Set(float64(len(items)))
	itemOperations.WithLabelValues("list", outcomeOK).Inc()
	serializer.RespondJSON(w, http.StatusOK, items)
}

// Get handles GET /api/items/{id}.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		itemOperations.WithLabelValues("get", outcomeInvalid).Inc()
		serializer.RespondError(w, http.StatusBadRequest, msgInvalidID)
		return
	}

	it, err := h.store.GetByID(r.Context(), id)
	if err != nil {
		h.respondStoreError(w, "get", err)
		return
	}

	itemOperations.WithLabelValues("get", outcomeOK).Inc()
	serializer.RespondJSON(w, http.StatusOK, it)
}

// Create handles POST /api/items.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateRequest
	if err := decodeBody(r.Body, &req); err != nil {
		itemOperations.WithLabelValues("create", outcomeInvalid).Inc()
		serializer.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := validateCreate(req); err != nil {
		itemOperations.WithLabelValues("create", outcomeInvalid).Inc()
		serializer.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	it, err := h.store.Create(r.Context(), req)
	if err != nil {
		h.respondStoreError(w, "create", err)
		return
	}

	slog.Debug("item created", "id", it.ID, "name", it.Name)
	h.refreshItemCount(r)
	itemOperations.WithLabelValues("create", outcomeOK).Inc()
	serializer.RespondJSON(w, http.StatusCreated, it)
}

// Update handles PUT /api/items/{id}.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		itemOperations.WithLabelValues("update", outcomeInvalid).Inc()
		serializer.RespondError(w, http.StatusBadRequest, msgInvalidID)
		return
	}

	var req UpdateRequest
	if err := decodeBody(r.Body, &req); err != nil {
		itemOperations.WithLabelValues("update", outcomeInvalid).Inc()
		serializer.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := validateUpdate(req); err != nil {
		itemOperations.WithLabelValues("update", outcomeInvalid).Inc()
		serializer.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	it, err := h.store.Update(r.Context(), id, req)
	if err != nil {
		h.respondStoreError(w, "update", err)
		return
	}

	slog.Debug("item updated", "id", it.ID)
	itemOperations.WithLabelValues("update", outcomeOK).Inc()
	serializer.RespondJSON(w, http.StatusOK, it)
}

// Delete handles DELETE /api/items/{id}.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		itemOperations.WithLabelValues("delete", outcomeInvalid).Inc()
		serializer.RespondError(w, http.StatusBadRequest, msgInvalidID)
		return
	}

	if err := h.store.Remove(r.Context(), id); err != nil {
		h.respondStoreError(w, "delete", err)
		return
	}

	slog.Debug("item deleted", "id", id)
	h.refreshItemCount(r)
	itemOperations.WithLabelValues("delete", outcomeOK).Inc()
	serializer.RespondJSON(w, http.StatusOK, DeleteResponse{Message: msgItemDeleted})
}

// respondStoreError maps a store failure onto the HTTP contract: ErrNotFound
// is an expected outcome (404), anything else is a fault (500).
func (h *Handler) respondStoreError(w http.ResponseWriter, op string, err error) {
	if errors.Is(err, ErrNotFound) {
		itemOperations.WithLabelValues(op, outcomeNotFound).Inc()
		serializer.RespondError(w, http.StatusNotFound, msgItemNotFound)
		return
	}

	slog.Error("store operation failed", "operation", op, "error", err)
	itemOperations.WithLabelValues(op, outcomeError).Inc()
	serializer.RespondInternalError(w, err)
}

// refreshItemCount updates the items gauge after a mutation. Failures only
// cost gauge freshness, never the request.
func (h *Handler) refreshItemCount(r *http.Request) {
	items, err := h.store.GetAll(r.Context())
	if err != nil {
		return
	}
	itemsTotal.Set(float64(len(items)))
}
