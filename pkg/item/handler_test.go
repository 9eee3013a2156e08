package item

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itemworks/itemd/pkg/serializer"
)

// newTestRouter mounts the handler the same way pkg/api does.
func newTestRouter(h *Handler) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/api/items", h.List).Methods(http.MethodGet)
	r.HandleFunc("/api/items", h.Create).Methods(http.MethodPost)
	r.HandleFunc("/api/items/{id}", h.Get).Methods(http.MethodGet)
	r.HandleFunc("/api/items/{id}", h.Update).Methods(http.MethodPut)
	r.HandleFunc("/api/items/{id}", h.Delete).Methods(http.MethodDelete)
	return r
}

func doRequest(t *testing.T, r *mux.Router, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeItem(t *testing.T, w *httptest.ResponseRecorder) Item {
	t.Helper()
	var it Item
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &it))
	return it
}

func decodeErrorBody(t *testing.T, w *httptest.ResponseRecorder) serializer.ErrorBody {
	t.Helper()
	var body serializer.ErrorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestHandlerList(t *testing.T) {
	router := newTestRouter(NewHandler(NewMemoryStore()))

	w := doRequest(t, router, http.MethodGet, "/api/items", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var items []Item
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	assert.Len(t, items, 3)
}

func TestHandlerGet(t *testing.T) {
	router := newTestRouter(NewHandler(NewMemoryStore()))

	w := doRequest(t, router, http.MethodGet, "/api/items/1", "")

	assert.Equal(t, http.StatusOK, w.Code)
	it := decodeItem(t, w)
	assert.Equal(t, 1, it.ID)
	assert.Equal(t, "Item 1", it.Name)
}

func TestHandlerInvalidIDFormat(t *testing.T) {
	router := newTestRouter(NewHandler(NewMemoryStore()))

	tests := []struct {
		method string
		body   string
	}{
		{method: http.MethodGet},
		{method: http.MethodPut, body: `{"name":"Y"}`},
		{method: http.MethodDelete},
	}

	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			w := doRequest(t, router, tt.method, "/api/items/abc", tt.body)

			assert.Equal(t, http.StatusBadRequest, w.Code, "non-numeric id must be a 400, not 404/500")
			assert.Equal(t, "Invalid ID format", decodeErrorBody(t, w).Error)
		})
	}
}

func TestHandlerNotFound(t *testing.T) {
	router := newTestRouter(NewHandler(NewMemoryStore()))

	tests := []struct {
		method string
		body   string
	}{
		{method: http.MethodGet},
		{method: http.MethodPut, body: `{"name":"Y"}`},
		{method: http.MethodDelete},
	}

	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			w := doRequest(t, router, tt.method, "/api/items/999", tt.body)

			assert.Equal(t, http.StatusNotFound, w.Code)
			assert.Equal(t, "Item not found", decodeErrorBody(t, w).Error)
		})
	}
}

func TestHandlerCreate(t *testing.T) {
	router := newTestRouter(NewHandler(NewMemoryStore()))

	w := doRequest(t, router, http.MethodPost, "/api/items", `{"name":"T","description":"D"}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	it := decodeItem(t, w)
	assert.Equal(t, 4, it.ID)
	assert.Equal(t, "T", it.Name)
	assert.Equal(t, "D", it.Description)
	assert.False(t, it.CreatedAt.IsZero())
	assert.Nil(t, it.UpdatedAt)
}

func TestHandlerCreateDefaultsDescription(t *testing.T) {
	router := newTestRouter(NewHandler(NewMemoryStore()))

	w := doRequest(t, router, http.MethodPost, "/api/items", `{"name":"T"}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "", decodeItem(t, w).Description)
}

func TestHandlerCreateValidation(t *testing.T) {
	store := NewMemoryStore()
	router := newTestRouter(NewHandler(store))

	tests := []struct {
		name string
		body string
	}{
		{name: "missing name", body: `{"description":"no name"}`},
		{name: "non-string name", body: `{"name":42}`},
		{name: "empty name", body: `{"name":""}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(t, router, http.MethodPost, "/api/items", tt.body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, "Name is required and must be a string", decodeErrorBody(t, w).Error)
		})
	}

	// Rejected creates must not mutate the store.
	items, err := store.GetAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, items, 3)
}

func TestHandlerUpdatePartial(t *testing.T) {
	router := newTestRouter(NewHandler(NewMemoryStore()))

	w := doRequest(t, router, http.MethodPut, "/api/items/1", `{"description":"Z"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	it := decodeItem(t, w)
	assert.Equal(t, "Item 1", it.Name, "omitted name keeps its prior value")
	assert.Equal(t, "Z", it.Description)
	assert.NotNil(t, it.UpdatedAt)
}

func TestHandlerUpdateIgnoresPayloadID(t *testing.T) {
	router := newTestRouter(NewHandler(NewMemoryStore()))

	w := doRequest(t, router, http.MethodPut, "/api/items/2", `{"id":99,"name":"Y"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	it := decodeItem(t, w)
	assert.Equal(t, 2, it.ID, "id in the payload must not change the stored id")
	assert.Equal(t, "Y", it.Name)
}

func TestHandlerUpdateEmptyPayloadTouches(t *testing.T) {
	router := newTestRouter(NewHandler(NewMemoryStore()))

	w := doRequest(t, router, http.MethodPut, "/api/items/3", `{}`)

	assert.Equal(t, http.StatusOK, w.Code)
	it := decodeItem(t, w)
	assert.Equal(t, "Item 3", it.Name)
	assert.NotNil(t, it.UpdatedAt, "empty payload still stamps updatedAt")
}

func TestHandlerDelete(t *testing.T) {
	router := newTestRouter(NewHandler(NewMemoryStore()))

	w := doRequest(t, router, http.MethodDelete, "/api/items/1", "")

	assert.Equal(t, http.StatusOK, w.Code)

	var body DeleteResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Item deleted successfully", body.Message)

	// Second delete of the same id is a 404.
	w = doRequest(t, router, http.MethodDelete, "/api/items/1", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandlerFullCRUDScenario(t *testing.T) {
	router := newTestRouter(NewHandler(NewMemoryStore()))

	w := doRequest(t, router, http.MethodPost, "/api/items", `{"name":"T","description":"D"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	created := decodeItem(t, w)
	require.Equal(t, 4, created.ID)

	w = doRequest(t, router, http.MethodGet, "/api/items/4", "")
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, router, http.MethodPut, "/api/items/4", `{"name":"T2"}`)
	require.Equal(t, http.StatusOK, w.Code)
	updated := decodeItem(t, w)
	assert.Equal(t, "T2", updated.Name)
	assert.Equal(t, "D", updated.Description)
	assert.NotNil(t, updated.UpdatedAt)

	w = doRequest(t, router, http.MethodDelete, "/api/items/4", "")
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, router, http.MethodGet, "/api/items/4", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

// failingStore simulates a broken backend for the 500 path.
type failingStore struct {
	Store
}

var errBackend = errors.New("backend unreachable")

func (f *failingStore) GetAll(context.Context) ([]Item, error) {
	return nil, errBackend
}

func TestHandlerInternalError(t *testing.T) {
	router := newTestRouter(NewHandler(&failingStore{Store: NewMemoryStore()}))

	w := doRequest(t, router, http.MethodGet, "/api/items", "")

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var body serializer.InternalErrorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Internal server error", body.Error)
	assert.Equal(t, "backend unreachable", body.Message)
}
