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

package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/itemworks/itemd/pkg/serializer"
)

func okHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func TestRequestIDMiddleware(t *testing.T) {
	s := newTestServer()

	tests := []struct {
		name       string
		incomingID string
		keepsID    bool
	}{
		{
			name:       "generates id when absent",
			incomingID: "",
			keepsID:    false,
		},
		{
			name:       "keeps valid incoming id",
			incomingID: "a9f2f6be-0f2e-4f1a-9f9a-1c2d3e4f5a6b",
			keepsID:    true,
		},
		{
			name:       "replaces malformed incoming id",
			incomingID: "not-a-uuid",
			keepsID:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.incomingID != "" {
				req.Header.Set("X-Request-Id", tt.incomingID)
			}
			w := httptest.NewRecorder()

			s.requestIDMiddleware(okHandler)(w, req)

			got := w.Header().Get("X-Request-Id")
			if _, err := uuid.Parse(got); err != nil {
				t.Fatalf("expected a valid request id, got %q", got)
			}
			if tt.keepsID && got != tt.incomingID {
				t.Errorf("expected incoming id %q to be kept, got %q", tt.incomingID, got)
			}
			if !tt.keepsID && got == tt.incomingID {
				t.Errorf("expected incoming id %q to be replaced", tt.incomingID)
			}
		})
	}
}

func TestRateLimitMiddleware(t *testing.T) {
	s := newTestServer()
	s.rateLimiter = rate.NewLimiter(rate.Limit(1), 1)

	handler := s.rateLimitMiddleware(okHandler)

	w := httptest.NewRecorder()
	handler(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected first request to pass, got %d", w.Code)
	}
	if w.Header().Get("X-RateLimit-Limit") == "" {
		t.Error("expected X-RateLimit-Limit header on allowed request")
	}

	w = httptest.NewRecorder()
	handler(w, httptest.NewRequest(http.MethodGet, "/", nil))
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("expected status %d, got %d", http.StatusTooManyRequests, w.Code)
	}
	if w.Header().Get("Retry-After") != "1" {
		t.Errorf("expected Retry-After 1, got %q", w.Header().Get("Retry-After"))
	}

	var body serializer.ErrorBody
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid error body: %v", err)
	}
	if body.Error != "Rate limit exceeded" {
		t.Errorf("unexpected error message %q", body.Error)
	}
}

func TestPanicRecoveryMiddleware(t *testing.T) {
	s := newTestServer(WithRoutes(Route{
		Method: http.MethodGet,
		Path:   "/boom",
		Handler: func(_ http.ResponseWriter, _ *http.Request) {
			panic("store exploded")
		},
	}))

	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected status %d, got %d", http.StatusInternalServerError, w.Code)
	}

	var body serializer.InternalErrorBody
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid error body: %v", err)
	}
	if body.Error != "Internal server error" {
		t.Errorf("unexpected error field %q", body.Error)
	}
	if body.Message != "store exploded" {
		t.Errorf("unexpected message field %q", body.Message)
	}

	// The server keeps serving after a recovered panic.
	w = httptest.NewRecorder()
	s.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	if w.Code != http.StatusOK {
		t.Errorf("expected healthy server after panic, got %d", w.Code)
	}
}

func TestResponseWriterStatusCapture(t *testing.T) {
	w := httptest.NewRecorder()
	rw := newResponseWriter(w)

	if rw.Status() != http.StatusOK {
		t.Errorf("expected default status %d, got %d", http.StatusOK, rw.Status())
	}

	rw.WriteHeader(http.StatusTeapot)
	if rw.Status() != http.StatusTeapot {
		t.Errorf("expected status %d, got %d", http.StatusTeapot, rw.Status())
	}
}
