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

package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/redis/go-redis/v9"

	"github.com/itemworks/itemd/pkg/buildinfo"
	"github.com/itemworks/itemd/pkg/item"
	"github.com/itemworks/itemd/pkg/logging"
	"github.com/itemworks/itemd/pkg/server"
)

const name = "itemd"

// Serve starts the API server and blocks until shutdown.
// It configures logging, selects the item store backend, sets up routes,
// and handles graceful shutdown.
func Serve(ctx context.Context) error {
	cfg, err := NewConfig()
	if err != nil {
		return fmt.Errorf("load api config: %w", err)
	}
	return ServeWithConfig(ctx, cfg)
}

// ServeWithConfig is Serve with an explicit Config, for callers that
// resolve configuration themselves (e.g. the CLI after flag parsing).
func ServeWithConfig(ctx context.Context, cfg *Config) error {
	logging.SetDefaultStructuredLogger(name, buildinfo.Version)

	info := buildinfo.Get()
	slog.Info("starting",
		"name", name,
		"version", info.Version,
		"commit", info.Commit,
		"date", info.Date,
		"store", cfg.Store,
	)

	store, err := newStore(ctx, cfg)
	if err != nil {
		slog.Error("store setup failed", "error", err)
		return err
	}

	s := server.New(
		server.WithName(name),
		server.WithVersion(buildinfo.Version),
		server.WithRoutes(Routes(store)...),
	)

	if err := s.Run(ctx); err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}

	return nil
}

// Routes returns the item routes mounted by the server.
func Routes(store item.Store) []server.Route {
	h := item.NewHandler(store)

	return []server.Route{
		{Method: http.MethodGet, Path: "/api/items", Handler: h.List},
		{Method: http.MethodPost, Path: "/api/items", Handler: h.Create},
		{Method: http.MethodGet, Path: "/api/items/{id}", Handler: h.Get},
		{Method: http.MethodPut, Path: "/api/items/{id}", Handler: h.Update},
		{Method: http.MethodDelete, Path: "/api/items/{id}", Handler: h.Delete},
	}
}

func newStore(ctx context.Context, cfg *Config) (item.Store, error) {
	switch cfg.Store {
	case StoreRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		return item.NewRedisStore(ctx, client)
	case StoreMemory:
		return item.NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown store backend: %s", cfg.Store)
	}
}
