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
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/itemworks/itemd/pkg/defaults"
)

// Option customizes the server configuration.
type Option func(*Config)

// WithName sets the server identity used in responses and logs.
func WithName(name string) Option {
	return func(c *Config) {
		c.Name = name
	}
}

// WithVersion sets the version reported by the server endpoints.
func WithVersion(version string) Option {
	return func(c *Config) {
		c.Version = version
	}
}

// WithEnvironment overrides the deployment environment name.
func WithEnvironment(environment string) Option {
	return func(c *Config) {
		c.Environment = environment
	}
}

// WithPort overrides the listener port.
func WithPort(port int) Option {
	return func(c *Config) {
		c.Port = port
	}
}

// WithAddress overrides the listener address.
func WithAddress(address string) Option {
	return func(c *Config) {
		c.Address = address
	}
}

// WithRoutes mounts application routes under the middleware chain.
func WithRoutes(routes ...Route) Option {
	return func(c *Config) {
		c.Routes = append(c.Routes, routes...)
	}
}

// Server represents the HTTP server
type Server struct {
	config      *Config
	httpServer  *http.Server
	rateLimiter *rate.Limiter
	mu          sync.RWMutex
	ready       bool
	started     time.Time
	requests    atomic.Uint64
}

// New creates a new server instance. Configuration comes from defaults and
// environment variables, refined by the given options.
func New(opts ...Option) *Server {
	config, err := NewConfig()
	if err != nil {
		slog.Warn("invalid server environment configuration, using defaults", "error", err)
		config = mustDefaultConfig()
	}

	for _, opt := range opts {
		opt(config)
	}

	s := &Server{
		config:      config,
		rateLimiter: rate.NewLimiter(config.RateLimit, config.RateLimitBurst),
		started:     time.Now(),
	}

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", config.Address, config.Port),
		Handler:      s.setupRoutes(),
		ReadTimeout:  config.ReadTimeout,
		WriteTimeout: config.WriteTimeout,
		IdleTimeout:  config.IdleTimeout,
	}

	return s
}

// mustDefaultConfig builds the defaults without consulting the environment.
// Used when NewConfig fails on malformed environment variables.
func mustDefaultConfig() *Config {
	return &Config{
		Name:            "server",
		Version:         "undefined",
		Environment:     "development",
		Port:            8080,
		RateLimit:       100,
		RateLimitBurst:  200,
		ReadTimeout:     defaults.ServerReadTimeout,
		WriteTimeout:    defaults.ServerWriteTimeout,
		IdleTimeout:     defaults.ServerIdleTimeout,
		ShutdownTimeout: defaults.ServerShutdownTimeout,
	}
}

// setReady marks the server as ready to serve traffic
func (s *Server) setReady(ready bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ready = ready
}

// Addr returns the listener address.
func (s *Server) Addr() string {
	return s.httpServer.Addr
}

// Handler returns the fully assembled HTTP handler, useful for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Run starts the HTTP server and blocks until the context is canceled or
// the listener fails, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	s.setReady(true)

	slog.Info("server is listening",
		"address", s.httpServer.Addr,
		"environment", s.config.Environment,
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		return s.Shutdown(context.Background())
	})

	return g.Wait()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.setReady(false)

	shutdownCtx, cancel := context.WithTimeout(ctx, s.config.ShutdownTimeout)
	defer cancel()

	slog.Info("shutting down server")
	return s.httpServer.Shutdown(shutdownCtx)
}
