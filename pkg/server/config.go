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
	"net/http"
	"time"

	"github.com/caarlos0/env/v11"
	"golang.org/x/time/rate"

	"github.com/itemworks/itemd/pkg/defaults"
)

// EnvironmentTest disables request logging; tests use it to keep output quiet.
const EnvironmentTest = "test"

// Route describes an application route mounted under the server's
// middleware chain. System endpoints (health, ready, metrics) are wired by
// the server itself and bypass the chain.
type Route struct {
	Method  string
	Path    string
	Handler http.HandlerFunc
}

// Config holds server configuration.
type Config struct {
	// Server identity
	Name    string `env:"-"`
	Version string `env:"-"`

	// Deployment environment name, e.g. development, production, test.
	Environment string `env:"ENVIRONMENT"`

	// Listener configuration
	Address string `env:"ADDRESS"`
	Port    int    `env:"PORT"`

	// Rate limiting configuration
	RateLimit      rate.Limit `env:"RATE_LIMIT"`       // requests per second
	RateLimitBurst int        `env:"RATE_LIMIT_BURST"` // burst size

	// Timeouts
	ReadTimeout     time.Duration `env:"READ_TIMEOUT"`
	WriteTimeout    time.Duration `env:"WRITE_TIMEOUT"`
	IdleTimeout     time.Duration `env:"IDLE_TIMEOUT"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`

	// Application routes, supplied programmatically.
	Routes []Route `env:"-"`
}

// NewConfig returns a Config with sensible defaults, overridden by
// environment variables where set.
func NewConfig() (*Config, error) {
	cfg := &Config{
		Name:            "server",
		Version:         "undefined",
		Environment:     "development",
		Address:         "",
		Port:            8080,
		RateLimit:       100,
		RateLimitBurst:  200,
		ReadTimeout:     defaults.ServerReadTimeout,
		WriteTimeout:    defaults.ServerWriteTimeout,
		IdleTimeout:     defaults.ServerIdleTimeout,
		ShutdownTimeout: defaults.ServerShutdownTimeout,
	}

	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
