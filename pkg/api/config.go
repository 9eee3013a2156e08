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
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Store backend names accepted by Config.Store.
const (
	StoreMemory = "memory"
	StoreRedis  = "redis"
)

// Config holds API-level configuration: which item store backend to use
// and how to reach it. Server-level settings (port, timeouts, rate limits)
// are parsed separately by pkg/server.
type Config struct {
	Store         string `env:"STORE"`
	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB"`
}

// NewConfig returns a Config with defaults, overridden by environment
// variables where set.
func NewConfig() (*Config, error) {
	cfg := &Config{
		Store:     StoreMemory,
		RedisAddr: "localhost:6379",
	}

	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that the configured store backend is one the API knows
// how to construct.
func (c *Config) Validate() error {
	switch c.Store {
	case StoreMemory, StoreRedis:
		return nil
	default:
		return fmt.Errorf("unknown store backend: %s (supported: %s, %s)",
			c.Store, StoreMemory, StoreRedis)
	}
}
