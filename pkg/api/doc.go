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

// Package api provides the HTTP API layer for the itemd service.
//
// This package acts as a thin wrapper around the reusable pkg/server
// package, configuring it with the item store backend and the item CRUD
// routes. The item semantics themselves live in pkg/item; pkg/server owns
// the HTTP lifecycle, middleware, and system endpoints.
//
// # Usage
//
// To start the API server:
//
//	package main
//
//	import (
//	    "context"
//	    "log"
//	    "github.com/itemworks/itemd/pkg/api"
//	)
//
//	func main() {
//	    if err := api.Serve(context.Background()); err != nil {
//	        log.Fatalf("server error: %v", err)
//	    }
//	}
//
// # Endpoints
//
// Application Endpoints (with rate limiting):
//   - GET    /api/items      - List all items
//   - POST   /api/items      - Create an item (201 on success)
//   - GET    /api/items/{id} - Fetch one item by numeric id
//   - PUT    /api/items/{id} - Partially update an item
//   - DELETE /api/items/{id} - Delete an item
//
// System Endpoints (no rate limiting):
//   - GET /         - Service banner
//   - GET /health   - Health check (liveness probe) with served request count
//   - GET /ready    - Readiness check
//   - GET /api/info - Runtime and build information
//   - GET /metrics  - Prometheus metrics
//
// # Configuration
//
// The API layer is configured via environment variables:
//   - STORE: item store backend, memory or redis (default: memory)
//   - REDIS_ADDR: Redis address when STORE=redis (default: localhost:6379)
//   - REDIS_PASSWORD: Redis password (default: none)
//   - REDIS_DB: Redis database number (default: 0)
//   - LOG_LEVEL: logging level (debug, info, warn, error)
//
// Server-level settings (PORT, timeouts, rate limits) are documented in
// pkg/server.
package api
