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

// Package cli implements the command-line interface for the itemd service.
//
// # Commands
//
// serve - Run the HTTP server:
//
//	itemd serve [--port 8080] [--store memory|redis] [--redis-addr host:port]
//
// Starts the item collection REST API along with the system endpoints
// (health, readiness, info, Prometheus metrics). Flags override their
// environment variable counterparts.
//
// version - Print build information:
//
//	itemd version [--format json|yaml|table] [--output FILE]
//
// # Global Flags
//
//	--log-level   Log level: debug, info, warn, error (default: info)
//	--help, -h    Show command help
//	--version, -v Show version information
//
// The CLI traps SIGINT/SIGTERM and cancels the command context so the
// server shuts down gracefully.
package cli
