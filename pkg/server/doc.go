// Package server provides a reusable HTTP server for itemd with middleware,
// system endpoints, and graceful shutdown.
//
// The server owns the system surface:
//   - GET /          - service banner (message, version, environment)
//   - GET /health    - health check with the process request counter
//   - GET /ready     - readiness check (503 until Run is called)
//   - GET /api/info  - process metadata (Go version, platform, uptime)
//   - GET /metrics   - Prometheus exposition
//
// Application routes are supplied via WithRoutes and mounted under the
// middleware chain: metrics, request ID, panic recovery, rate limiting,
// and request logging. System endpoints bypass the chain but still count
// toward the /health request number.
//
// # Usage
//
//	s := server.New(
//	    server.WithName("itemd"),
//	    server.WithVersion(version),
//	    server.WithRoutes(routes...),
//	)
//	if err := s.Run(ctx); err != nil {
//	    slog.Error("server exited", "error", err)
//	}
//
// # Configuration
//
// Defaults can be overridden with environment variables: PORT, ADDRESS,
// ENVIRONMENT, RATE_LIMIT, RATE_LIMIT_BURST, READ_TIMEOUT, WRITE_TIMEOUT,
// IDLE_TIMEOUT, SHUTDOWN_TIMEOUT. Options passed to New take precedence
// over the environment.
package server
