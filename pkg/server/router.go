package server

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/itemworks/itemd/pkg/serializer"
)

// RootResponse is the body of the default route.
type RootResponse struct {
	Message     string `json:"message"`
	Version     string `json:"version"`
	Environment string `json:"environment"`
}

// setupRoutes configures all HTTP routes and middleware
func (s *Server) setupRoutes() http.Handler {
	r := mux.NewRouter()

	// Default handler
	r.HandleFunc("/", s.handleRoot).Methods(http.MethodGet)

	// System endpoints (no rate limiting)
	r.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	r.HandleFunc("/ready", s.handleReady).Methods(http.MethodGet)
	r.HandleFunc("/api/info", s.handleInfo).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	// Application endpoints with middleware
	for _, route := range s.config.Routes {
		r.HandleFunc(route.Path, s.withMiddleware(route.Handler)).Methods(route.Method)
	}

	// Every request, system endpoints included, bumps the request counter
	// surfaced by /health.
	return s.countRequests(r)
}

// countRequests tracks the total number of requests served by the process.
func (s *Server) countRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.requests.Add(1)
		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleRoot(w http.ResponseWriter, _ *http.Request) {
	resp := RootResponse{
		Message:     fmt.Sprintf("%s is running", s.config.Name),
		Version:     s.config.Version,
		Environment: s.config.Environment,
	}

	serializer.RespondJSON(w, http.StatusOK, resp)
}
