package server

import (
	"net/http"
	"runtime"
	"time"

	"github.com/itemworks/itemd/pkg/serializer"
)

// InfoResponse describes the running process.
type InfoResponse struct {
	App         string  `json:"app"`
	Version     string  `json:"version"`
	GoVersion   string  `json:"go_version"`
	Platform    string  `json:"platform"`
	Uptime      float64 `json:"uptime"`
	Environment string  `json:"environment"`
}

// handleInfo handles GET /api/info
func (s *Server) handleInfo(w http.ResponseWriter, _ *http.Request) {
	resp := InfoResponse{
		App:         s.config.Name,
		Version:     s.config.Version,
		GoVersion:   runtime.Version(),
		Platform:    runtime.GOOS + "/" + runtime.GOARCH,
		Uptime:      time.Since(s.started).Seconds(),
		Environment: s.config.Environment,
	}

	serializer.RespondJSON(w, http.StatusOK, resp)
}
