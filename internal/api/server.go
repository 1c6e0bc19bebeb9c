// Package api exposes the agents over HTTP. Each agent mounts as one POST
// endpoint speaking its request/response map contract directly, so the
// wire format matches what the agents already consume.
package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/confscout/eventscout/internal/agent"
	"github.com/confscout/eventscout/internal/logger"
	"github.com/confscout/eventscout/internal/metrics"
)

// Server routes HTTP requests to the agents.
type Server struct {
	discovery    agent.Processor
	proposals    agent.Processor
	scholarships agent.Processor
	travel       agent.Processor
}

// NewServer creates a server over the four agents.
func NewServer(discovery, proposals, scholarships, travel agent.Processor) *Server {
	return &Server{
		discovery:    discovery,
		proposals:    proposals,
		scholarships: scholarships,
		travel:       travel,
	}
}

// Router builds the HTTP routing tree.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	r.Post("/api/discovery", s.handleAgent(s.discovery))
	r.Post("/api/proposals", s.handleAgent(s.proposals))
	r.Post("/api/scholarships", s.handleAgent(s.scholarships))
	r.Post("/api/travel", s.handleAgent(s.travel))

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleAgent adapts one agent to HTTP. An empty body means an empty
// request, which every agent maps to its default operation. Agent-level
// failures stay HTTP 200 with success=false; only a malformed body is a
// client error.
func (s *Server) handleAgent(p agent.Processor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req := agent.Request{}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			writeJSON(w, http.StatusBadRequest, agent.Fail("invalid request body: %v", err))
			return
		}

		resp := p.ProcessRequest(r.Context(), req)
		writeJSON(w, http.StatusOK, resp)
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("Encoding response failed", nil, err)
	}
}
