// Package http exposes a read-only introspection server for a scene graph:
// health, the scene list as JSON and a Mermaid rendering. It is debug
// tooling; it performs no navigation.
package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/aretw0/scenic/internal/presentation/graph"
	"github.com/aretw0/scenic/pkg/domain"
)

// Engine is the introspection surface the server exposes.
type Engine interface {
	Inspect() ([]domain.SceneInfo, error)
}

// Server serves the introspection routes.
type Server struct {
	engine Engine
}

// NewHandler creates the HTTP handler for the engine.
func NewHandler(engine Engine) http.Handler {
	s := &Server{engine: engine}

	r := chi.NewRouter()
	r.Get("/healthz", s.health)
	r.Get("/scenes", s.scenes)
	r.Get("/graph.mmd", s.mermaid)
	return r
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

func (s *Server) scenes(w http.ResponseWriter, r *http.Request) {
	infos, err := s.engine.Inspect()
	if err != nil {
		http.Error(w, fmt.Sprintf("Inspect error: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(infos); err != nil {
		http.Error(w, "Failed to encode scenes", http.StatusInternalServerError)
	}
}

func (s *Server) mermaid(w http.ResponseWriter, r *http.Request) {
	infos, err := s.engine.Inspect()
	if err != nil {
		http.Error(w, fmt.Sprintf("Inspect error: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte(graph.GenerateMermaid(infos, nil)))
}
