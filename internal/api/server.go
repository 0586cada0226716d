package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dgallion1/lessonmark/internal/config"
	"github.com/dgallion1/lessonmark/internal/printstore"
)

// Server is the HTTP API server for lessonmark.
type Server struct {
	router chi.Router
	prints *printstore.Store
	log    *slog.Logger
	cfg    config.Config
	now    func() time.Time
}

// NewServer creates and configures the HTTP server.
func NewServer(prints *printstore.Store, log *slog.Logger, cfg config.Config) *Server {
	s := &Server{
		prints: prints,
		log:    log,
		cfg:    cfg,
		now:    time.Now,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	// Public endpoints. Print pages are opened directly by a browser tab.
	r.Get("/health", s.handleHealth)
	r.Get("/print/{printID}", s.handleGetPrint)

	r.Group(func(r chi.Router) {
		if s.cfg.APIKey != "" {
			r.Use(AuthMiddleware(s.cfg.APIKey, s.log))
		}
		r.Use(BodyLimit(s.cfg.MaxBodyBytes))

		r.Post("/api/split", s.handleSplit)
		r.Post("/api/render", s.handleRender)
		r.Post("/api/print", s.handleCreatePrint)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
