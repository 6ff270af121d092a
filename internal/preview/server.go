package preview

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Server serves a generated site directory for local preview.
type Server struct {
	router chi.Router
	root   string
	log    *slog.Logger
}

// NewServer creates a server rooted at the generated site directory.
func NewServer(root string, log *slog.Logger) *Server {
	s := &Server{
		root: root,
		log:  log,
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

	r.Get("/health", s.handleHealth)

	files := http.FileServer(http.Dir(s.root))
	r.Method(http.MethodGet, "/*", files)
	r.Method(http.MethodHead, "/*", files)

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
