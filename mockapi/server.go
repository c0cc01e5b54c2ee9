// Package mockapi is an in-process CareerAI API server backed by in-memory
// repositories. It issues real signed access tokens and opaque refresh
// tokens, so the client-side session lifecycle can be exercised end to end
// without the production backend.
package mockapi

import (
	"net/http"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/careerai/go-careerai/internal/config"
	"github.com/careerai/go-careerai/users"
)

type Server struct {
	env    string
	mux    *http.ServeMux
	routes []string
	config config.Config
	repo   users.UserRepo
	tokens *TokenService

	hitLock sync.Mutex
	hits    map[string]int
}

// New creates a Server with its routes registered.
func New(cfg config.Config, repo users.UserRepo) *Server {
	s := &Server{
		env:    cfg.GetEnv(),
		mux:    http.NewServeMux(),
		config: cfg,
		repo:   repo,
		tokens: NewTokenService(cfg),
		hits:   make(map[string]int),
	}

	s.initRoutes()
	s.logRoutes()

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) RegisterRouteFunc(pattern string, handler func(http.ResponseWriter, *http.Request)) {
	s.routes = append(s.routes, pattern)
	s.mux.HandleFunc(pattern, handler)
}

// Tokens exposes the token service so tests can mint and inspect tokens.
func (s *Server) Tokens() *TokenService {
	return s.tokens
}

// Hits returns how many requests reached the handler for pattern. Counting
// happens after middleware, so rejected requests are not included.
func (s *Server) Hits(pattern string) int {
	s.hitLock.Lock()
	defer s.hitLock.Unlock()
	return s.hits[pattern]
}

func (s *Server) countHit(pattern string) {
	s.hitLock.Lock()
	defer s.hitLock.Unlock()
	s.hits[pattern]++
}

func (s *Server) logRoutes() {
	if s.env != "DEV" {
		return
	}
	for _, route := range s.routes {
		log.Info().Str("route", route).Msg("registered")
	}
}
