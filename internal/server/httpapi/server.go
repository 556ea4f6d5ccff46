// Package httpapi exposes the REST surface of the backend: account
// signup/login, practice stats, catalog listings, blog posts and gallery
// media URLs.
package httpapi

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/vrajdev/sadhana-backend/internal/logging"
	"github.com/vrajdev/sadhana-backend/internal/server/accounts"
	"github.com/vrajdev/sadhana-backend/internal/server/blog"
	"github.com/vrajdev/sadhana-backend/internal/server/catalog"
	"github.com/vrajdev/sadhana-backend/internal/server/media"
	"github.com/vrajdev/sadhana-backend/internal/server/sadhana"
)

type Server struct {
	address   string
	logger    logging.Logger
	accounts  *accounts.Service
	sadhana   *sadhana.Service
	catalog   *catalog.Service
	blog      *blog.Service
	media     *media.Service
	jwtSecret []byte
}

func NewServer(address string, logger logging.Logger,
	as *accounts.Service, ss *sadhana.Service, cs *catalog.Service,
	bs *blog.Service, ms *media.Service, secretKey string) *Server {

	return &Server{
		address:   address,
		logger:    logger.With("module", "http_server"),
		accounts:  as,
		sadhana:   ss,
		catalog:   cs,
		blog:      bs,
		media:     ms,
		jwtSecret: []byte(secretKey),
	}
}

// Handler builds the router with all routes and middleware applied.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/ping", s.handlePing).Methods(http.MethodGet)

	r.HandleFunc("/auth/signup", s.handleSignup).Methods(http.MethodPost)
	r.HandleFunc("/auth/login", s.handleLogin).Methods(http.MethodPost)
	r.HandleFunc("/auth/activity", s.requireAuth(s.handleListActivity)).Methods(http.MethodGet)
	r.HandleFunc("/auth/activity", s.requireAuth(s.handleRecordActivity)).Methods(http.MethodPost)

	r.HandleFunc("/api/courses", s.handleCourses).Methods(http.MethodGet)
	r.HandleFunc("/api/trips", s.handleTrips).Methods(http.MethodGet)

	r.HandleFunc("/api/posts", s.handleListPosts).Methods(http.MethodGet)
	r.HandleFunc("/api/posts/{id}", s.handleGetPost).Methods(http.MethodGet)
	r.HandleFunc("/api/posts", s.requirePrivileged(s.handleCreatePost)).Methods(http.MethodPost)

	r.HandleFunc("/api/media/upload-url", s.requirePrivileged(s.handleMediaUploadURL)).Methods(http.MethodPost)
	r.HandleFunc("/api/media/url", s.requireAuth(s.handleMediaGetURL)).Methods(http.MethodGet)

	return corsMiddleware(s.loggingMiddleware(r))
}

func (s *Server) handlePing(w http.ResponseWriter, r *http.Request) {
	sendJSON(w, http.StatusOK, map[string]string{"status": "OK"})
}

// Run starts the HTTP server and shuts it down gracefully when the
// context is cancelled.
func (s *Server) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:    s.address,
		Handler: s.Handler(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		_ = srv.Shutdown(context.Background())
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}

	return nil
}
