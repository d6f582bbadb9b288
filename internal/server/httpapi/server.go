// Package httpapi exposes the REST surface: registration, token exchange,
// file upload/listing/visibility and content retrieval.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrijs2005/filehub/internal/logging"
	"github.com/dmitrijs2005/filehub/internal/server/blob"
	"github.com/dmitrijs2005/filehub/internal/server/files"
	"github.com/dmitrijs2005/filehub/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/filehub/internal/server/sessions"
	"github.com/dmitrijs2005/filehub/internal/server/users"
)

type Server struct {
	address  string
	logger   logging.Logger
	users    *users.Service
	sessions *sessions.Service
	files    *files.Service
	rm       repomanager.RepositoryManager
	blobs    blob.Store
}

func NewServer(a string, l logging.Logger, us *users.Service, ss *sessions.Service, fs *files.Service,
	rm repomanager.RepositoryManager, blobs blob.Store) *Server {
	return &Server{
		address:  a,
		logger:   l.With("module", "http_server"),
		users:    us,
		sessions: ss,
		files:    fs,
		rm:       rm,
		blobs:    blobs,
	}
}

// Router builds the chi mux. Split out from Run so tests can drive it with
// httptest.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Get("/status", s.handleStatus)
	r.Get("/stats", s.handleStats)

	r.Post("/users", s.handleRegister)
	r.Get("/connect", s.handleConnect)

	r.Group(func(r chi.Router) {
		r.Use(s.withAuth)
		r.Get("/disconnect", s.handleDisconnect)
		r.Get("/users/me", s.handleMe)
		r.Post("/files", s.handleUpload)
		r.Get("/files", s.handleListFiles)
		r.Get("/files/{id}", s.handleShowFile)
		r.Put("/files/{id}/publish", s.handlePublish)
		r.Put("/files/{id}/unpublish", s.handleUnpublish)
	})

	// Token optional: visibility decides access.
	r.Get("/files/{id}/data", s.handleFileData)

	return r
}

// Run serves until ctx is done, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:    s.address,
		Handler: s.Router(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
