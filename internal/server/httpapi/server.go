// Package httpapi exposes the forum over HTTP. It owns the request
// boundary: the authentication gate, the role gate, and the translation
// of domain errors to transport status codes.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ftprojects/forum/internal/logging"
	"github.com/ftprojects/forum/internal/server/auth"
	"github.com/ftprojects/forum/internal/server/repositories/users"
	"github.com/ftprojects/forum/internal/server/services"
)

type Server struct {
	address    string
	logger     logging.Logger
	tokens     *auth.TokenService
	directory  users.Repository
	users      *services.UserService
	threads    *services.ThreadService
	comments   *services.CommentService
}

func NewServer(
	address string,
	logger logging.Logger,
	tokens *auth.TokenService,
	directory users.Repository,
	userService *services.UserService,
	threadService *services.ThreadService,
	commentService *services.CommentService,
) *Server {
	return &Server{
		address:   address,
		logger:    logger.With("module", "http_server"),
		tokens:    tokens,
		directory: directory,
		users:     userService,
		threads:   threadService,
		comments:  commentService,
	}
}

// Handler builds the route tree. Registration and login sit outside the
// bearer gate; everything else is authenticated.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Post("/api/users/register", s.handleRegister)
	r.Post("/api/users/login", s.handleLogin)

	r.Group(func(r chi.Router) {
		r.Use(s.authenticate)
		r.Use(s.requireAuthenticated)

		r.With(s.requireAdmin).Get("/api/users", s.handleListUsers)
		r.Put("/api/users/username", s.handleUpdateUsername)
		r.Put("/api/users/password", s.handleUpdatePassword)
		r.Delete("/api/users/delete", s.handleDeleteUser)

		r.Post("/api/threads/create", s.handleCreateThread)
		r.Get("/api/threads", s.handleListThreads)
		r.Put("/api/threads/content", s.handleUpdateThreadContent)
		r.Put("/api/threads/closed", s.handleUpdateThreadClosed)
		r.Delete("/api/threads/delete", s.handleDeleteThread)

		r.Post("/api/comments/create", s.handleCreateComment)
		r.Get("/api/comments", s.handleListComments)
		r.Put("/api/comments/content", s.handleUpdateCommentContent)
		r.Delete("/api/comments/delete", s.handleDeleteComment)
	})

	return r
}

// Run serves HTTP until the context is cancelled, then shuts down
// gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.address,
		Handler: s.Handler(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
