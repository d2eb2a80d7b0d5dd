package httpapi

import (
	"errors"
	"net/http"
	"strings"

	"github.com/ftprojects/forum/internal/common"
	"github.com/ftprojects/forum/internal/server/auth"
	"github.com/ftprojects/forum/internal/server/models"
)

const bearerPrefix = "Bearer "

// authenticate is the per-request authentication gate.
//
// Requests without a bearer token pass through anonymous; the route layer
// decides whether anonymous access is permitted. Requests with an
// invalidated, invalid, or unresolvable token stop here with 401 and
// never reach business logic. Only a fully resolved principal is bound
// into the request context, and the binding is released on every exit
// path, including panics.
func (s *Server) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, bearerPrefix) {
			next.ServeHTTP(w, r)
			return
		}
		token := strings.TrimPrefix(header, bearerPrefix)

		if s.tokens.IsInvalidated(token) {
			writeError(w, http.StatusUnauthorized, common.ErrTokenInvalidated.Error())
			return
		}

		subject, err := s.tokens.Subject(token)
		if err != nil {
			writeError(w, http.StatusUnauthorized, common.ErrInvalidToken.Error())
			return
		}

		user, err := s.directory.FindByUsername(r.Context(), subject)
		if err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				writeError(w, http.StatusUnauthorized, common.ErrUnknownSubject.Error())
				return
			}
			s.logger.Error(r.Context(), "principal lookup failed", "error", err)
			writeError(w, http.StatusInternalServerError, common.ErrorInternal.Error())
			return
		}

		ctx, release := auth.Bind(r.Context(), user, token)
		defer release()
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requireAuthenticated rejects anonymous requests to protected routes.
func (s *Server) requireAuthenticated(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := auth.CurrentUser(r.Context()); err != nil {
			writeError(w, http.StatusUnauthorized, "authentication required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// requireAdmin is the route-level role gate, evaluated before any
// business logic runs.
func (s *Server) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, err := auth.CurrentUser(r.Context())
		if err != nil {
			writeError(w, http.StatusUnauthorized, "authentication required")
			return
		}
		if err := auth.RequireRole(user, models.RoleAdmin); err != nil {
			writeError(w, http.StatusForbidden, err.Error())
			return
		}
		next.ServeHTTP(w, r)
	})
}
