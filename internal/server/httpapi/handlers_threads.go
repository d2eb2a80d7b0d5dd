package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/ftprojects/forum/internal/server/auth"
)

func (s *Server) handleCreateThread(w http.ResponseWriter, r *http.Request) {
	var req CreateThreadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "request body must be valid JSON")
		return
	}
	if err := s.threads.Create(r.Context(), req.Title, req.Content); err != nil {
		writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleListThreads(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	page := intParam(query.Get("page"), 0)
	size := intParam(query.Get("size"), 5)
	descending, ok := boolParam(query.Get("descending"), true)
	if !ok {
		writeError(w, http.StatusBadRequest, "descending must be a boolean")
		return
	}

	all, err := s.threads.List(r.Context(), page, size, descending)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	loc := s.viewerLocation(r)
	result := make([]ThreadResponse, 0, len(all))
	for _, t := range all {
		result = append(result, toThreadResponse(t, loc))
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleUpdateThreadContent(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	if err := s.threads.UpdateContent(r.Context(), query.Get("id"), query.Get("content")); err != nil {
		writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleUpdateThreadClosed(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	closed, ok := boolParam(query.Get("closed"), false)
	if !ok {
		writeError(w, http.StatusBadRequest, "closed must be a boolean")
		return
	}
	if err := s.threads.UpdateClosed(r.Context(), query.Get("id"), closed); err != nil {
		writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleDeleteThread(w http.ResponseWriter, r *http.Request) {
	if err := s.threads.Delete(r.Context(), r.URL.Query().Get("id")); err != nil {
		writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func intParam(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return -1
	}
	return n
}

func boolParam(raw string, fallback bool) (bool, bool) {
	if raw == "" {
		return fallback, true
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, false
	}
	return v, true
}

// viewerLocation resolves the timezone listings are rendered in. The
// value was validated at registration; UTC is a safe fallback.
func (s *Server) viewerLocation(r *http.Request) *time.Location {
	user, err := auth.CurrentUser(r.Context())
	if err != nil {
		return time.UTC
	}
	loc, err := time.LoadLocation(user.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
