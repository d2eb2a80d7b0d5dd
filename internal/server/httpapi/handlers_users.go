package httpapi

import (
	"encoding/json"
	"net/http"
)

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "request body must be valid JSON")
		return
	}
	if err := s.users.Register(r.Context(), req.Username, req.Password, req.Timezone); err != nil {
		writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleLogin is the dedicated Basic-credentials path; it bypasses the
// bearer gate entirely.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	username, password, ok := r.BasicAuth()
	if !ok {
		writeError(w, http.StatusUnauthorized, "basic credentials required")
		return
	}
	resp, err := s.users.Login(r.Context(), username, password)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, TokenResponse{Token: resp.Token, Expires: resp.Expires})
}

func (s *Server) handleListUsers(w http.ResponseWriter, r *http.Request) {
	all, err := s.users.Users(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	result := make([]UserResponse, 0, len(all))
	for _, u := range all {
		result = append(result, UserResponse{Username: u.Username})
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleUpdateUsername(w http.ResponseWriter, r *http.Request) {
	if err := s.users.UpdateUsername(r.Context(), r.URL.Query().Get("username")); err != nil {
		writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleUpdatePassword(w http.ResponseWriter, r *http.Request) {
	if err := s.users.UpdatePassword(r.Context(), r.URL.Query().Get("password")); err != nil {
		writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleDeleteUser(w http.ResponseWriter, r *http.Request) {
	if err := s.users.Delete(r.Context()); err != nil {
		writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
