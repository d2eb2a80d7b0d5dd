package httpapi

import (
	"encoding/json"
	"net/http"
)

func (s *Server) handleCreateComment(w http.ResponseWriter, r *http.Request) {
	var req CreateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "request body must be valid JSON")
		return
	}
	if err := s.comments.Create(r.Context(), req.ThreadID, req.Content); err != nil {
		writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleListComments(w http.ResponseWriter, r *http.Request) {
	all, err := s.comments.ForThread(r.Context(), r.URL.Query().Get("id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}

	loc := s.viewerLocation(r)
	result := make([]CommentResponse, 0, len(all))
	for _, c := range all {
		result = append(result, toCommentResponse(c, loc))
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleUpdateCommentContent(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	if err := s.comments.UpdateContent(r.Context(), query.Get("id"), query.Get("content")); err != nil {
		writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleDeleteComment(w http.ResponseWriter, r *http.Request) {
	if err := s.comments.Delete(r.Context(), r.URL.Query().Get("id")); err != nil {
		writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
