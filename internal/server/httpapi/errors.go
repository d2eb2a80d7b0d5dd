package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ftprojects/forum/internal/common"
)

// writeDomainError maps business errors onto the wire. Validation
// failures, missing mutate/delete targets, and ownership violations all
// share the uniform 400 body so a caller cannot probe whether a resource
// exists. A missing auth binding is a wiring bug and fails loudly.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, common.ErrUserExists),
		errors.Is(err, common.ErrInvalidUsername),
		errors.Is(err, common.ErrInvalidPassword),
		errors.Is(err, common.ErrInvalidTimezone),
		errors.Is(err, common.ErrInvalidTitle),
		errors.Is(err, common.ErrInvalidContent),
		errors.Is(err, common.ErrInvalidPage),
		errors.Is(err, common.ErrInvalidSize),
		errors.Is(err, common.ErrThreadClosed),
		errors.Is(err, common.ErrNotOwner),
		errors.Is(err, common.ErrorNotFound):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, common.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, common.ErrInsufficientRole):
		writeError(w, http.StatusForbidden, err.Error())
	default:
		// Unclassified failures must not leak their cause to the caller.
		writeError(w, http.StatusInternalServerError, common.ErrorInternal.Error())
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Message: message})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
