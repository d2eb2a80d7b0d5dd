package httpapi

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ftprojects/forum/internal/common"
)

func TestWriteDomainError_Mapping(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"validation", common.ErrInvalidTitle, http.StatusBadRequest, "invalid title"},
		{"not found", common.ErrorNotFound, http.StatusBadRequest, "not found"},
		{"not owner", common.ErrNotOwner, http.StatusBadRequest, "not the resource owner"},
		{"credentials", common.ErrInvalidCredentials, http.StatusUnauthorized, "invalid username/password"},
		{"role", common.ErrInsufficientRole, http.StatusForbidden, "insufficient role"},
		{"unclassified", errors.New("pg: connection refused"), http.StatusInternalServerError, common.ErrorInternal.Error()},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			writeDomainError(rec, tc.err)
			if rec.Code != tc.status {
				t.Fatalf("want status %d, got %d", tc.status, rec.Code)
			}
			if msg := errMessage(t, rec); msg != tc.message {
				t.Fatalf("want message %q, got %q", tc.message, msg)
			}
		})
	}
}
