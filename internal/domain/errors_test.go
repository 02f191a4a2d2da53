package domain

import (
	"errors"
	"net/http"
	"testing"
)

func TestStructErrorsMatchSentinels(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		sentinel   error
		wantStatus int
	}{
		{
			name:       "conflict",
			err:        &ConflictError{Message: "already trashed", ResourceType: "folder", ResourceID: "f1"},
			sentinel:   ErrConflict,
			wantStatus: http.StatusConflict,
		},
		{
			name:       "quota",
			err:        &QuotaExceededError{Kind: "folder", Limit: 3},
			sentinel:   ErrQuotaExceeded,
			wantStatus: http.StatusPaymentRequired,
		},
		{
			name:       "persistence",
			err:        &PersistenceError{Op: "create folder", Cause: errors.New("boom")},
			sentinel:   ErrPersistence,
			wantStatus: http.StatusBadGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.sentinel) {
				t.Errorf("errors.Is(%T, sentinel) = false", tt.err)
			}
			var httpErr HTTPError
			if !errors.As(tt.err, &httpErr) {
				t.Fatalf("%T does not implement HTTPError", tt.err)
			}
			if httpErr.StatusCode() != tt.wantStatus {
				t.Errorf("StatusCode() = %d, want %d", httpErr.StatusCode(), tt.wantStatus)
			}
		})
	}
}

func TestQuotaExceededErrorMessage(t *testing.T) {
	err := &QuotaExceededError{Kind: "folder", Limit: 3}
	want := "you have reached the maximum number of folders (3) on the free plan"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestPersistenceErrorUnwraps(t *testing.T) {
	cause := errors.New("connection refused")
	err := &PersistenceError{Op: "create file", Cause: cause}
	if !errors.Is(err, cause) {
		t.Error("PersistenceError should unwrap to its cause")
	}
}
