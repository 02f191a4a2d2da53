package domain

import (
	"errors"
	"fmt"
	"net/http"
)

// HTTPError defines errors that can be mapped to HTTP status codes.
type HTTPError interface {
	error
	StatusCode() int
}

type (
	// NotFoundError indicates a resource was not found
	NotFoundError struct {
		Message string
	}

	// ValidationError indicates invalid input
	ValidationError struct {
		Message string
	}

	// UnauthorizedError indicates authentication failure
	UnauthorizedError struct {
		Message string
	}

	// ForbiddenError indicates authorization failure
	ForbiddenError struct {
		Message string
	}
)

func (e *NotFoundError) Error() string     { return e.Message }
func (e *ValidationError) Error() string   { return e.Message }
func (e *UnauthorizedError) Error() string { return e.Message }
func (e *ForbiddenError) Error() string    { return e.Message }

func (e *NotFoundError) StatusCode() int     { return http.StatusNotFound }
func (e *ValidationError) StatusCode() int   { return http.StatusBadRequest }
func (e *UnauthorizedError) StatusCode() int { return http.StatusUnauthorized }
func (e *ForbiddenError) StatusCode() int    { return http.StatusForbidden }

// Sentinel errors - use with errors.Is()
var (
	ErrNotFound      = errors.New("not found")
	ErrConflict      = errors.New("already exists")
	ErrValidation    = errors.New("validation failed")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrQuotaExceeded = errors.New("plan quota exceeded")
	ErrPersistence   = errors.New("persistence failed")
)

// ConflictError represents a resource conflict with details about the
// existing resource.
type ConflictError struct {
	Message      string // Human-readable error message
	ResourceType string // Type of resource (workspace, folder, file)
	ResourceID   string // ID of the existing/conflicting resource
}

func (e *ConflictError) Error() string {
	return e.Message
}

func (e *ConflictError) StatusCode() int {
	return http.StatusConflict
}

// Is allows errors.Is() to match against ErrConflict
func (e *ConflictError) Is(target error) bool {
	return target == ErrConflict
}

// QuotaExceededError indicates a free-tier plan limit was reached. It is a
// terminal, synchronous rejection made before any store mutation or network
// call; handlers and the engine pair it with an upgrade prompt.
type QuotaExceededError struct {
	Kind  string // "folder" or "file"
	Limit int    // the free-plan limit that was hit
}

func (e *QuotaExceededError) Error() string {
	return fmt.Sprintf("you have reached the maximum number of %ss (%d) on the free plan", e.Kind, e.Limit)
}

func (e *QuotaExceededError) StatusCode() int {
	return http.StatusPaymentRequired
}

// Is allows errors.Is() to match against ErrQuotaExceeded
func (e *QuotaExceededError) Is(target error) bool {
	return target == ErrQuotaExceeded
}

// PersistenceError wraps a failed or rejected remote persistence call. Op
// names the attempted operation so user-facing notifications can name it.
type PersistenceError struct {
	Op    string // e.g. "create folder", "delete file"
	Cause error
}

func (e *PersistenceError) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("%s: persistence failed", e.Op)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Cause)
}

func (e *PersistenceError) Unwrap() error {
	return e.Cause
}

func (e *PersistenceError) StatusCode() int {
	return http.StatusBadGateway
}

// Is allows errors.Is() to match against ErrPersistence
func (e *PersistenceError) Is(target error) bool {
	return target == ErrPersistence
}
