package service

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors shared across services. Handlers translate these to HTTP
// statuses; anything else is an internal failure and surfaces as a 500 with
// detail suppressed.
var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrNotFound           = errors.New("document not found")
	ErrTeacherOnly        = errors.New("teacher role required")
	ErrNotOwner           = errors.New("not the document owner")
	ErrDuplicateTitle     = errors.New("a document with this title already exists for this uploader")
	ErrNoFields           = errors.New("no updatable fields provided")
)

// ValidationError reports malformed or missing input with field-level detail.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, msg))
	}
	sort.Strings(parts)
	return "validation failed: " + strings.Join(parts, "; ")
}

// IsValidationError reports whether err is a *ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
