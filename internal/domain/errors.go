package domain

import (
	"errors"
	"fmt"
	"sort"
)

// Sentinel errors for backend operations
var (
	// ErrNotFound indicates the requested record does not exist
	ErrNotFound = errors.New("record not found")

	// ErrServerOffline indicates the backend is unreachable
	ErrServerOffline = errors.New("backend is unreachable")

	// ErrAuthFailed indicates the API token was rejected
	ErrAuthFailed = errors.New("authentication token is invalid")
)

// ValidationError carries the server's field-level validation messages
// from a rejected create/update submission.
type ValidationError struct {
	Message string
	Fields  map[string][]string
}

func (e *ValidationError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("validation failed for %d field(s)", len(e.Fields))
}

// First returns the first message for a field, "" when the field is clean.
func (e *ValidationError) First(field string) string {
	msgs := e.Fields[field]
	if len(msgs) == 0 {
		return ""
	}
	return msgs[0]
}

// FieldNames returns the errored field names in stable order.
func (e *ValidationError) FieldNames() []string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// AsValidationError unwraps err into a *ValidationError if it is one.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
