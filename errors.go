package persist

import (
	"errors"
	"fmt"
	"strings"
)

// Standard sentinel errors.
var (
	// ErrInvalidIdentifier is returned when an identifier value is absent or
	// cannot be rendered for the id column's type.
	ErrInvalidIdentifier = errors.New("persist: invalid identifier")

	// ErrMalformedMetadata is returned when a table descriptor violates the
	// metadata invariants (missing id column, duplicate columns, ...).
	ErrMalformedMetadata = errors.New("persist: malformed metadata")
)

// IdentifierError describes an id value that could not be rendered into
// a WHERE predicate.
type IdentifierError struct {
	Table  string // Table being queried
	Column string // Id column name
	Value  any    // Offending value, nil when absent
	Err    error  // Underlying reason
}

// Error returns the error string.
func (e *IdentifierError) Error() string {
	if e.Value == nil {
		return fmt.Sprintf("persist: invalid identifier for %s.%s: %v", e.Table, e.Column, e.Err)
	}
	return fmt.Sprintf("persist: invalid identifier %v for %s.%s: %v", e.Value, e.Table, e.Column, e.Err)
}

// Is reports whether the target error matches ErrInvalidIdentifier.
func (e *IdentifierError) Is(err error) bool {
	return err == ErrInvalidIdentifier
}

// Unwrap returns the underlying error.
func (e *IdentifierError) Unwrap() error {
	return e.Err
}

// NewIdentifierError returns a new IdentifierError.
func NewIdentifierError(table, column string, value any, err error) *IdentifierError {
	return &IdentifierError{Table: table, Column: column, Value: value, Err: err}
}

// IsInvalidIdentifier returns true if the error is an IdentifierError.
func IsInvalidIdentifier(err error) bool {
	if err == nil {
		return false
	}
	var e *IdentifierError
	return errors.As(err, &e) || errors.Is(err, ErrInvalidIdentifier)
}

// MetadataError represents a single defect found in a table descriptor.
type MetadataError struct {
	Table   string
	Column  string
	Message string
}

// Error returns the error string.
func (e *MetadataError) Error() string {
	if e.Column != "" {
		return fmt.Sprintf("persist: malformed metadata %s.%s: %s", e.Table, e.Column, e.Message)
	}
	return fmt.Sprintf("persist: malformed metadata %s: %s", e.Table, e.Message)
}

// Is reports whether the target error matches ErrMalformedMetadata.
func (e *MetadataError) Is(err error) bool {
	return err == ErrMalformedMetadata
}

// NewMetadataError returns a new MetadataError.
func NewMetadataError(table, column, msg string) *MetadataError {
	return &MetadataError{Table: table, Column: column, Message: msg}
}

// IsMalformedMetadata returns true if the error is a MetadataError.
func IsMalformedMetadata(err error) bool {
	if err == nil {
		return false
	}
	var e *MetadataError
	return errors.As(err, &e) || errors.Is(err, ErrMalformedMetadata)
}

// AggregateError represents multiple errors collected during an operation.
type AggregateError struct {
	Errors []error
}

// Error returns the error string.
func (e *AggregateError) Error() string {
	if len(e.Errors) == 0 {
		return "persist: no errors"
	}
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	var sb strings.Builder
	sb.WriteString("persist: multiple errors:")
	for i, err := range e.Errors {
		fmt.Fprintf(&sb, "\n  [%d] %v", i+1, err)
	}
	return sb.String()
}

// Unwrap returns the collected errors so errors.Is and errors.As see each of them.
func (e *AggregateError) Unwrap() []error {
	return e.Errors
}

// NewAggregateError returns a new AggregateError if there are errors,
// otherwise returns nil.
func NewAggregateError(errs ...error) error {
	var filtered []error
	for _, err := range errs {
		if err != nil {
			filtered = append(filtered, err)
		}
	}
	if len(filtered) == 0 {
		return nil
	}
	if len(filtered) == 1 {
		return filtered[0]
	}
	return &AggregateError{Errors: filtered}
}
