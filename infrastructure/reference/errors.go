package reference

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrSourceNotFound  = errors.New("reference source not found")
	ErrColumnNotFound  = errors.New("reference column not found")
	ErrAmbiguousColumn = errors.New("ambiguous reference column")
	ErrUnreadable      = errors.New("reference source unreadable")
)

// MappingError means the run continues without enrichment. It is never fatal.
type MappingError struct {
	Err        error
	Source     string
	Column     string   // logical column: store, name, city, area or target
	Candidates []string // headers that matched when Err is ErrAmbiguousColumn
	Details    string
}

func (e *MappingError) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Err.Error(), e.Source)
	if e.Column != "" {
		msg += fmt.Sprintf(" (column %s)", e.Column)
	}
	if len(e.Candidates) > 0 {
		msg += fmt.Sprintf(" candidates [%s]", strings.Join(e.Candidates, ", "))
	}
	if e.Details != "" {
		msg += ": " + e.Details
	}
	return msg
}

func (e *MappingError) Unwrap() error {
	return e.Err
}

func newMappingError(err error, source, details string) *MappingError {
	return &MappingError{
		Err:     err,
		Source:  source,
		Details: details,
	}
}
