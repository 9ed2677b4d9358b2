package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound signals a stale reference: the id no longer resolves to a
	// stored record.
	ErrNotFound = errors.New("record not found")

	// ErrEmptyInput signals a required free-text input that was blank after
	// trimming.
	ErrEmptyInput = errors.New("required input is empty")
)

// DocumentIssuesError is returned when the completeness gate fails. The
// payload must reach the acting user verbatim so they know what to fix.
type DocumentIssuesError struct {
	Issues DocumentIssues
}

func (e *DocumentIssuesError) Error() string {
	var parts []string
	if len(e.Issues.Missing) > 0 {
		parts = append(parts, fmt.Sprintf("missing: %s", strings.Join(e.Issues.Missing, ", ")))
	}
	if len(e.Issues.NonConforming) > 0 {
		parts = append(parts, fmt.Sprintf("non-conforming: %s", strings.Join(e.Issues.NonConforming, ", ")))
	}
	return "document issues: " + strings.Join(parts, "; ")
}
