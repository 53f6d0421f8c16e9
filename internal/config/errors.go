package config

import (
	"fmt"
	"strings"
)

// FieldError is one schema violation, located by a dot-separated path into
// the input document.
type FieldError struct {
	Path    string
	Message string
}

func (e FieldError) String() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

// ValidationErrors is the full set of schema violations found in one input
// document. It is the only error type intended for end users; every stage
// past validation is total and does not produce input errors.
type ValidationErrors []FieldError

func (e ValidationErrors) Error() string {
	lines := make([]string, len(e))
	for i, fe := range e {
		lines[i] = fe.String()
	}
	return fmt.Sprintf("input validation failed:\n  - %s", strings.Join(lines, "\n  - "))
}
