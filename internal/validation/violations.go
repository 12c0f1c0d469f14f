// Package validation provides declarative per-endpoint payload validation.
// Rule sets never stop at the first failure: every violated-field message is
// collected and reported in a single error.
package validation

import (
	"strings"

	"recipebox/internal/models"
)

// Violations accumulates rule failures for one payload.
type Violations struct {
	messages []string
}

// Add records a violation message.
func (v *Violations) Add(message string) {
	v.messages = append(v.messages, message)
}

// Empty reports whether no rule failed.
func (v *Violations) Empty() bool {
	return len(v.messages) == 0
}

// Err returns nil when no rule failed, otherwise a single validation error
// whose message joins every violation.
func (v *Violations) Err() error {
	if v.Empty() {
		return nil
	}
	return models.NewValidationError(strings.Join(v.messages, ", "))
}
