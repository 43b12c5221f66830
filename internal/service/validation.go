// Package service implements the user and post rules on top of the repository layer.
package service

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"blogly/internal/models"
)

type fieldRule struct {
	name  string
	label string
	value string
	max   int
}

// validateFields checks presence and rune length of each field and reports every
// failing field at once. Values are trimmed before checking.
func validateFields(rules ...fieldRule) error {
	fields := make(map[string]string)
	for _, r := range rules {
		v := strings.TrimSpace(r.value)
		switch {
		case v == "":
			fields[r.name] = r.label + " is required"
		case r.max > 0 && utf8.RuneCountInString(v) > r.max:
			fields[r.name] = fmt.Sprintf("%s must be at most %d characters", r.label, r.max)
		}
	}
	if len(fields) > 0 {
		return models.NewFieldValidationError(fields)
	}
	return nil
}
