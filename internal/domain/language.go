package domain

import (
	"strings"

	"golang.org/x/text/language"
)

// ValidateLanguageTag checks that tag is a well-formed BCP 47 language tag
// ("en", "es", "pt-BR"). The tag is NOT canonicalized: styles match language
// pairs by exact string equality, so "en" never matches "en-US".
func ValidateLanguageTag(field, tag string) error {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return NewValidationError(field, "language tag is required")
	}
	if _, err := language.Parse(tag); err != nil {
		return NewValidationError(field, "invalid language tag")
	}
	return nil
}
