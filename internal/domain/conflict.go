package domain

import (
	"github.com/google/uuid"
)

// CandidateTranslation is one distinct target text recorded for a conflicting
// source text, aggregated over the pairs that produced it.
type CandidateTranslation struct {
	TargetText string `json:"targetText"`
	// Confidence is the arithmetic mean over the contributing pairs.
	Confidence float64 `json:"confidence"`
	// Frequency is the number of contributing pairs.
	Frequency   int      `json:"frequency"`
	SourceFiles []string `json:"sourceFiles,omitempty"`
	TargetFiles []string `json:"targetFiles,omitempty"`
}

// TranslationConflict records a disagreement: two or more distinct normalized
// target texts mapped to the same normalized source text.
type TranslationConflict struct {
	ID             uuid.UUID `json:"id"`
	SourceText     string    `json:"sourceText"`
	SourceLanguage string    `json:"sourceLanguage"`
	TargetLanguage string    `json:"targetLanguage"`

	Translations []CandidateTranslation `json:"translations"`

	ResolvedTranslation *string `json:"resolvedTranslation,omitempty"`
	IsResolved          bool    `json:"isResolved"`
}

// HasCandidate reports whether targetText is one of the conflict's candidate
// target texts (exact, original-case comparison).
func (c *TranslationConflict) HasCandidate(targetText string) bool {
	for _, t := range c.Translations {
		if t.TargetText == targetText {
			return true
		}
	}
	return false
}

// Resolve marks the conflict resolved with the chosen candidate text.
// Resolving an already-resolved conflict with the same text is a no-op,
// so the operation is idempotent.
func (c *TranslationConflict) Resolve(targetText string) error {
	if !c.HasCandidate(targetText) {
		return NewValidationError("resolvedTranslation", "must be one of the conflict's candidate translations")
	}
	c.ResolvedTranslation = &targetText
	c.IsResolved = true
	return nil
}

// Unresolve clears the resolution, returning the conflict to the unresolved
// state. There is no terminal state; resolve/unresolve may toggle freely.
func (c *TranslationConflict) Unresolve() {
	c.ResolvedTranslation = nil
	c.IsResolved = false
}
