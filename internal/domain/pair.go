package domain

import (
	"time"

	"github.com/google/uuid"
)

// TranslationPair is one aligned source/target text fragment.
// JSON tags define the persisted document shape; optional fields are
// pointers so loaders tolerate their absence.
type TranslationPair struct {
	ID             uuid.UUID `json:"id"`
	SourceText     string    `json:"sourceText"`
	TargetText     string    `json:"targetText"`
	SourceLanguage string    `json:"sourceLanguage"`
	TargetLanguage string    `json:"targetLanguage"`

	// Context records where the pair came from, e.g. "fileA.txt -> fileB.txt".
	Context    string  `json:"context,omitempty"`
	Confidence float64 `json:"confidence"`
	Frequency  int     `json:"frequency"`
	SourceFile *string `json:"sourceFile,omitempty"`
	TargetFile *string `json:"targetFile,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	IsRefined         bool               `json:"isRefined"`
	RefinementHistory []RefinementRecord `json:"refinementHistory,omitempty"`
}

// Validate checks the pair invariants: non-empty texts after trimming and
// confidence within [0,1].
func (p *TranslationPair) Validate() error {
	var errs []FieldError
	if NormalizeText(p.SourceText) == "" {
		errs = append(errs, FieldError{Field: "sourceText", Message: "must not be empty"})
	}
	if NormalizeText(p.TargetText) == "" {
		errs = append(errs, FieldError{Field: "targetText", Message: "must not be empty"})
	}
	if p.Confidence < 0 || p.Confidence > 1 {
		errs = append(errs, FieldError{Field: "confidence", Message: "must be within [0,1]"})
	}
	if p.Frequency < 1 {
		errs = append(errs, FieldError{Field: "frequency", Message: "must be a positive integer"})
	}
	if len(errs) > 0 {
		return NewValidationErrors(errs)
	}
	return nil
}

// RefinementRecord is an immutable audit entry attached to a pair.
// Records are append-only: never edited, never removed.
type RefinementRecord struct {
	ID           uuid.UUID `json:"id"`
	OriginalText string    `json:"originalText"`
	RefinedText  string    `json:"refinedText"`
	Reason       string    `json:"reason"`
	RefinedAt    time.Time `json:"refinedAt"`
	RefinedBy    *string   `json:"refinedBy,omitempty"`
}
