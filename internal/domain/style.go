package domain

import (
	"time"

	"github.com/google/uuid"
)

// CustomTranslationStyle is the top-level aggregate: a named, persisted bundle
// of translation pairs, conflicts, and statistics for one source→target
// language direction. A style exclusively owns its pairs and conflicts;
// nothing is shared across styles.
type CustomTranslationStyle struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`

	SourceLanguage string `json:"sourceLanguage"`
	TargetLanguage string `json:"targetLanguage"`

	TranslationPairs []TranslationPair     `json:"translationPairs"`
	Conflicts        []TranslationConflict `json:"conflicts"`
	Statistics       Statistics            `json:"statistics"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	// IsActive gates lookup: only active styles are returned by
	// language-pair queries.
	IsActive bool `json:"isActive"`
}

// StyleUpdateParams carries the optional metadata fields for a partial style
// update. nil means "leave unchanged"; for Description, a pointer to ""
// means "clear".
type StyleUpdateParams struct {
	Name        *string
	Description *string
	IsActive    *bool
}

// FindPair returns a pointer into TranslationPairs for the given id,
// or nil if the style has no such pair.
func (s *CustomTranslationStyle) FindPair(id uuid.UUID) *TranslationPair {
	for i := range s.TranslationPairs {
		if s.TranslationPairs[i].ID == id {
			return &s.TranslationPairs[i]
		}
	}
	return nil
}

// FindConflict returns a pointer into Conflicts for the given id,
// or nil if the style has no such conflict.
func (s *CustomTranslationStyle) FindConflict(id uuid.UUID) *TranslationConflict {
	for i := range s.Conflicts {
		if s.Conflicts[i].ID == id {
			return &s.Conflicts[i]
		}
	}
	return nil
}

// RemovePair deletes the pair with the given id from the style.
// Returns false if the pair was not present. Conflicts are deliberately NOT
// recomputed here: removing the last contributing pair of a conflict leaves
// the conflict in place (the curator resolves or the caller rebuilds).
func (s *CustomTranslationStyle) RemovePair(id uuid.UUID) bool {
	for i := range s.TranslationPairs {
		if s.TranslationPairs[i].ID == id {
			s.TranslationPairs = append(s.TranslationPairs[:i], s.TranslationPairs[i+1:]...)
			return true
		}
	}
	return false
}

// RecomputeStatistics rederives Statistics from the current pair and conflict
// sets. Every mutating operation calls this before saving, so persisted
// statistics are never stale.
func (s *CustomTranslationStyle) RecomputeStatistics() {
	s.Statistics = ComputeStatistics(s.TranslationPairs, s.Conflicts)
}
