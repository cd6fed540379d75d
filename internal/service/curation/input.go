package curation

import (
	"strings"

	"github.com/google/uuid"

	"github.com/styleforge/backend/internal/domain"
)

// AddPairInput holds the parameters for adding a pair to a style.
type AddPairInput struct {
	StyleID    uuid.UUID
	SourceText string
	TargetText string
	Context    string
	Confidence float64
}

// Validate checks all fields and collects all errors.
func (i AddPairInput) Validate() error {
	var errs []domain.FieldError

	if i.StyleID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "style_id", Message: "required"})
	}
	if strings.TrimSpace(i.SourceText) == "" {
		errs = append(errs, domain.FieldError{Field: "sourceText", Message: "required"})
	}
	if strings.TrimSpace(i.TargetText) == "" {
		errs = append(errs, domain.FieldError{Field: "targetText", Message: "required"})
	}
	if i.Confidence < 0 || i.Confidence > 1 {
		errs = append(errs, domain.FieldError{Field: "confidence", Message: "must be between 0 and 1"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// EditPairInput holds the parameters for editing a pair.
// nil fields are left unchanged.
type EditPairInput struct {
	StyleID uuid.UUID
	PairID  uuid.UUID

	SourceText *string
	TargetText *string
	Context    *string
	Confidence *float64
}

// Validate checks all fields and collects all errors.
func (i EditPairInput) Validate() error {
	var errs []domain.FieldError

	if i.StyleID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "style_id", Message: "required"})
	}
	if i.PairID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "pair_id", Message: "required"})
	}
	if i.SourceText == nil && i.TargetText == nil && i.Context == nil && i.Confidence == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.SourceText != nil && strings.TrimSpace(*i.SourceText) == "" {
		errs = append(errs, domain.FieldError{Field: "sourceText", Message: "required"})
	}
	if i.TargetText != nil && strings.TrimSpace(*i.TargetText) == "" {
		errs = append(errs, domain.FieldError{Field: "targetText", Message: "required"})
	}
	if i.Confidence != nil && (*i.Confidence < 0 || *i.Confidence > 1) {
		errs = append(errs, domain.FieldError{Field: "confidence", Message: "must be between 0 and 1"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// RefinePairInput holds the parameters for marking a pair refined.
type RefinePairInput struct {
	StyleID uuid.UUID
	PairID  uuid.UUID
	Reason  string
}

// Validate checks all fields and collects all errors.
func (i RefinePairInput) Validate() error {
	var errs []domain.FieldError

	if i.StyleID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "style_id", Message: "required"})
	}
	if i.PairID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "pair_id", Message: "required"})
	}
	if strings.TrimSpace(i.Reason) == "" {
		errs = append(errs, domain.FieldError{Field: "reason", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ResolveConflictInput holds the parameters for resolving a conflict.
type ResolveConflictInput struct {
	StyleID    uuid.UUID
	ConflictID uuid.UUID
	TargetText string
}

// Validate checks all fields and collects all errors.
func (i ResolveConflictInput) Validate() error {
	var errs []domain.FieldError

	if i.StyleID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "style_id", Message: "required"})
	}
	if i.ConflictID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "conflict_id", Message: "required"})
	}
	if strings.TrimSpace(i.TargetText) == "" {
		errs = append(errs, domain.FieldError{Field: "targetText", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
