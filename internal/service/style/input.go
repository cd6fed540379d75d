package style

import (
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/styleforge/backend/internal/domain"
)

// FileInput is one uploaded file: a name for provenance tracking plus its
// full UTF-8 content.
type FileInput struct {
	Name    string
	Content string
}

// ProcessFilesInput holds the parameters for building a style from parallel
// source/target files.
type ProcessFilesInput struct {
	Name        string
	Description *string

	SourceLanguage string
	TargetLanguage string

	SourceFiles []FileInput
	TargetFiles []FileInput
}

// Validate checks all fields and collects all errors.
func (i ProcessFilesInput) Validate() error {
	var errs []domain.FieldError

	name := strings.TrimSpace(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if len(name) > 100 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 100 characters"})
	}

	for _, check := range []struct {
		field string
		tag   string
	}{
		{"sourceLanguage", i.SourceLanguage},
		{"targetLanguage", i.TargetLanguage},
	} {
		if err := domain.ValidateLanguageTag(check.field, check.tag); err != nil {
			var vErr *domain.ValidationError
			if errors.As(err, &vErr) {
				errs = append(errs, vErr.Errors...)
			}
		}
	}

	if len(i.SourceFiles) == 0 {
		errs = append(errs, domain.FieldError{Field: "sourceFiles", Message: "at least one file required"})
	}
	if len(i.TargetFiles) == 0 {
		errs = append(errs, domain.FieldError{Field: "targetFiles", Message: "at least one file required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateStyleInput holds the parameters for a partial style metadata update.
type UpdateStyleInput struct {
	StyleID     uuid.UUID
	Name        *string
	Description *string // nil = don't change; ptr("") = clear
	IsActive    *bool
}

// Validate checks all fields and collects all errors.
func (i UpdateStyleInput) Validate() error {
	var errs []domain.FieldError

	if i.StyleID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "style_id", Message: "required"})
	}
	if i.Name == nil && i.Description == nil && i.IsActive == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Name != nil {
		name := strings.TrimSpace(*i.Name)
		if name == "" {
			errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
		}
		if len(name) > 100 {
			errs = append(errs, domain.FieldError{Field: "name", Message: "max 100 characters"})
		}
	}
	if i.Description != nil && len(*i.Description) > 500 {
		errs = append(errs, domain.FieldError{Field: "description", Message: "max 500 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
