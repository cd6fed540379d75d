package curation

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/styleforge/backend/internal/domain"
)

// ResolveConflict picks a winning target text for a conflict. The chosen
// text must equal one of the conflict's candidates; resolving an already
// resolved conflict to the same text is a no-op.
func (s *Service) ResolveConflict(ctx context.Context, input ResolveConflictInput) (*domain.TranslationConflict, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var resolved *domain.TranslationConflict

	_, err := s.mutate(ctx, input.StyleID, func(style *domain.CustomTranslationStyle) error {
		conflict := style.FindConflict(input.ConflictID)
		if conflict == nil {
			return fmt.Errorf("conflict %s: %w", input.ConflictID, domain.ErrNotFound)
		}

		if err := conflict.Resolve(input.TargetText); err != nil {
			return err
		}

		resolved = conflict
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "conflict resolved",
		slog.String("style_id", input.StyleID.String()),
		slog.String("conflict_id", input.ConflictID.String()),
	)

	result := *resolved
	return &result, nil
}

// UnresolveConflict reverts a conflict to its unresolved state. Unresolving
// an already unresolved conflict is a no-op.
func (s *Service) UnresolveConflict(ctx context.Context, styleID, conflictID uuid.UUID) (*domain.TranslationConflict, error) {
	if conflictID == uuid.Nil {
		return nil, domain.NewValidationError("conflict_id", "required")
	}

	var unresolved *domain.TranslationConflict

	_, err := s.mutate(ctx, styleID, func(style *domain.CustomTranslationStyle) error {
		conflict := style.FindConflict(conflictID)
		if conflict == nil {
			return fmt.Errorf("conflict %s: %w", conflictID, domain.ErrNotFound)
		}

		conflict.Unresolve()
		unresolved = conflict
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "conflict unresolved",
		slog.String("style_id", styleID.String()),
		slog.String("conflict_id", conflictID.String()),
	)

	result := *unresolved
	return &result, nil
}
