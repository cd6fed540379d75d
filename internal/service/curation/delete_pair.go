package curation

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/styleforge/backend/internal/domain"
)

// DeletePair removes a pair from a style. Conflicts are deliberately NOT
// recomputed: a conflict whose last contributing pair is deleted stays until
// the curator resolves it or the style is rebuilt. Statistics still reflect
// the new pair count.
func (s *Service) DeletePair(ctx context.Context, styleID, pairID uuid.UUID) error {
	if pairID == uuid.Nil {
		return domain.NewValidationError("pair_id", "required")
	}

	_, err := s.mutate(ctx, styleID, func(style *domain.CustomTranslationStyle) error {
		if !style.RemovePair(pairID) {
			return fmt.Errorf("pair %s: %w", pairID, domain.ErrNotFound)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "pair deleted",
		slog.String("style_id", styleID.String()),
		slog.String("pair_id", pairID.String()),
	)

	return nil
}
