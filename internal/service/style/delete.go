package style

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/styleforge/backend/internal/domain"
)

// DeleteStyle removes a style permanently. Deleting an unknown id is not an
// error: the desired end state is already true.
func (s *Service) DeleteStyle(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return domain.NewValidationError("style_id", "required")
	}

	// Fetch first so the language-pair cache entry can be invalidated.
	existing, err := s.styles.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("get style: %w", err)
	}

	if err := s.styles.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete style: %w", err)
	}

	s.cache.InvalidateLanguagePair(ctx, existing.SourceLanguage, existing.TargetLanguage)

	s.log.InfoContext(ctx, "style deleted",
		slog.String("style_id", id.String()),
	)

	return nil
}
