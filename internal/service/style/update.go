package style

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/styleforge/backend/internal/domain"
)

// UpdateStyle applies a partial metadata update (name, description,
// isActive). Pair and conflict mutations go through the curation service.
func (s *Service) UpdateStyle(ctx context.Context, input UpdateStyleInput) (*domain.CustomTranslationStyle, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	params := domain.StyleUpdateParams{
		Name:        trimOrNil(input.Name),
		Description: input.Description,
		IsActive:    input.IsActive,
	}

	updated, err := s.styles.Update(ctx, input.StyleID, params)
	if err != nil {
		return nil, fmt.Errorf("update style: %w", err)
	}

	// Toggling is_active changes what the language-pair lookup returns.
	s.cache.InvalidateLanguagePair(ctx, updated.SourceLanguage, updated.TargetLanguage)

	s.log.InfoContext(ctx, "style updated",
		slog.String("style_id", updated.ID.String()),
	)

	return updated, nil
}
