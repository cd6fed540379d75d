package curation

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/styleforge/backend/internal/domain"
)

// EditPair modifies a pair's texts, context or confidence in place and stamps
// its UpdatedAt. Missing pair id inside a found style is ErrNotFound.
func (s *Service) EditPair(ctx context.Context, input EditPairInput) (*domain.TranslationPair, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var edited *domain.TranslationPair

	_, err := s.mutate(ctx, input.StyleID, func(style *domain.CustomTranslationStyle) error {
		pair := style.FindPair(input.PairID)
		if pair == nil {
			return fmt.Errorf("pair %s: %w", input.PairID, domain.ErrNotFound)
		}

		if input.SourceText != nil {
			pair.SourceText = strings.TrimSpace(*input.SourceText)
		}
		if input.TargetText != nil {
			pair.TargetText = strings.TrimSpace(*input.TargetText)
		}
		if input.Context != nil {
			pair.Context = strings.TrimSpace(*input.Context)
		}
		if input.Confidence != nil {
			pair.Confidence = *input.Confidence
		}
		pair.UpdatedAt = time.Now().UTC()

		if err := pair.Validate(); err != nil {
			return err
		}

		edited = pair
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "pair edited",
		slog.String("style_id", input.StyleID.String()),
		slog.String("pair_id", input.PairID.String()),
	)

	// edited points into the style loaded by mutate; copy for the caller.
	result := *edited
	return &result, nil
}
