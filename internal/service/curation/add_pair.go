package curation

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/styleforge/backend/internal/domain"
)

// AddPair appends a hand-written pair to a style. The pair inherits the
// style's language direction; frequency starts at 1 and no conflict
// detection is re-run (the curator is the authority here).
func (s *Service) AddPair(ctx context.Context, input AddPairInput) (*domain.TranslationPair, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var added *domain.TranslationPair

	style, err := s.mutate(ctx, input.StyleID, func(style *domain.CustomTranslationStyle) error {
		now := time.Now().UTC()
		pair := domain.TranslationPair{
			ID:             uuid.New(),
			SourceText:     strings.TrimSpace(input.SourceText),
			TargetText:     strings.TrimSpace(input.TargetText),
			SourceLanguage: style.SourceLanguage,
			TargetLanguage: style.TargetLanguage,
			Context:        strings.TrimSpace(input.Context),
			Confidence:     input.Confidence,
			Frequency:      1,
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		if err := pair.Validate(); err != nil {
			return err
		}

		style.TranslationPairs = append(style.TranslationPairs, pair)
		added = &pair
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "pair added",
		slog.String("style_id", style.ID.String()),
		slog.String("pair_id", added.ID.String()),
	)

	return added, nil
}
