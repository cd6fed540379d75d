package curation

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/styleforge/backend/internal/domain"
	"github.com/styleforge/backend/pkg/ctxutil"
)

// RefinePair marks a pair as reviewed and appends an immutable refinement
// record. Refinement is an annotation, not a rewrite: the record captures the
// current target text as both original and refined baseline, and the pair's
// texts are untouched. The curator identity, when present in the context, is
// recorded as RefinedBy.
func (s *Service) RefinePair(ctx context.Context, input RefinePairInput) (*domain.TranslationPair, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var refined *domain.TranslationPair

	_, err := s.mutate(ctx, input.StyleID, func(style *domain.CustomTranslationStyle) error {
		pair := style.FindPair(input.PairID)
		if pair == nil {
			return fmt.Errorf("pair %s: %w", input.PairID, domain.ErrNotFound)
		}

		record := domain.RefinementRecord{
			ID:           uuid.New(),
			OriginalText: pair.TargetText,
			RefinedText:  pair.TargetText,
			Reason:       strings.TrimSpace(input.Reason),
			RefinedAt:    time.Now().UTC(),
		}
		if curator, ok := ctxutil.CuratorFromCtx(ctx); ok {
			record.RefinedBy = &curator
		}

		pair.RefinementHistory = append(pair.RefinementHistory, record)
		pair.IsRefined = true
		pair.UpdatedAt = record.RefinedAt

		refined = pair
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "pair refined",
		slog.String("style_id", input.StyleID.String()),
		slog.String("pair_id", input.PairID.String()),
	)

	result := *refined
	return &result, nil
}
