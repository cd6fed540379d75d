package ingest

import (
	"time"

	"github.com/google/uuid"

	"github.com/styleforge/backend/internal/domain"
	"github.com/styleforge/backend/internal/ingest/align"
)

// buildPairs maps each surviving alignment 1:1 to a TranslationPair with
// frequency 1 and a fresh id. No deduplication happens here; identical
// (source, target) texts arriving from different file combinations become
// separate records (see MergeDuplicatePairs for the optional post-pass).
func buildPairs(alignments []align.Alignment, sourceLang, targetLang string, now time.Time) []domain.TranslationPair {
	pairs := make([]domain.TranslationPair, 0, len(alignments))
	for _, a := range alignments {
		p := domain.TranslationPair{
			ID:             uuid.New(),
			SourceText:     a.SourceText,
			TargetText:     a.TargetText,
			SourceLanguage: sourceLang,
			TargetLanguage: targetLang,
			Context:        a.Context,
			Confidence:     a.Confidence,
			Frequency:      1,
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		if a.SourceFile != "" {
			sf := a.SourceFile
			p.SourceFile = &sf
		}
		if a.TargetFile != "" {
			tf := a.TargetFile
			p.TargetFile = &tf
		}
		pairs = append(pairs, p)
	}
	return pairs
}
