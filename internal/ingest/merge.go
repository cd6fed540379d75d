package ingest

import (
	"github.com/styleforge/backend/internal/domain"
)

// MergeDuplicatePairs collapses pairs that share a (normalized source,
// normalized target) key into a single record with summed frequency and
// mean confidence. The first-seen record keeps its id, original-case texts,
// context, and provenance; later duplicates only contribute their counts.
// Output preserves first-seen order.
func MergeDuplicatePairs(pairs []domain.TranslationPair) []domain.TranslationPair {
	type bucket struct {
		index         int
		confidenceSum float64
		count         int
	}

	merged := make([]domain.TranslationPair, 0, len(pairs))
	buckets := make(map[[2]string]*bucket)

	for _, p := range pairs {
		key := [2]string{domain.NormalizeText(p.SourceText), domain.NormalizeText(p.TargetText)}
		b, ok := buckets[key]
		if !ok {
			merged = append(merged, p)
			buckets[key] = &bucket{index: len(merged) - 1, confidenceSum: p.Confidence, count: 1}
			continue
		}
		b.confidenceSum += p.Confidence
		b.count++
		merged[b.index].Frequency += p.Frequency
		merged[b.index].Confidence = b.confidenceSum / float64(b.count)
	}

	return merged
}
