package domain

// Statistics are aggregate quality metrics for a style, always a pure
// function of the pair and conflict sets at the moment of last recomputation.
type Statistics struct {
	TotalPairs        int     `json:"totalPairs"`
	TotalConflicts    int     `json:"totalConflicts"`
	ResolvedConflicts int     `json:"resolvedConflicts"`
	RefinedPairs      int     `json:"refinedPairs"`
	Accuracy          float64 `json:"accuracy"`
}

// ComputeStatistics derives Statistics from the given pairs and conflicts.
//
// Accuracy starts at 1.0 with no conflicts, drops by 1/totalPairs per
// unresolved conflict, and is restored as conflicts are resolved:
//
//	accuracy = (totalPairs - totalConflicts + resolvedConflicts) / totalPairs
//
// With no pairs at all, accuracy is 0.
func ComputeStatistics(pairs []TranslationPair, conflicts []TranslationConflict) Statistics {
	stats := Statistics{
		TotalPairs:     len(pairs),
		TotalConflicts: len(conflicts),
	}

	for i := range conflicts {
		if conflicts[i].IsResolved {
			stats.ResolvedConflicts++
		}
	}
	for i := range pairs {
		if pairs[i].IsRefined {
			stats.RefinedPairs++
		}
	}

	if stats.TotalPairs > 0 {
		stats.Accuracy = float64(stats.TotalPairs-stats.TotalConflicts+stats.ResolvedConflicts) / float64(stats.TotalPairs)
	}

	return stats
}
