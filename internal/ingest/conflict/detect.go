// Package conflict surfaces disagreements among translation pairs that share
// the same normalized source text.
package conflict

import (
	"github.com/google/uuid"

	"github.com/styleforge/backend/internal/domain"
)

// targetGroup collects the pairs behind one distinct normalized target text.
type targetGroup struct {
	// representative is the original-case target text of the first pair seen
	// in this subgroup (first-seen wins; not necessarily most frequent).
	representative string
	confidenceSum  float64
	count          int
	sourceFiles    []string
	targetFiles    []string
}

type sourceGroup struct {
	pairs   []domain.TranslationPair
	targets map[string]*targetGroup
	// targetOrder keeps subgroup iteration in first-seen order so detection
	// output is deterministic for a given pair ordering.
	targetOrder []string
}

// Detect groups pairs by normalized source text and, wherever two or more
// distinct normalized target texts exist for one source, emits a
// TranslationConflict. Pairs with a single agreed target produce nothing.
// Conflicts are created unresolved.
func Detect(pairs []domain.TranslationPair) []domain.TranslationConflict {
	groups := make(map[string]*sourceGroup)
	var order []string

	for _, p := range pairs {
		key := domain.NormalizeText(p.SourceText)
		g, ok := groups[key]
		if !ok {
			g = &sourceGroup{targets: make(map[string]*targetGroup)}
			groups[key] = g
			order = append(order, key)
		}
		g.pairs = append(g.pairs, p)

		tkey := domain.NormalizeText(p.TargetText)
		tg, ok := g.targets[tkey]
		if !ok {
			tg = &targetGroup{representative: p.TargetText}
			g.targets[tkey] = tg
			g.targetOrder = append(g.targetOrder, tkey)
		}
		tg.confidenceSum += p.Confidence
		tg.count++
		tg.sourceFiles = appendUnique(tg.sourceFiles, p.SourceFile)
		tg.targetFiles = appendUnique(tg.targetFiles, p.TargetFile)
	}

	var conflicts []domain.TranslationConflict
	for _, key := range order {
		g := groups[key]
		if len(g.targetOrder) < 2 {
			continue
		}

		first := g.pairs[0]
		c := domain.TranslationConflict{
			ID:             uuid.New(),
			SourceText:     key,
			SourceLanguage: first.SourceLanguage,
			TargetLanguage: first.TargetLanguage,
		}
		for _, tkey := range g.targetOrder {
			tg := g.targets[tkey]
			c.Translations = append(c.Translations, domain.CandidateTranslation{
				TargetText:  tg.representative,
				Confidence:  tg.confidenceSum / float64(tg.count),
				Frequency:   tg.count,
				SourceFiles: tg.sourceFiles,
				TargetFiles: tg.targetFiles,
			})
		}
		conflicts = append(conflicts, c)
	}

	return conflicts
}

// appendUnique adds the pointed-to string to list if it is non-nil, non-empty,
// and not already present.
func appendUnique(list []string, s *string) []string {
	if s == nil || *s == "" {
		return list
	}
	for _, existing := range list {
		if existing == *s {
			return list
		}
	}
	return append(list, *s)
}
