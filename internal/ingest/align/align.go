// Package align pairs sentences of segmented source documents against
// segmented target documents and scores each candidate pairing.
package align

import (
	"fmt"
	"strings"
)

// MinConfidence is the discard threshold: alignments scoring at or below it
// are dropped.
const MinConfidence = 0.3

// Document is one segmented file: its name and ordered sentences.
type Document struct {
	File      string
	Sentences []string
}

// Alignment is a hypothesized correspondence between a source-language
// fragment and a target-language fragment.
type Alignment struct {
	SourceText string
	TargetText string
	Confidence float64
	Context    string
	SourceFile string
	TargetFile string
}

// Strategy produces alignments for every (source, target) document pair.
// Implementations must emit output in source-file-major, then
// target-file-major, then sentence-index order, so downstream pair building
// is deterministic.
type Strategy interface {
	Align(sources, targets []Document) []Alignment
}

// Positional aligns sentence i of each source document to sentence i of each
// target document, up to the shorter document's length. It encodes the
// parallel-corpus assumption: uploaded source/target files carry the same
// content in the same order. It is a positional alignment, not a
// content-similarity alignment.
type Positional struct{}

var _ Strategy = Positional{}

// Align implements Strategy.
func (Positional) Align(sources, targets []Document) []Alignment {
	var out []Alignment
	for _, src := range sources {
		for _, tgt := range targets {
			n := min(len(src.Sentences), len(tgt.Sentences))
			for i := range n {
				s, t := src.Sentences[i], tgt.Sentences[i]
				conf := Confidence(s, t)
				if conf <= MinConfidence {
					continue
				}
				out = append(out, Alignment{
					SourceText: s,
					TargetText: t,
					Confidence: conf,
					Context:    fmt.Sprintf("%s -> %s", src.File, tgt.File),
					SourceFile: src.File,
					TargetFile: tgt.File,
				})
			}
		}
	}
	return out
}

// Confidence scores how plausible a sentence pairing is as the mean of the
// character-length ratio and the whitespace-word-count ratio, each
// min/max-normalized into [0,1].
func Confidence(source, target string) float64 {
	lengthRatio := ratio(len([]rune(source)), len([]rune(target)))
	wordRatio := ratio(len(strings.Fields(source)), len(strings.Fields(target)))
	return (lengthRatio + wordRatio) / 2
}

func ratio(a, b int) float64 {
	if a == 0 || b == 0 {
		return 0
	}
	return float64(min(a, b)) / float64(max(a, b))
}
