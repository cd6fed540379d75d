// Package segment turns raw file text into sentences, phrases, and words with
// bounded output sizes. All functions are pure: empty input yields empty
// output, never an error, and oversized input is silently capped.
package segment

import (
	"strings"
	"unicode"
)

// Output bounds. The caps protect memory on huge files; excess fragments are
// dropped, not reported.
const (
	MinSentenceLen = 10
	MaxSentences   = 1000

	MinPhraseLen = 5
	MaxPhraseLen = 200
	MaxPhrases   = 2000

	MinWordLen = 3
	MaxWords   = 5000
)

func isSentenceBoundary(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}

func isPhraseBoundary(r rune) bool {
	switch r {
	case ',', ';', ':', '(', ')', '[', ']', '{', '}':
		return true
	}
	return false
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

// Sentences splits text on runs of sentence-ending punctuation, trims each
// fragment, drops fragments shorter than MinSentenceLen runes, and caps the
// result at MaxSentences entries.
func Sentences(text string) []string {
	out := []string{}
	for _, frag := range strings.FieldsFunc(text, isSentenceBoundary) {
		frag = strings.TrimSpace(frag)
		if len([]rune(frag)) < MinSentenceLen {
			continue
		}
		out = append(out, frag)
		if len(out) == MaxSentences {
			break
		}
	}
	return out
}

// Phrases splits each sentence of text further on phrase punctuation and
// brackets, keeping trimmed fragments whose rune length is within
// [MinPhraseLen, MaxPhraseLen], capped at MaxPhrases total.
func Phrases(text string) []string {
	out := []string{}
	for _, sentence := range Sentences(text) {
		for _, frag := range strings.FieldsFunc(sentence, isPhraseBoundary) {
			frag = strings.TrimSpace(frag)
			n := len([]rune(frag))
			if n < MinPhraseLen || n > MaxPhraseLen {
				continue
			}
			out = append(out, frag)
			if len(out) == MaxPhrases {
				return out
			}
		}
	}
	return out
}

// Words lowercases text, splits it on runs of non-word characters, keeps
// tokens longer than two runes, and caps the result at MaxWords.
func Words(text string) []string {
	out := []string{}
	for _, tok := range strings.FieldsFunc(strings.ToLower(text), func(r rune) bool { return !isWordRune(r) }) {
		if len([]rune(tok)) < MinWordLen {
			continue
		}
		out = append(out, tok)
		if len(out) == MaxWords {
			break
		}
	}
	return out
}
