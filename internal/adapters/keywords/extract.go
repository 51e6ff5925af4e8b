// Package keywords implements ports.KeywordSource backends that read a
// target page and rank its most frequent words.
package keywords

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"crackbench/internal/core/domain"
)

// Extraction defaults.
const (
	DefaultMinLen      = 4
	DefaultMaxLen      = 10
	DefaultMaxKeywords = 5
)

// ExtractOptions controla la tokenización.
type ExtractOptions struct {
	MinLen int // runes
	MaxLen int // runes
	Max    int // keywords returned
}

func (o ExtractOptions) withDefaults() ExtractOptions {
	if o.MinLen <= 0 {
		o.MinLen = DefaultMinLen
	}
	if o.MaxLen < o.MinLen {
		o.MaxLen = DefaultMaxLen
		if o.MaxLen < o.MinLen {
			o.MaxLen = o.MinLen
		}
	}
	if o.Max <= 0 {
		o.Max = DefaultMaxKeywords
	}
	return o
}

// Extract lowercases text, splits it into maximal runs of word characters
// (letters, digits, underscore) and keeps runs whose length is within
// [MinLen, MaxLen]. Longer runs are dropped whole, never truncated. The
// result holds the Max most frequent words; ties keep first-appearance order.
func Extract(text string, opts ExtractOptions) []domain.SeedKeyword {
	opts = opts.withDefaults()

	counts := make(map[string]int)
	var order []string

	for _, word := range strings.FieldsFunc(strings.ToLower(text), notWordRune) {
		n := utf8.RuneCountInString(word)
		if n < opts.MinLen || n > opts.MaxLen {
			continue
		}
		if counts[word] == 0 {
			order = append(order, word)
		}
		counts[word]++
	}

	ranked := order
	sort.SliceStable(ranked, func(i, j int) bool {
		return counts[ranked[i]] > counts[ranked[j]]
	})

	if len(ranked) > opts.Max {
		ranked = ranked[:opts.Max]
	}
	out := make([]domain.SeedKeyword, len(ranked))
	for i, w := range ranked {
		out[i] = domain.SeedKeyword(w)
	}
	return out
}

func notWordRune(r rune) bool {
	return !(r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.Is(unicode.Mn, r))
}
