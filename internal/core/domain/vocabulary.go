// internal/core/domain/vocabulary.go
package domain

import (
	"sort"
	"strings"
)

// Vocabulary is a character-level index fitted on a reference corpus.
//
// Index 0 is reserved for padding and never maps to a character. Characters are
// lowercased before counting; indices are assigned by descending frequency,
// ties broken by first appearance. A Vocabulary is read-only once
// built and safe for concurrent use.
type Vocabulary struct {
	index map[rune]int
	chars []rune // chars[i-1] is the character for index i
}

// NewVocabulary fits a vocabulary on the given lines.
func NewVocabulary(lines []string) *Vocabulary {
	v := &Vocabulary{index: make(map[rune]int)}

	counts := make(map[rune]int)
	var order []rune
	for _, line := range lines {
		for _, r := range strings.ToLower(line) {
			if _, seen := counts[r]; !seen {
				order = append(order, r)
			}
			counts[r]++
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	v.chars = order
	for i, r := range order {
		v.index[r] = i + 1
	}
	return v
}

// Size returns the number of known characters (padding excluded).
func (v *Vocabulary) Size() int {
	return len(v.chars)
}

// Char maps an index back to its character. Padding and out-of-range indices
// report false.
func (v *Vocabulary) Char(idx int) (string, bool) {
	if idx <= 0 || idx > len(v.chars) {
		return "", false
	}
	return string(v.chars[idx-1]), true
}

// Encode converts text into indices, dropping unknown characters.
func (v *Vocabulary) Encode(text string) []int {
	out := make([]int, 0, len(text))
	for _, r := range strings.ToLower(text) {
		if idx, ok := v.index[r]; ok {
			out = append(out, idx)
		}
	}
	return out
}

// Window encodes text and returns exactly size indices: the last size encoded
// characters, left-padded with zeros when shorter.
func (v *Vocabulary) Window(text string, size int) []int {
	if size <= 0 {
		return []int{}
	}
	encoded := v.Encode(text)
	if len(encoded) > size {
		encoded = encoded[len(encoded)-size:]
	}
	window := make([]int, size)
	copy(window[size-len(encoded):], encoded)
	return window
}
