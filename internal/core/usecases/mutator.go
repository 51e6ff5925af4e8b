// internal/core/usecases/mutator.go
package usecases

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"crackbench/internal/core/domain"
)

// mutationSuffixes se agregan a cada forma base; "" conserva la forma sin sufijo.
var mutationSuffixes = []string{"", "1", "123", "!", "2024", "2025"}

// leetReplacer sustituye todas las ocurrencias en una sola pasada, así que las
// sustituciones nunca se encadenan.
var leetReplacer = strings.NewReplacer("e", "3", "a", "@", "o", "0")

// Mutate expands one password into its human-style variants: the lowercase,
// capitalized and uppercase forms, each with every suffix, plus the leetspeak
// form of the lowercase password alone, with "!" and with "123".
func Mutate(password string) domain.CandidateSet {
	out := domain.NewCandidateSet()

	lower := strings.ToLower(password)
	for _, base := range []string{lower, capitalize(password), strings.ToUpper(password)} {
		for _, suffix := range mutationSuffixes {
			out.Add(base + suffix)
		}
	}

	leet := leetReplacer.Replace(lower)
	out.Add(leet)
	out.Add(leet + "!")
	out.Add(leet + "123")

	return out
}

// capitalize pone en mayúscula la primera letra y el resto en minúscula.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	first, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToTitle(first)) + strings.ToLower(s[size:])
}
