// internal/core/usecases/mutator_test.go
package usecases

import (
	"testing"

	"crackbench/internal/testutil"
)

func TestMutate_Secure(t *testing.T) {
	got := Mutate("secure")

	want := []string{
		"secure", "secure1", "secure123", "secure!", "secure2024", "secure2025",
		"Secure", "Secure1", "Secure123", "Secure!", "Secure2024", "Secure2025",
		"SECURE", "SECURE1", "SECURE123", "SECURE!", "SECURE2024", "SECURE2025",
		"s3cur3", "s3cur3!", "s3cur3123",
	}
	testutil.AssertSameStrings(t, got.Sorted(), want, "mutations of secure")
	testutil.AssertEqual(t, got.Len(), 21, "mutation count")
}

func TestMutate_EmptyPassword(t *testing.T) {
	got := Mutate("")
	testutil.AssertSameStrings(t, got.Sorted(), []string{"", "1", "123", "!", "2024", "2025"}, "empty password")
}

func TestMutate_Leetspeak(t *testing.T) {
	tests := []struct {
		name     string
		password string
		leet     string
	}{
		{"all substitutions", "hello world", "h3ll0 w0rld"},
		{"no cascade", "eao", "3@0"},
		{"uses lowercase form", "PaSSwOrd", "p@ssw0rd"},
		{"nothing to replace", "xyz", "xyz"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Mutate(tt.password)
			testutil.AssertTrue(t, got.Contains(tt.leet), "leet form present")
			testutil.AssertTrue(t, got.Contains(tt.leet+"!"), "leet! form present")
			testutil.AssertTrue(t, got.Contains(tt.leet+"123"), "leet123 form present")
		})
	}
}

func TestMutate_DedupesBaseForms(t *testing.T) {
	// "123" has identical lower, capitalized and upper forms.
	got := Mutate("123")
	testutil.AssertSameStrings(t, got.Sorted(),
		[]string{"123", "1231", "123123", "123!", "1232024", "1232025"},
		"digits collapse to one base form")
}

func TestMutate_AtMost21(t *testing.T) {
	for _, pw := range []string{"a", "Login", "MiXeD", "ñandú", "pass word", "2024"} {
		got := Mutate(pw)
		testutil.AssertTrue(t, got.Len() <= 21, "at most 21 mutations for "+pw)
		testutil.AssertTrue(t, got.Contains(pw+"2025") || got.Contains(capitalize(pw)+"2025"), "suffix applied")
	}
}

func TestMutate_Deterministic(t *testing.T) {
	a := Mutate("Password")
	b := Mutate("Password")
	testutil.AssertSameStrings(t, a.Sorted(), b.Sorted(), "same input, same set")
}

func TestCapitalize(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"secure", "Secure"},
		{"SECURE", "Secure"},
		{"sEcUrE", "Secure"},
		{"ñandú", "Ñandú"},
		{"1abc", "1abc"},
	}
	for _, tt := range tests {
		testutil.AssertEqual(t, capitalize(tt.in), tt.want, "capitalize "+tt.in)
	}
}
