// internal/core/domain/candidates_test.go
package domain

import (
	"testing"

	"crackbench/internal/testutil"
)

func TestCandidateSet_Dedup(t *testing.T) {
	cs := NewCandidateSet("a", "b", "a")
	testutil.AssertEqual(t, cs.Len(), 2, "duplicates collapse")

	testutil.AssertTrue(t, cs.Add("c"), "new candidate")
	testutil.AssertFalse(t, cs.Add("a"), "existing candidate")
	testutil.AssertTrue(t, cs.Contains("c"), "contains")
	testutil.AssertFalse(t, cs.Contains("z"), "missing")
}

func TestCandidateSet_Union(t *testing.T) {
	a := NewCandidateSet("x", "y")
	a.Union(NewCandidateSet("y", "z"))

	testutil.AssertSameStrings(t, a.Sorted(), []string{"x", "y", "z"}, "union")
}

func TestCandidateSet_Clone(t *testing.T) {
	orig := NewCandidateSet("a")
	clone := orig.Clone()
	orig.Add("b")

	testutil.AssertEqual(t, clone.Len(), 1, "clone unaffected by later adds")
	testutil.AssertFalse(t, clone.Contains("b"), "clone isolated")
}

func TestCandidateSet_Sorted(t *testing.T) {
	cs := NewCandidateSet("b", "A", "a", "")
	got := cs.Sorted()

	want := []string{"", "A", "a", "b"}
	for i := range want {
		testutil.AssertEqual(t, got[i], want[i], "lexical order")
	}
}
