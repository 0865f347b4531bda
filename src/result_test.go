package idmatch

import (
	"sort"
	"testing"
)

func matchAll(t *testing.T, queryText string, candidateTexts ...string) []Result {
	t.Helper()
	query := makeWord(t, queryText)
	results := make([]Result, 0, len(candidateTexts))
	for _, text := range candidateTexts {
		result := makeCandidate(t, text).QueryMatchResult(query)
		if !result.IsSubsequence() {
			t.Fatalf("%q does not match %q", queryText, text)
		}
		results = append(results, result)
	}
	return results
}

func assertRankedOrder(t *testing.T, queryText string, candidateTexts ...string) {
	t.Helper()
	results := matchAll(t, queryText, candidateTexts...)
	for i := 0; i+1 < len(results); i++ {
		if !results[i].Less(results[i+1]) {
			t.Errorf("query %q: %q must rank before %q",
				queryText, candidateTexts[i], candidateTexts[i+1])
		}
		if results[i+1].Less(results[i]) {
			t.Errorf("query %q: %q must not rank before %q",
				queryText, candidateTexts[i+1], candidateTexts[i])
		}
	}
}

func TestResultOrderFirstCharacter(t *testing.T) {
	assertRankedOrder(t, "fbr", "foobar", "afoobar")
}

func TestResultOrderWordBoundaryCoverage(t *testing.T) {
	assertRankedOrder(t, "fbq", "FooBarQux", "FBaqux")
	assertRankedOrder(t, "fbq", "FooBarQux", "FooBarQuxZaa")
	assertRankedOrder(t, "fBr", "fooBaR", "fooBar")
}

func TestResultOrderPrefix(t *testing.T) {
	assertRankedOrder(t, "foo", "foobar", "afoobar")
}

func TestResultOrderIndexSum(t *testing.T) {
	assertRankedOrder(t, "fbq", "FaBarQux", "FooBarQux")
}

func TestResultOrderShorterAndLowercase(t *testing.T) {
	assertRankedOrder(t, "std", "stdin", "STDIN_FILENO")
	assertRankedOrder(t, "fo", "font-face", "font-family")
	assertRankedOrder(t, "co", "CompleterT", "CompleterTest")
}

func TestResultOrderCaseSwapped(t *testing.T) {
	assertRankedOrder(t, "foo", "foo", "Foo")
}

func TestResultOrderEmptyQuery(t *testing.T) {
	// With an empty query the order is lexicographic on the
	// case-swapped text, which puts lowercase first.
	assertRankedOrder(t, "", "bar", "foo")
	assertRankedOrder(t, "", "foo", "Foo")
}

func TestResultOrderIsIrreflexive(t *testing.T) {
	for _, result := range matchAll(t, "fb", "foobar", "fooBar", "FooBar", "f_b") {
		if result.Less(result) {
			t.Errorf("%q: a result must not rank before itself", result.Text())
		}
	}
}

// The order is a strict weak order: it must be transitive over any
// triple from the pool.
func TestResultOrderIsTransitive(t *testing.T) {
	results := matchAll(t, "fb",
		"foobar", "fooBar", "FooBar", "f_b", "fxxxb", "afb", "FB", "fabab")
	for _, a := range results {
		for _, b := range results {
			for _, c := range results {
				if a.Less(b) && b.Less(c) && !a.Less(c) {
					t.Fatalf("order is not transitive over %q, %q, %q",
						a.Text(), b.Text(), c.Text())
				}
			}
		}
	}
}

func TestPartialSortTopK(t *testing.T) {
	texts := []string{"foobar", "afoobar", "fooBar", "f_b", "fxxxb", "afb", "fabab"}
	full := PartialSort(matchAll(t, "fb", texts...), 0)
	top := PartialSort(matchAll(t, "fb", texts...), 3)

	if len(full) != len(texts) {
		t.Fatalf("Full sort must keep all %d results", len(texts))
	}
	if len(top) != 3 {
		t.Fatalf("Partial sort must keep 3 results, got %d", len(top))
	}
	for i := range top {
		if top[i].Text() != full[i].Text() {
			t.Errorf("Partial sort differs from full sort at %d: %q vs %q",
				i, top[i].Text(), full[i].Text())
		}
	}
}

func TestPartialSortLargerThanInput(t *testing.T) {
	results := PartialSort(matchAll(t, "fb", "foobar", "fooBar"), 10)
	if len(results) != 2 {
		t.Fatalf("Expected 2 results, got %d", len(results))
	}
}

func TestPartialSortAgreesWithSort(t *testing.T) {
	texts := []string{"foobar", "afoobar", "fooBar", "f_b", "fxxxb", "afb", "fabab",
		"FB", "fab", "fb", "fxb", "ffbb"}
	expected := matchAll(t, "fb", texts...)
	sort.Sort(ByRelevance(expected))
	for k := 1; k <= len(texts); k++ {
		top := PartialSort(matchAll(t, "fb", texts...), k)
		if len(top) != k {
			t.Fatalf("k=%d: got %d results", k, len(top))
		}
		for i := range top {
			if top[i].Text() != expected[i].Text() {
				t.Errorf("k=%d: position %d is %q, expected %q",
					k, i, top[i].Text(), expected[i].Text())
			}
		}
	}
}
