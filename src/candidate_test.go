package idmatch

import (
	"strings"
	"testing"
)

func makeCandidate(t *testing.T, text string) *Candidate {
	t.Helper()
	candidates, err := internCandidates(candidateRepository, []string{text})
	if err != nil {
		t.Fatalf("building candidate %q failed: %s", text, err)
	}
	return candidates[0]
}

func assertWordBoundaryChars(t *testing.T, text string, expected string) {
	t.Helper()
	var boundary []string
	for _, character := range makeCandidate(t, text).WordBoundaryChars() {
		boundary = append(boundary, character.Normal())
	}
	if joined := strings.Join(boundary, ""); joined != expected {
		t.Errorf("%q: word boundary characters %q (expected %q)", text, joined, expected)
	}
}

func TestWordBoundaryCharsSimple(t *testing.T) {
	assertWordBoundaryChars(t, "simple", "s")
	assertWordBoundaryChars(t, "simpleCase", "sC")
	assertWordBoundaryChars(t, "simple_case", "sc")
	assertWordBoundaryChars(t, "simple-case", "sc")
	assertWordBoundaryChars(t, "simple.case", "sc")
}

func TestWordBoundaryCharsPunctuationStart(t *testing.T) {
	assertWordBoundaryChars(t, "_simple", "s")
	assertWordBoundaryChars(t, "___simple", "s")
	assertWordBoundaryChars(t, ".;/simple", "s")
	assertWordBoundaryChars(t, "-zoo-foo", "zf")
}

func TestWordBoundaryCharsPunctuationStartButFirstDigit(t *testing.T) {
	assertWordBoundaryChars(t, "_1simple", "")
	assertWordBoundaryChars(t, "_1simPle", "P")
}

func TestWordBoundaryCharsUppercaseSequence(t *testing.T) {
	assertWordBoundaryChars(t, "STDIN_FILENO", "SF")
	assertWordBoundaryChars(t, "SIMPLE", "S")
	assertWordBoundaryChars(t, "simpleSTUFF", "sS")
	assertWordBoundaryChars(t, "simpleSTUFFfoo", "sS")
	assertWordBoundaryChars(t, "simpleSTUFF_Foo", "sSF")
	assertWordBoundaryChars(t, "simpleSTUFF_foo", "sSf")
	assertWordBoundaryChars(t, "σimpleΣTUFF…φoo", "σΣφ")
}

func TestCandidateCaseSwappedText(t *testing.T) {
	tests := []struct {
		text    string
		swapped string
	}{
		{"foo", "FOO"},
		{"Foo", "fOO"},
		{"fooBaR", "FOObAr"},
		{"foo_bar", "FOO_BAR"},
	}
	for _, test := range tests {
		if swapped := makeCandidate(t, test.text).CaseSwappedText(); swapped != test.swapped {
			t.Errorf("%q: invalid case-swapped text %q (expected %q)",
				test.text, swapped, test.swapped)
		}
	}
}

func TestCandidateTextIsLowercase(t *testing.T) {
	if !makeCandidate(t, "foo_bar-123").TextIsLowercase() {
		t.Error("foo_bar-123 is lowercase")
	}
	if makeCandidate(t, "fooBar").TextIsLowercase() {
		t.Error("fooBar is not lowercase")
	}
	if !makeCandidate(t, "").TextIsLowercase() {
		t.Error("The empty candidate is lowercase")
	}
}

func matchCandidate(t *testing.T, candidateText string, queryText string) Result {
	t.Helper()
	query := makeWord(t, queryText)
	return makeCandidate(t, candidateText).QueryMatchResult(query)
}

func TestQueryMatchResultSubsequence(t *testing.T) {
	for _, test := range []struct {
		candidate     string
		query         string
		isSubsequence bool
	}{
		{"foobar", "fbr", true},
		{"foobar", "foobar", true},
		{"foobar", "rbf", false},
		{"foobar", "foobarx", false},
		{"foobar", "x", false},
		{"fooBar", "fb", true},
		{"foobar", "fB", false},
		{"école", "é", true},
		{"école", "e", true},
		{"ecole", "é", false},
	} {
		result := matchCandidate(t, test.candidate, test.query)
		if result.IsSubsequence() != test.isSubsequence {
			t.Errorf("%q in %q: IsSubsequence = %v, expected %v",
				test.query, test.candidate, result.IsSubsequence(), test.isSubsequence)
		}
	}
}

func TestQueryMatchResultEmptyQuery(t *testing.T) {
	result := matchCandidate(t, "foobar", "")
	if !result.IsSubsequence() {
		t.Error("The empty query matches everything")
	}
	if result.charMatchIndexSum != 0 {
		t.Error("The empty query has no matched indexes")
	}
	if result.queryIsCandidatePrefix {
		t.Error("The empty query is not a prefix")
	}
}

func TestQueryMatchResultIndexSum(t *testing.T) {
	// "abc" hits indexes 3, 6 and 7 in "012a45bc8".
	if sum := matchCandidate(t, "012a45bc8", "abc").charMatchIndexSum; sum != 16 {
		t.Errorf("Invalid index sum %d (expected 16)", sum)
	}
	if sum := matchCandidate(t, "foobar", "foo").charMatchIndexSum; sum != 3 {
		t.Errorf("Invalid index sum %d (expected 3)", sum)
	}
}

func TestQueryMatchResultPrefix(t *testing.T) {
	if !matchCandidate(t, "foobar", "foo").queryIsCandidatePrefix {
		t.Error("foo is a prefix of foobar")
	}
	if matchCandidate(t, "foobar", "fbr").queryIsCandidatePrefix {
		t.Error("fbr is not a prefix of foobar")
	}
	if !matchCandidate(t, "FooBar", "foob").queryIsCandidatePrefix {
		t.Error("foob is a prefix of FooBar under smart case")
	}
}

func TestQueryMatchResultLongerQuery(t *testing.T) {
	if matchCandidate(t, "fo", "foo").IsSubsequence() {
		t.Error("A query longer than the candidate never matches")
	}
}
