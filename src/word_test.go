package idmatch

import (
	"strings"
	"testing"

	"github.com/rivo/uniseg"
)

func makeWord(t *testing.T, text string) *Word {
	t.Helper()
	word, err := NewWord(text)
	if err != nil {
		t.Fatalf("NewWord(%q) failed: %s", text, err)
	}
	return word
}

func characterNormals(word *Word) []string {
	normals := make([]string, 0, word.Length())
	for _, character := range word.Characters() {
		normals = append(normals, character.Normal())
	}
	return normals
}

func assertCharacters(t *testing.T, text string, expected ...string) {
	t.Helper()
	normals := characterNormals(makeWord(t, text))
	if len(normals) != len(expected) {
		t.Fatalf("%q: split into %q, expected %q", text, normals, expected)
	}
	for i := range normals {
		if normals[i] != expected[i] {
			t.Fatalf("%q: split into %q, expected %q", text, normals, expected)
		}
	}
}

func TestWordAscii(t *testing.T) {
	assertCharacters(t, "foo", "f", "o", "o")
	assertCharacters(t, "")
	if !makeWord(t, "").IsEmpty() {
		t.Error("Empty word must be empty")
	}
	if makeWord(t, "foo").IsEmpty() {
		t.Error("Non-empty word must not be empty")
	}
}

// Segmenting an NFD-stable string must round-trip to the input bytes.
func TestWordRoundTrip(t *testing.T) {
	for _, text := range []string{"foo", "foo_bar-qux", "a b\tc", "éx"} {
		if joined := strings.Join(characterNormals(makeWord(t, text)), ""); joined != text {
			t.Errorf("%q: round-trips to %q", text, joined)
		}
	}
}

func TestWordCombiningMarks(t *testing.T) {
	// An accented letter is one character whether precomposed or not.
	assertCharacters(t, "é", "é")
	assertCharacters(t, "é", "é")
	assertCharacters(t, "aéb", "a", "é", "b")
}

// Words over equivalent texts share their interned characters.
func TestWordCharacterInterning(t *testing.T) {
	composed := makeWord(t, "é")
	decomposed := makeWord(t, "é")
	if composed.Characters()[0] != decomposed.Characters()[0] {
		t.Error("Equivalent characters must be pointer-equal")
	}
}

func TestWordControls(t *testing.T) {
	// Rule GB3: CRLF is a single character; rules GB4/GB5 break around
	// other controls.
	assertCharacters(t, "a\r\nb", "a", "\r\n", "b")
	assertCharacters(t, "a\tb", "a", "\t", "b")
	assertCharacters(t, "\r\r\n\n", "\r", "\r\n", "\n")
	// A control breaks a mark sequence.
	assertCharacters(t, "\té", "\t", "é")
}

func TestWordHangul(t *testing.T) {
	// Rules GB6 to GB8: jamo sequences form one syllable.
	assertCharacters(t, "각", "각")
	assertCharacters(t, "가가", "가", "가")
}

func TestWordRegionalIndicators(t *testing.T) {
	de := "\U0001f1e9\U0001f1ea"
	fr := "\U0001f1eb\U0001f1f7"
	// Rules GB12 and GB13: pairs of regional indicators stay together,
	// and a third one starts a new character.
	assertCharacters(t, de+fr, de, fr)
	assertCharacters(t, de+"\U0001f1e9", de, "\U0001f1e9")
	assertCharacters(t, "x"+de+"x", "x", de, "x")
}

func TestWordEmoji(t *testing.T) {
	// Rule GB11: emoji zwj sequences hold together.
	family := "\U0001f468‍\U0001f469‍\U0001f466"
	assertCharacters(t, family, family)
	// An emoji modifier extends the base emoji.
	thumbsUp := "\U0001f44d\U0001f3fb"
	assertCharacters(t, thumbsUp+"x", thumbsUp, "x")
	// A ZWJ without a preceding extended pictographic does not glue two
	// of them together.
	assertCharacters(t, "a‍\U0001f600", "a‍", "\U0001f600")
}

func TestWordIndicConjuncts(t *testing.T) {
	// A linker between two consonants keeps the conjunct together.
	assertCharacters(t, "क्क", "क्क")
	// Without a linker the consonants split.
	assertCharacters(t, "कक", "क", "क")
	// The conjunct does not extend past its second consonant.
	assertCharacters(t, "क्कक",
		"क्क", "क")
}

// The segmentation must agree with the uniseg implementation of UAX #29
// over the covered corpus (Indic conjuncts excluded: uniseg predates
// that extension).
func TestWordSegmentationMatchesUniseg(t *testing.T) {
	corpus := []string{
		"foo_bar",
		"font-family",
		"aé€b",
		"éx",
		"a\r\nb",
		"각",
		"x\U0001f1e9\U0001f1ea\U0001f1eb\U0001f1f7",
		"\U0001f468‍\U0001f469‍\U0001f466",
		"\U0001f44d\U0001f3fb!",
	}
	for _, text := range corpus {
		word := makeWord(t, text)
		var expected []string
		graphemes := uniseg.NewGraphemes(text)
		for graphemes.Next() {
			expected = append(expected, graphemes.Str())
		}
		if word.Length() != len(expected) {
			t.Errorf("%q: split into %d characters, uniseg says %d",
				text, word.Length(), len(expected))
		}
	}
}

func TestWordContainsBytes(t *testing.T) {
	identifier := makeWord(t, "foobar")
	if !identifier.ContainsBytes(makeWord(t, "fob")) {
		t.Error("foobar must contain the bytes of fob")
	}
	if !identifier.ContainsBytes(makeWord(t, "")) {
		t.Error("Any word must contain the bytes of the empty word")
	}
	if identifier.ContainsBytes(makeWord(t, "fox")) {
		t.Error("foobar must not contain the bytes of fox")
	}
	// Byte presence is computed over base forms, so case and accents do
	// not matter.
	if !makeWord(t, "FOOBAR").ContainsBytes(makeWord(t, "fob")) {
		t.Error("Base bytes must ignore case")
	}
	if !makeWord(t, "ée").ContainsBytes(makeWord(t, "e")) {
		t.Error("Base bytes must ignore marks")
	}
}

// The byte filter is a lower bound for the matcher: whenever the query
// is a subsequence of the candidate, the candidate contains the query's
// bytes.
func TestWordContainsBytesIsLowerBound(t *testing.T) {
	candidates := []string{"foobar", "FooBar", "font-family", "école"}
	queries := []string{"", "fo", "FB", "é", "zz"}
	for _, candidateText := range candidates {
		candidate := makeCandidate(t, candidateText)
		for _, queryText := range queries {
			query := makeWord(t, queryText)
			if candidate.QueryMatchResult(query).IsSubsequence() &&
				!candidate.ContainsBytes(query) {
				t.Errorf("%q matches %q but fails the byte filter",
					queryText, candidateText)
			}
		}
	}
}
