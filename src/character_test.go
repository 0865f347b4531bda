package idmatch

import (
	"testing"

	"golang.org/x/text/unicode/norm"
)

func makeCharacter(t *testing.T, text string) *Character {
	t.Helper()
	characters, err := characterRepository.GetElements([]string{text})
	if err != nil {
		t.Fatalf("building character %q failed: %s", text, err)
	}
	return characters[0]
}

func TestCharacterNormalForms(t *testing.T) {
	tests := []struct {
		text   string
		normal string
		base   string
		folded string
	}{
		{"a", "a", "a", "a"},
		{"A", "A", "a", "a"},
		{"\u00e9", "e\u0301", "e", "e\u0301"},
		{"\u00c9", "E\u0301", "e", "e\u0301"},
		{"e\u0301", "e\u0301", "e", "e\u0301"},
		{"_", "_", "_", "_"},
	}
	for _, test := range tests {
		character := makeCharacter(t, test.text)
		if character.Normal() != test.normal {
			t.Errorf("%q: invalid normal form %q (expected %q)",
				test.text, character.Normal(), test.normal)
		}
		if character.Base() != test.base {
			t.Errorf("%q: invalid base form %q (expected %q)",
				test.text, character.Base(), test.base)
		}
		if character.FoldedCase() != test.folded {
			t.Errorf("%q: invalid folded case %q (expected %q)",
				test.text, character.FoldedCase(), test.folded)
		}
	}
}

// Marks must be reordered by combining class: a dot below (class 220)
// sorts before an acute accent (class 230) regardless of input order.
func TestCharacterCanonicalOrdering(t *testing.T) {
	straight := makeCharacter(t, "e\u0323\u0301")
	reversed := makeCharacter(t, "e\u0301\u0323")
	if straight.Normal() != "e\u0323\u0301" {
		t.Errorf("Invalid canonical order %q", straight.Normal())
	}
	if reversed.Normal() != straight.Normal() {
		t.Errorf("Equivalent sequences must normalize identically: %q vs %q",
			reversed.Normal(), straight.Normal())
	}
	if !reversed.Equals(straight) {
		t.Error("Equivalent characters must be equal")
	}
}

// The embedded table must agree with the x/text NFD implementation on
// the covered corpus.
func TestCharacterNormalMatchesNFD(t *testing.T) {
	for _, text := range []string{
		"a", "Z", "é", "É", "ü", "ñ", "ç", "ά", "ё", "ḹ", "ẹ́",
	} {
		if normal := makeCharacter(t, text).Normal(); normal != norm.NFD.String(text) {
			t.Errorf("%q: normal form %q differs from NFD %q",
				text, normal, norm.NFD.String(text))
		}
	}
}

// NFD is idempotent: normalizing a normal form changes nothing.
func TestCharacterNormalIdempotent(t *testing.T) {
	for _, text := range []string{"a", "é", "É", "ḹ", "क्ष"} {
		once := makeCharacter(t, text).Normal()
		if twice := makeCharacter(t, once).Normal(); twice != once {
			t.Errorf("%q: normalization is not idempotent (%q vs %q)", text, once, twice)
		}
	}
}

func TestCharacterFlags(t *testing.T) {
	tests := []struct {
		text        string
		base        bool
		letter      bool
		punctuation bool
		uppercase   bool
	}{
		{"a", true, true, false, false},
		{"R", true, true, false, true},
		{"é", false, true, false, false},
		{"É", false, true, false, true},
		{"-", true, false, true, false},
		{"5", true, false, false, false},
		{"\u0301", false, false, false, false},
	}
	for _, test := range tests {
		character := makeCharacter(t, test.text)
		if character.IsBase() != test.base || character.IsLetter() != test.letter ||
			character.IsPunctuation() != test.punctuation ||
			character.IsUppercase() != test.uppercase {
			t.Errorf("%q: invalid flags (base=%v letter=%v punctuation=%v uppercase=%v)",
				test.text, character.IsBase(), character.IsLetter(),
				character.IsPunctuation(), character.IsUppercase())
		}
	}
}

func TestCharacterEqualsBaseAndIgnoreCase(t *testing.T) {
	a := makeCharacter(t, "a")
	upperA := makeCharacter(t, "A")
	aAcute := makeCharacter(t, "á")
	upperAAcute := makeCharacter(t, "Á")

	if !a.EqualsBase(upperA) || !a.EqualsBase(aAcute) || !a.EqualsBase(upperAAcute) {
		t.Error("Base comparison must ignore both case and marks")
	}
	if !aAcute.EqualsIgnoreCase(upperAAcute) {
		t.Error("Case-insensitive comparison must ignore case only")
	}
	if a.EqualsIgnoreCase(aAcute) {
		t.Error("Case-insensitive comparison must not drop marks")
	}
}

// Smart base matching on top of smart case matching:
//   - e matches e, é, E, É;
//   - E matches E, É but not e, é;
//   - é matches é, É but not e, E;
//   - É matches É but not e, é, E.
func TestCharacterMatchesSmart(t *testing.T) {
	names := []string{"e", "é", "E", "É"}
	expected := [4][4]bool{
		{true, true, true, true},
		{false, true, false, true},
		{false, false, true, true},
		{false, false, false, true},
	}
	for i, query := range names {
		for j, candidate := range names {
			queryCharacter := makeCharacter(t, query)
			candidateCharacter := makeCharacter(t, candidate)
			if queryCharacter.MatchesSmart(candidateCharacter) != expected[i][j] {
				t.Errorf("MatchesSmart(%q, %q) = %v, expected %v",
					query, candidate,
					queryCharacter.MatchesSmart(candidateCharacter), expected[i][j])
			}
		}
	}
}
