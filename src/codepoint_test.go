package idmatch

import (
	"testing"

	"github.com/idmatch/idmatch/src/unicodedata"
)

func breakOne(t *testing.T, text string) []*CodePoint {
	t.Helper()
	codePoints, err := BreakIntoCodePoints(text)
	if err != nil {
		t.Fatalf("BreakIntoCodePoints(%q) failed: %s", text, err)
	}
	return codePoints
}

func TestCodePointProperties(t *testing.T) {
	tests := []struct {
		text        string
		normal      string
		foldedCase  string
		swappedCase string
		letter      bool
		punctuation bool
		uppercase   bool
	}{
		{"a", "a", "a", "A", true, false, false},
		{"A", "A", "a", "a", true, false, true},
		{"8", "8", "8", "8", false, false, false},
		{"-", "-", "-", "-", false, true, false},
		{"_", "_", "_", "_", false, true, false},
		// é and É decompose through NFD.
		{"é", "é", "é", "É", true, false, false},
		{"É", "É", "é", "é", true, false, true},
		// A combining acute accent on its own.
		{"\u0301", "\u0301", "\u0301", "\u0301", false, false, false},
	}
	for _, test := range tests {
		codePoints := breakOne(t, test.text)
		if len(codePoints) != 1 {
			t.Fatalf("%q: expected a single code point, got %d", test.text, len(codePoints))
		}
		cp := codePoints[0]
		if cp.Normal() != test.normal {
			t.Errorf("%q: invalid normal form %q (expected %q)", test.text, cp.Normal(), test.normal)
		}
		if cp.FoldedCase() != test.foldedCase {
			t.Errorf("%q: invalid folded case %q (expected %q)", test.text, cp.FoldedCase(), test.foldedCase)
		}
		if cp.SwappedCase() != test.swappedCase {
			t.Errorf("%q: invalid swapped case %q (expected %q)", test.text, cp.SwappedCase(), test.swappedCase)
		}
		if cp.IsLetter() != test.letter ||
			cp.IsPunctuation() != test.punctuation ||
			cp.IsUppercase() != test.uppercase {
			t.Errorf("%q: invalid flags (letter=%v punctuation=%v uppercase=%v)",
				test.text, cp.IsLetter(), cp.IsPunctuation(), cp.IsUppercase())
		}
	}
}

func TestCodePointBreakProperties(t *testing.T) {
	tests := []struct {
		text     string
		property unicodedata.GraphemeBreakProperty
	}{
		{"\r", unicodedata.GBCR},
		{"\n", unicodedata.GBLF},
		{"\t", unicodedata.GBControl},
		{"\u200d", unicodedata.GBZWJ},
		{"\u0301", unicodedata.GBExtend},
		{"\U0001f1e6", unicodedata.GBRegionalIndicator},
		{"\U0001f600", unicodedata.GBExtPict},
		{"\u1100", unicodedata.GBL},
		{"\u1161", unicodedata.GBV},
		{"\u11a8", unicodedata.GBT},
		{"a", unicodedata.GBOther},
	}
	for _, test := range tests {
		cp := breakOne(t, test.text)[0]
		if cp.BreakProperty() != test.property {
			t.Errorf("%q: invalid break property %d (expected %d)",
				test.text, cp.BreakProperty(), test.property)
		}
	}
}

func TestCodePointCombiningClass(t *testing.T) {
	// U+0301 COMBINING ACUTE ACCENT is an above mark, U+0323 COMBINING
	// DOT BELOW is a below mark and sorts before it.
	if breakOne(t, "\u0301")[0].CombiningClass() != 230 {
		t.Error("Invalid combining class for U+0301")
	}
	if breakOne(t, "\u0323")[0].CombiningClass() != 220 {
		t.Error("Invalid combining class for U+0323")
	}
	if breakOne(t, "a")[0].CombiningClass() != 0 {
		t.Error("Invalid combining class for a starter")
	}
}

func TestCodePointIndicProperties(t *testing.T) {
	tests := []struct {
		text     string
		property unicodedata.IndicConjunctBreak
	}{
		// DEVANAGARI LETTER KA, DEVANAGARI SIGN VIRAMA, ZWJ.
		{"\u0915", unicodedata.ICBConsonant},
		{"\u094d", unicodedata.ICBLinker},
		{"\u200d", unicodedata.ICBExtend},
		{"a", unicodedata.ICBNone},
	}
	for _, test := range tests {
		cp := breakOne(t, test.text)[0]
		if cp.IndicProperty() != test.property {
			t.Errorf("%q: invalid indic property %d (expected %d)",
				test.text, cp.IndicProperty(), test.property)
		}
	}
}

func TestCodePointDefaulted(t *testing.T) {
	// U+10B7A is not in the embedded table: every property defaults.
	cp := breakOne(t, "\U00010b7a")[0]
	if cp.Normal() != "\U00010b7a" || cp.FoldedCase() != "\U00010b7a" ||
		cp.SwappedCase() != "\U00010b7a" {
		t.Error("Defaulted code point must keep its text")
	}
	if cp.IsLetter() || cp.IsPunctuation() || cp.IsUppercase() {
		t.Error("Defaulted code point must have no flags")
	}
	if cp.BreakProperty() != unicodedata.GBOther || cp.CombiningClass() != 0 ||
		cp.IndicProperty() != unicodedata.ICBNone {
		t.Error("Defaulted code point must have default properties")
	}
}

func TestCodePointInterning(t *testing.T) {
	first := breakOne(t, "é")[0]
	second := breakOne(t, "é")[0]
	if first != second {
		t.Error("Code points with identical text must be pointer-equal")
	}
}

func TestBreakIntoCodePointsMixedLengths(t *testing.T) {
	codePoints := breakOne(t, "aé€\U0001f600")
	if len(codePoints) != 4 {
		t.Fatalf("Expected 4 code points, got %d", len(codePoints))
	}
}

func TestBreakIntoCodePointsInvalidLeadingByte(t *testing.T) {
	// A continuation byte cannot start a code point.
	if _, err := BreakIntoCodePoints("\x80"); err != ErrInvalidLeadingByte {
		t.Errorf("Expected ErrInvalidLeadingByte, got %v", err)
	}
	if _, err := BreakIntoCodePoints("\xff"); err != ErrInvalidLeadingByte {
		t.Errorf("Expected ErrInvalidLeadingByte, got %v", err)
	}
}

func TestBreakIntoCodePointsTruncated(t *testing.T) {
	// The leading bytes promise continuation bytes that are not there.
	if _, err := BreakIntoCodePoints("é"[:1]); err != ErrInvalidCodePointLength {
		t.Errorf("Expected ErrInvalidCodePointLength, got %v", err)
	}
	if _, err := BreakIntoCodePoints("\U0001f600"[:2]); err != ErrInvalidCodePointLength {
		t.Errorf("Expected ErrInvalidCodePointLength, got %v", err)
	}
}

func TestNormalizeInput(t *testing.T) {
	tests := []struct {
		text   string
		normal string
	}{
		{"", ""},
		{"foo", "foo"},
		{"é", "é"},
		{"Éé", "Éé"},
		// Already decomposed input is left alone.
		{"é", "é"},
	}
	for _, test := range tests {
		normal, err := NormalizeInput(test.text)
		if err != nil {
			t.Fatalf("NormalizeInput(%q) failed: %s", test.text, err)
		}
		if normal != test.normal {
			t.Errorf("NormalizeInput(%q) = %q (expected %q)", test.text, normal, test.normal)
		}
	}
}
