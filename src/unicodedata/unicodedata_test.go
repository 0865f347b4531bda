package unicodedata

import (
	"sort"
	"testing"
)

func TestTableIsSorted(t *testing.T) {
	sorted := sort.SliceIsSorted(codePoints, func(i, j int) bool {
		return codePoints[i].Original < codePoints[j].Original
	})
	if !sorted {
		t.Fatal("The code point table must be sorted by original text")
	}
}

func TestLookupHit(t *testing.T) {
	a := Lookup("A")
	if !a.Letter || !a.Uppercase || a.Punctuation {
		t.Error("Invalid flags for A")
	}
	if a.FoldedCase != "a" || a.SwappedCase != "a" || a.Normal != "A" {
		t.Error("Invalid case forms for A")
	}

	mark := Lookup("́")
	if mark.Break != GBExtend || mark.CombiningClass != 230 {
		t.Error("Invalid properties for U+0301")
	}
}

func TestLookupMiss(t *testing.T) {
	// U+10FFFF has no entry in the table.
	text := "\U0010ffff"
	cp := Lookup(text)
	if cp.Original != text || cp.Normal != text ||
		cp.FoldedCase != text || cp.SwappedCase != text {
		t.Error("A defaulted code point must keep its text")
	}
	if cp.Letter || cp.Punctuation || cp.Uppercase {
		t.Error("A defaulted code point must have no flags")
	}
	if cp.Break != GBOther || cp.CombiningClass != 0 || cp.Indic != ICBNone {
		t.Error("A defaulted code point must have default properties")
	}
}

func TestLookupDigitsAreDefaulted(t *testing.T) {
	// ASCII digits carry only default properties and stay out of the
	// table.
	if cp := Lookup("7"); cp.Letter || cp.Break != GBOther {
		t.Error("Digits must be defaulted")
	}
}

func TestNumCodePoints(t *testing.T) {
	if NumCodePoints() != len(codePoints) {
		t.Error("NumCodePoints must report the table size")
	}
	if NumCodePoints() == 0 {
		t.Error("The table must not be empty")
	}
}
