// Package unicodedata embeds the per-scalar Unicode properties needed
// for identifier matching: NFD normal forms, case folding and swapping,
// letter/punctuation/uppercase flags, grapheme-cluster break classes,
// canonical combining classes and Indic conjunct break classes. The
// table is generated offline from the Unicode Character Database; code
// points absent from the table carry only default properties.
package unicodedata

import "sort"

// GraphemeBreakProperty is the Grapheme_Cluster_Break class of a code
// point as defined in https://www.unicode.org/reports/tr29
type GraphemeBreakProperty uint8

const (
	GBOther GraphemeBreakProperty = iota
	GBCR
	GBLF
	GBControl
	GBExtend
	GBZWJ
	GBRegionalIndicator
	GBPrepend
	GBSpacingMark
	GBL
	GBV
	GBT
	GBLV
	GBLVT
	GBExtPict
)

// IndicConjunctBreak is the Indic_Conjunct_Break class of a code point
// as derived in the UCD DerivedCoreProperties file.
type IndicConjunctBreak uint8

const (
	ICBNone IndicConjunctBreak = iota
	ICBConsonant
	ICBExtend
	ICBLinker
)

// CodePoint holds the properties of a single Unicode scalar keyed by
// its UTF-8 text.
type CodePoint struct {
	Original       string
	Normal         string
	FoldedCase     string
	SwappedCase    string
	Letter         bool
	Punctuation    bool
	Uppercase      bool
	Break          GraphemeBreakProperty
	CombiningClass uint8
	Indic          IndicConjunctBreak
}

// Lookup returns the properties of the code point with the given UTF-8
// text. Code points not in the table get default properties: the
// textual forms are the input itself, all flags are off, the break
// property is GBOther, the combining class is 0 and the Indic conjunct
// break is ICBNone.
func Lookup(text string) CodePoint {
	idx := sort.Search(len(codePoints), func(i int) bool {
		return codePoints[i].Original >= text
	})
	if idx < len(codePoints) && codePoints[idx].Original == text {
		return codePoints[idx]
	}
	return CodePoint{
		Original:    text,
		Normal:      text,
		FoldedCase:  text,
		SwappedCase: text,
	}
}

// NumCodePoints returns the number of non-default code points in the
// embedded table.
func NumCodePoints() int {
	return len(codePoints)
}
