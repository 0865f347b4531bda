package idmatch

import "github.com/idmatch/idmatch/src/unicodedata"

// bitset256 tracks which of the 256 possible byte values occur in a
// word.
type bitset256 [4]uint64

func (b *bitset256) set(byteValue byte) {
	b[byteValue>>6] |= 1 << (byteValue & 63)
}

// containsAll reports whether every bit set in other is also set in b.
func (b *bitset256) containsAll(other *bitset256) bool {
	for i := range b {
		if b[i]&other[i] != other[i] {
			return false
		}
	}
	return true
}

// graphemeBreakAllowed applies rules GB3 to GB13 from
// https://www.unicode.org/reports/tr29#Grapheme_Cluster_Boundary_Rules
// to the pair of break properties at a candidate boundary. Rules GB1
// and GB2 (break at the start and at the end of the text) are
// automatically satisfied. The withinEmojiModifier and oddRegionalIndicator
// states are carried left to right across the text.
func graphemeBreakAllowed(
	previousProperty, property unicodedata.GraphemeBreakProperty,
	withinEmojiModifier, oddRegionalIndicator bool) (breakAllowed, newWithinEmojiModifier, newOddRegionalIndicator bool) {

	switch previousProperty {
	case unicodedata.GBCR:
		switch property {
		// Rule GB3: do not break between a CR and LF.
		case unicodedata.GBLF:
			return false, withinEmojiModifier, oddRegionalIndicator
		// Rule GB4: otherwise, break after CR.
		default:
			return true, withinEmojiModifier, oddRegionalIndicator
		}
	// Rule GB4: break after controls and LF.
	case unicodedata.GBControl, unicodedata.GBLF:
		return true, withinEmojiModifier, oddRegionalIndicator
	case unicodedata.GBL:
		switch property {
		// Rule GB6: do not break Hangul syllable sequences.
		case unicodedata.GBL, unicodedata.GBV, unicodedata.GBLV, unicodedata.GBLVT,
			// Rule GB9: do not break before extending characters or when
			// using a zero-width joiner (ZWJ).
			unicodedata.GBExtend, unicodedata.GBZWJ,
			// Rule GB9a: do not break before spacing marks.
			unicodedata.GBSpacingMark:
			return false, withinEmojiModifier, oddRegionalIndicator
		default:
			return true, withinEmojiModifier, oddRegionalIndicator
		}
	case unicodedata.GBLV, unicodedata.GBV:
		switch property {
		// Rule GB7: do not break Hangul syllable sequences.
		case unicodedata.GBV, unicodedata.GBT,
			unicodedata.GBExtend, unicodedata.GBZWJ, unicodedata.GBSpacingMark:
			return false, withinEmojiModifier, oddRegionalIndicator
		default:
			return true, withinEmojiModifier, oddRegionalIndicator
		}
	case unicodedata.GBLVT, unicodedata.GBT:
		switch property {
		// Rule GB8: do not break Hangul syllable sequences.
		case unicodedata.GBT,
			unicodedata.GBExtend, unicodedata.GBZWJ, unicodedata.GBSpacingMark:
			return false, withinEmojiModifier, oddRegionalIndicator
		default:
			return true, withinEmojiModifier, oddRegionalIndicator
		}
	case unicodedata.GBPrepend:
		switch property {
		// Rule GB5: break before controls.
		case unicodedata.GBControl, unicodedata.GBCR, unicodedata.GBLF:
			return true, withinEmojiModifier, oddRegionalIndicator
		// Rule GB9b: do not break after prepend characters.
		default:
			return false, withinEmojiModifier, oddRegionalIndicator
		}
	case unicodedata.GBExtend:
		switch property {
		// Rule GB9: do not break before extending characters or when using
		// a zero-width joiner (ZWJ).
		case unicodedata.GBExtend, unicodedata.GBZWJ:
			return false, withinEmojiModifier, oddRegionalIndicator
		// Rule GB9a: do not break before spacing marks.
		case unicodedata.GBSpacingMark:
			return false, false, oddRegionalIndicator
		default:
			return true, false, oddRegionalIndicator
		}
	case unicodedata.GBZWJ:
		switch property {
		case unicodedata.GBExtend, unicodedata.GBZWJ, unicodedata.GBSpacingMark:
			return false, withinEmojiModifier, false
		// Rule GB11: do not break within emoji modifier sequences or emoji
		// zwj sequences.
		case unicodedata.GBExtPict:
			return !withinEmojiModifier, false, oddRegionalIndicator
		default:
			return true, false, oddRegionalIndicator
		}
	case unicodedata.GBExtPict:
		switch property {
		// Rule GB9a: do not break before spacing marks.
		case unicodedata.GBSpacingMark:
			return false, withinEmojiModifier, oddRegionalIndicator
		// Rule GB11: an extended pictographic followed by extending
		// characters or a ZWJ stays within the emoji modifier sequence.
		case unicodedata.GBExtend, unicodedata.GBZWJ:
			return false, true, oddRegionalIndicator
		default:
			return true, withinEmojiModifier, oddRegionalIndicator
		}
	case unicodedata.GBRegionalIndicator:
		switch property {
		case unicodedata.GBExtend, unicodedata.GBZWJ, unicodedata.GBSpacingMark:
			return false, withinEmojiModifier, false
		// Rules GB12 and GB13: do not break within emoji flag sequences.
		// That is, do not break between regional indicator (RI) symbols if
		// there is an odd number of RI characters before the break point.
		case unicodedata.GBRegionalIndicator:
			return oddRegionalIndicator, withinEmojiModifier, !oddRegionalIndicator
		default:
			return true, withinEmojiModifier, false
		}
	default:
		switch property {
		// Rule GB9: do not break before extending characters or when using
		// a zero-width joiner (ZWJ).
		case unicodedata.GBExtend, unicodedata.GBZWJ,
			// Rule GB9a: do not break before spacing marks.
			unicodedata.GBSpacingMark:
			return false, withinEmojiModifier, oddRegionalIndicator
		// Rule GB5: break before controls.
		// Rule GB999: otherwise, break everywhere.
		default:
			return true, withinEmojiModifier, oddRegionalIndicator
		}
	}
}

// indicConjunctBreakAllowed applies the Indic conjunct break extension
// of UAX #29: the sequence
// Consonant [Extend Linker]* Linker [Extend Linker]* Consonant forms a
// single cluster. The withinIndicConjunct and seenLinker states are
// carried left to right across the text.
func indicConjunctBreakAllowed(
	previousProperty, property unicodedata.IndicConjunctBreak,
	withinIndicConjunct, seenLinker bool) (breakAllowed, newWithinIndicConjunct, newSeenLinker bool) {

	switch previousProperty {
	case unicodedata.ICBConsonant:
		switch property {
		case unicodedata.ICBExtend, unicodedata.ICBLinker:
			return false, true, false
		default:
			return true, false, false
		}
	case unicodedata.ICBExtend:
		switch property {
		case unicodedata.ICBExtend, unicodedata.ICBLinker:
			return !withinIndicConjunct, withinIndicConjunct, seenLinker
		case unicodedata.ICBConsonant:
			return !seenLinker, false, false
		default:
			return true, false, false
		}
	case unicodedata.ICBLinker:
		switch property {
		case unicodedata.ICBExtend, unicodedata.ICBLinker:
			return !withinIndicConjunct, withinIndicConjunct, withinIndicConjunct
		case unicodedata.ICBConsonant:
			return !withinIndicConjunct, false, withinIndicConjunct
		default:
			return true, false, true
		}
	default:
		return true, false, false
	}
}

// breakCodePointsIntoCharacters groups a sequence of code points into
// characters (grapheme clusters). A break is inserted between two code
// points only when both the grapheme break rules and the Indic conjunct
// break rules allow it.
func breakCodePointsIntoCharacters(codePoints []*CodePoint) []string {
	var characters []string

	if len(codePoints) == 0 {
		return characters
	}

	character := codePoints[0].Normal()

	oddRegionalIndicator := false
	withinEmojiModifier := false
	withinIndicConjunct := false
	seenLinker := false

	for index := 1; index < len(codePoints); index++ {
		previous := codePoints[index-1]
		current := codePoints[index]

		var graphemeBreak, indicBreak bool
		graphemeBreak, withinEmojiModifier, oddRegionalIndicator = graphemeBreakAllowed(
			previous.BreakProperty(), current.BreakProperty(),
			withinEmojiModifier, oddRegionalIndicator)
		indicBreak, withinIndicConjunct, seenLinker = indicConjunctBreakAllowed(
			previous.IndicProperty(), current.IndicProperty(),
			withinIndicConjunct, seenLinker)

		if graphemeBreak && indicBreak {
			characters = append(characters, character)
			character = current.Normal()
		} else {
			character += current.Normal()
		}
	}

	return append(characters, character)
}

// Word is a sequence of characters obtained by splitting a UTF-8
// encoded string into grapheme clusters following the rules in
// https://www.unicode.org/reports/tr29/#Grapheme_Cluster_Boundary_Rules
type Word struct {
	text         string
	characters   []*Character
	bytesPresent bitset256
}

// NewWord builds a Word from a UTF-8 encoded string. It fails when a
// code point has an invalid leading byte or is missing continuation
// bytes; continuation bytes themselves are not validated.
func NewWord(text string) (*Word, error) {
	word := &Word{text: text}

	codePoints, err := BreakIntoCodePoints(text)
	if err != nil {
		return nil, err
	}
	word.characters, err = characterRepository.GetElements(
		breakCodePointsIntoCharacters(codePoints))
	if err != nil {
		return nil, err
	}

	for _, character := range word.characters {
		for i := 0; i < len(character.Base()); i++ {
			word.bytesPresent.set(character.Base()[i])
		}
	}
	return word, nil
}

func (w *Word) Text() string {
	return w.text
}

func (w *Word) Characters() []*Character {
	return w.characters
}

func (w *Word) Length() int {
	return len(w.characters)
}

func (w *Word) IsEmpty() bool {
	return len(w.characters) == 0
}

// ContainsBytes reports whether the word contains all the bytes from
// another word (it may also contain other bytes).
func (w *Word) ContainsBytes(other *Word) bool {
	return w.bytesPresent.containsAll(&other.bytesPresent)
}
