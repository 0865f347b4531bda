package idmatch

import (
	"github.com/pkg/errors"

	"github.com/idmatch/idmatch/src/unicodedata"
)

// Errors returned when splitting invalid UTF-8 into code points.
var (
	ErrInvalidLeadingByte     = errors.New("Invalid leading byte in code point.")
	ErrInvalidCodePointLength = errors.New("Invalid code point length.")
)

// CodePoint is a UTF-8 encoded Unicode code point together with the
// properties needed for matching: its NFD normal form, its folded-case
// and swapped-case forms, whether it is a letter, a punctuation or in
// uppercase, its grapheme-cluster break property, its canonical
// combining class and its Indic conjunct break property. Instances are
// interned in the code point repository, so two code points with the
// same text are pointer-equal.
type CodePoint struct {
	normal         string
	foldedCase     string
	swappedCase    string
	letter         bool
	punctuation    bool
	uppercase      bool
	breakProperty  unicodedata.GraphemeBreakProperty
	combiningClass uint8
	indicProperty  unicodedata.IndicConjunctBreak
}

func newCodePoint(codePoint string) (*CodePoint, error) {
	raw := unicodedata.Lookup(codePoint)
	return &CodePoint{
		normal:         raw.Normal,
		foldedCase:     raw.FoldedCase,
		swappedCase:    raw.SwappedCase,
		letter:         raw.Letter,
		punctuation:    raw.Punctuation,
		uppercase:      raw.Uppercase,
		breakProperty:  raw.Break,
		combiningClass: raw.CombiningClass,
		indicProperty:  raw.Indic,
	}, nil
}

func (cp *CodePoint) Normal() string {
	return cp.normal
}

func (cp *CodePoint) FoldedCase() string {
	return cp.foldedCase
}

func (cp *CodePoint) SwappedCase() string {
	return cp.swappedCase
}

func (cp *CodePoint) IsLetter() bool {
	return cp.letter
}

func (cp *CodePoint) IsPunctuation() bool {
	return cp.punctuation
}

func (cp *CodePoint) IsUppercase() bool {
	return cp.uppercase
}

func (cp *CodePoint) BreakProperty() unicodedata.GraphemeBreakProperty {
	return cp.breakProperty
}

func (cp *CodePoint) CombiningClass() uint8 {
	return cp.combiningClass
}

func (cp *CodePoint) IndicProperty() unicodedata.IndicConjunctBreak {
	return cp.indicProperty
}

// codePointLength returns the number of bytes of the UTF-8 code point
// starting with the given byte.
func codePointLength(leadingByte byte) (int, error) {
	// 0xxxxxxx
	if leadingByte&0x80 == 0x00 {
		return 1, nil
	}
	// 110xxxxx
	if leadingByte&0xe0 == 0xc0 {
		return 2, nil
	}
	// 1110xxxx
	if leadingByte&0xf0 == 0xe0 {
		return 3, nil
	}
	// 11110xxx
	if leadingByte&0xf8 == 0xf0 {
		return 4, nil
	}
	return 0, ErrInvalidLeadingByte
}

// BreakIntoCodePoints splits a UTF-8 encoded string into interned code
// points. Continuation bytes are not validated.
func BreakIntoCodePoints(text string) ([]*CodePoint, error) {
	var codePoints []string
	for index := 0; index < len(text); {
		length, err := codePointLength(text[index])
		if err != nil {
			return nil, err
		}
		if len(text)-index < length {
			return nil, ErrInvalidCodePointLength
		}
		codePoints = append(codePoints, text[index:index+length])
		index += length
	}
	return codePointRepository.GetElements(codePoints)
}

// NormalizeInput normalizes a UTF-8 encoded string through NFD by
// concatenating the normal forms of its code points.
func NormalizeInput(text string) (string, error) {
	codePoints, err := BreakIntoCodePoints(text)
	if err != nil {
		return "", err
	}
	var normal []byte
	for _, codePoint := range codePoints {
		normal = append(normal, codePoint.Normal()...)
	}
	return string(normal), nil
}
