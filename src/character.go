package idmatch

import (
	"sort"

	"github.com/idmatch/idmatch/src/unicodedata"
)

// Character is a UTF-8 encoded unit of writing, i.e. a grapheme
// cluster. It is built from a string of one or more code points,
// normalized through NFD (Normalization Form D), and carries the
// folded-case, swapped-case and base forms of the normalized character
// together with aggregate letter/punctuation/uppercase flags. Instances
// are interned in the character repository.
type Character struct {
	normal      string
	base        string
	foldedCase  string
	swappedCase string
	isBase      bool
	letter      bool
	punctuation bool
	uppercase   bool
}

// canonicalSort reorders the code points according to the Canonical
// Ordering Algorithm: every maximal run of code points with a non-zero
// combining class is stably sorted by combining class.
func canonicalSort(codePoints []*CodePoint) {
	start := 0
	for start < len(codePoints) {
		for start < len(codePoints) && codePoints[start].CombiningClass() == 0 {
			start++
		}
		end := start
		for end < len(codePoints) && codePoints[end].CombiningClass() != 0 {
			end++
		}
		sortable := codePoints[start:end]
		sort.SliceStable(sortable, func(i, j int) bool {
			return sortable[i].CombiningClass() < sortable[j].CombiningClass()
		})
		start = end
	}
}

// canonicalDecompose splits a UTF-8 encoded string into the code points
// of its Canonical Decomposition (NFD): each code point is replaced by
// the code points of its normal form, then the result is put in
// canonical order.
func canonicalDecompose(text string) ([]*CodePoint, error) {
	normal, err := NormalizeInput(text)
	if err != nil {
		return nil, err
	}
	codePoints, err := BreakIntoCodePoints(normal)
	if err != nil {
		return nil, err
	}
	canonicalSort(codePoints)
	return codePoints, nil
}

func newCharacter(character string) (*Character, error) {
	codePoints, err := canonicalDecompose(character)
	if err != nil {
		return nil, err
	}

	result := &Character{isBase: true}
	for _, codePoint := range codePoints {
		result.normal += codePoint.Normal()
		result.foldedCase += codePoint.FoldedCase()
		result.swappedCase += codePoint.SwappedCase()
		result.letter = result.letter || codePoint.IsLetter()
		result.punctuation = result.punctuation || codePoint.IsPunctuation()
		result.uppercase = result.uppercase || codePoint.IsUppercase()

		switch codePoint.BreakProperty() {
		case unicodedata.GBPrepend, unicodedata.GBExtend, unicodedata.GBSpacingMark:
			result.isBase = false
		default:
			result.base += codePoint.FoldedCase()
		}
	}
	return result, nil
}

func (c *Character) Normal() string {
	return c.normal
}

func (c *Character) Base() string {
	return c.base
}

func (c *Character) FoldedCase() string {
	return c.foldedCase
}

func (c *Character) SwappedCase() string {
	return c.swappedCase
}

func (c *Character) IsBase() bool {
	return c.isBase
}

func (c *Character) IsLetter() bool {
	return c.letter
}

func (c *Character) IsPunctuation() bool {
	return c.punctuation
}

func (c *Character) IsUppercase() bool {
	return c.uppercase
}

// Equals reports whether both characters have the same normal form.
func (c *Character) Equals(other *Character) bool {
	return c.normal == other.normal
}

// EqualsBase reports whether both characters have the same base form.
func (c *Character) EqualsBase(other *Character) bool {
	return c.base == other.base
}

// EqualsIgnoreCase reports whether both characters are equal once case
// is folded away.
func (c *Character) EqualsIgnoreCase(other *Character) bool {
	return c.foldedCase == other.foldedCase
}

// MatchesSmart implements smart base matching on top of smart case
// matching, with the character as the query and other as the
// candidate:
//   - e matches e, é, E, É;
//   - E matches E, É but not e, é;
//   - é matches é, É but not e, E;
//   - É matches É but not e, é, E.
func (c *Character) MatchesSmart(other *Character) bool {
	return (c.isBase && c.EqualsBase(other) &&
		(!c.uppercase || other.uppercase)) ||
		(!c.uppercase && c.EqualsIgnoreCase(other)) ||
		c.normal == other.normal
}
