package idmatch

import (
	"sort"

	"github.com/idmatch/idmatch/src/util"
)

// Result records how a query matched a candidate, together with the
// features driving the ranking. The zero Result means the query is not
// a subsequence of the candidate.
type Result struct {
	// true when the characters of the query are a subsequence of the
	// characters in the candidate text, e.g. the characters "abc" are a
	// subsequence for "xxaygbefc" but not for "axxcb" since they occur
	// in the correct order ('a' then 'b' then 'c') in the first string
	// but not in the second.
	isSubsequence bool

	// true when the first character of the query and the candidate match
	firstCharSameInQueryAndText bool

	// true when the query is a prefix of the candidate string, e.g.
	// "foo" query for "foobar" candidate.
	queryIsCandidatePrefix bool

	// The sum of the indexes of all the letters the query "hit" in the
	// candidate text. For instance, the result for the query "abc" in
	// the candidate "012a45bc8" has charMatchIndexSum of 3 + 6 + 7 = 16
	// because those are the char indexes of those letters in the
	// candidate string.
	charMatchIndexSum int

	// The number of characters in the query that match word boundary
	// characters in the candidate, in order of appearance and ignoring
	// case.
	numWordBoundaryMatches int

	candidate *Candidate
	query     *Word
}

// longestCommonSubsequenceLength computes the length of the longest
// common subsequence of two character sequences with EqualsBase as the
// matching predicate, using two rolling rows sized to the shorter
// sequence.
func longestCommonSubsequenceLength(first, second []*Character) int {
	longer, shorter := first, second
	if len(second) > len(first) {
		longer, shorter = second, first
	}

	previous := make([]int, len(shorter)+1)
	current := make([]int, len(shorter)+1)

	for i := 0; i < len(longer); i++ {
		for j := 0; j < len(shorter); j++ {
			if longer[i].EqualsBase(shorter[j]) {
				current[j+1] = previous[j] + 1
			} else {
				current[j+1] = util.Max(current[j], previous[j+1])
			}
		}
		copy(previous[1:], current[1:])
	}

	return current[len(shorter)]
}

func newResult(candidate *Candidate, query *Word, charMatchIndexSum int,
	queryIsCandidatePrefix bool) Result {

	result := Result{
		isSubsequence:          true,
		queryIsCandidatePrefix: queryIsCandidatePrefix,
		charMatchIndexSum:      charMatchIndexSum,
		candidate:              candidate,
		query:                  query,
	}

	if !query.IsEmpty() && !candidate.IsEmpty() {
		result.firstCharSameInQueryAndText =
			candidate.Characters()[0].EqualsBase(query.Characters()[0])
		result.numWordBoundaryMatches = longestCommonSubsequenceLength(
			query.Characters(), candidate.WordBoundaryChars())
	}
	return result
}

// Text returns the candidate text of the result.
func (r Result) Text() string {
	return r.candidate.Text()
}

// IsSubsequence reports whether the query matched the candidate.
func (r Result) IsSubsequence() bool {
	return r.isSubsequence
}

func (r Result) numWordBoundaryChars() int {
	return len(r.candidate.WordBoundaryChars())
}

// Less defines the ranking order between two results for the same
// query. Only the required comparisons are made since this is called a
// bazillion times. A result has more weight than another if one of
// these conditions is satisfied, in that order:
//   - it starts with the same character as the query while the other
//     does not;
//   - one of the results has every query character matched by a word
//     boundary character and it has more word boundary characters
//     matched than the other;
//   - both results have every query character matched by a word
//     boundary character and it has less word boundary characters than
//     the other;
//   - the query is a prefix of the result but not a prefix of the
//     other;
//   - it has more word boundary characters matched than the other;
//   - it has less word boundary characters than the other;
//   - its sum of indexes of its matched characters is less than the
//     sum of indexes of the other result;
//   - it has less characters than the other result;
//   - all its characters are in lowercase while the other has at least
//     one uppercase character;
//   - it appears before the other result in lexicographic order on the
//     case-swapped text, which ranks "foo" before "Foo".
func (r Result) Less(other Result) bool {
	if !r.query.IsEmpty() {
		if r.firstCharSameInQueryAndText != other.firstCharSameInQueryAndText {
			return r.firstCharSameInQueryAndText
		}

		if r.numWordBoundaryMatches == r.query.Length() ||
			other.numWordBoundaryMatches == other.query.Length() {
			if r.numWordBoundaryMatches != other.numWordBoundaryMatches {
				return r.numWordBoundaryMatches > other.numWordBoundaryMatches
			}
			if r.numWordBoundaryChars() != other.numWordBoundaryChars() {
				return r.numWordBoundaryChars() < other.numWordBoundaryChars()
			}
		}

		if r.queryIsCandidatePrefix != other.queryIsCandidatePrefix {
			return r.queryIsCandidatePrefix
		}

		if r.numWordBoundaryMatches != other.numWordBoundaryMatches {
			return r.numWordBoundaryMatches > other.numWordBoundaryMatches
		}

		if r.numWordBoundaryChars() != other.numWordBoundaryChars() {
			return r.numWordBoundaryChars() < other.numWordBoundaryChars()
		}

		if r.charMatchIndexSum != other.charMatchIndexSum {
			return r.charMatchIndexSum < other.charMatchIndexSum
		}

		if r.candidate.Length() != other.candidate.Length() {
			return r.candidate.Length() < other.candidate.Length()
		}

		if r.candidate.TextIsLowercase() != other.candidate.TextIsLowercase() {
			return r.candidate.TextIsLowercase()
		}
	}

	// Lexicographic comparison, but we prioritize lowercase letters
	// over uppercase ones. So "foo" < "Foo".
	return r.candidate.CaseSwappedText() < other.candidate.CaseSwappedText()
}

// ByRelevance is for sorting results
type ByRelevance []Result

func (a ByRelevance) Len() int {
	return len(a)
}

func (a ByRelevance) Swap(i, j int) {
	a[i], a[j] = a[j], a[i]
}

func (a ByRelevance) Less(i, j int) bool {
	return a[i].Less(a[j])
}

// partition picks the median of the first, middle and last elements of
// elements[lo:hi] as the pivot, partitions the range around it and
// returns the pivot's final position.
func partition[T any](elements []T, lo, hi int, less func(T, T) bool) int {
	mid := lo + (hi-lo)/2
	if less(elements[mid], elements[lo]) {
		elements[mid], elements[lo] = elements[lo], elements[mid]
	}
	if less(elements[hi-1], elements[lo]) {
		elements[hi-1], elements[lo] = elements[lo], elements[hi-1]
	}
	if less(elements[hi-1], elements[mid]) {
		elements[hi-1], elements[mid] = elements[mid], elements[hi-1]
	}
	elements[mid], elements[hi-1] = elements[hi-1], elements[mid]

	pivot := elements[hi-1]
	store := lo
	for i := lo; i < hi-1; i++ {
		if less(elements[i], pivot) {
			elements[i], elements[store] = elements[store], elements[i]
			store++
		}
	}
	elements[store], elements[hi-1] = elements[hi-1], elements[store]
	return store
}

// nthElement rearranges elements so that the element at position n is
// the one that would be there if the whole slice was sorted, with every
// preceding element no greater than it.
func nthElement[T any](elements []T, n int, less func(T, T) bool) {
	lo, hi := 0, len(elements)
	for hi-lo > 1 {
		p := partition(elements, lo, hi, less)
		switch {
		case n < p:
			hi = p
		case n > p:
			lo = p + 1
		default:
			return
		}
	}
}

// partialSort sorts the smallest maxElements elements to the front of
// the slice and returns that prefix. A maxElements of zero or less, or
// one not smaller than the slice, sorts the whole slice.
func partialSort[T any](elements []T, maxElements int, less func(T, T) bool) []T {
	if maxElements <= 0 || maxElements >= len(elements) {
		sort.Slice(elements, func(i, j int) bool {
			return less(elements[i], elements[j])
		})
		return elements
	}

	nthElement(elements, maxElements, less)
	top := elements[:maxElements]
	sort.Slice(top, func(i, j int) bool {
		return less(top[i], top[j])
	})
	return top
}

// PartialSort keeps the best maxResults results at the front of the
// slice in ranking order and returns that prefix. A maxResults of zero
// ranks everything.
func PartialSort(results []Result, maxResults int) []Result {
	return partialSort(results, maxResults, Result.Less)
}
