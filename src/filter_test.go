package idmatch

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type completionItem struct {
	InsertionText string
	Kind          string
}

func itemText(item completionItem) string {
	return item.InsertionText
}

func TestFilterAndSortCandidatesStrings(t *testing.T) {
	identity := func(s string) string { return s }

	filtered, err := FilterAndSortCandidates(
		[]string{"foobar", "nomatch", "fooBaR"}, identity, "fbr", 0)
	require.NoError(t, err)
	require.Equal(t, []string{"fooBaR", "foobar"}, filtered)
}

func TestFilterAndSortCandidatesItems(t *testing.T) {
	items := []completionItem{
		{"STDIN_FILENO", "macro"},
		{"stdin", "variable"},
		{"stdout", "variable"},
	}

	filtered, err := FilterAndSortCandidates(items, itemText, "std", 0)
	require.NoError(t, err)
	require.Equal(t, []completionItem{
		{"stdin", "variable"},
		{"stdout", "variable"},
		{"STDIN_FILENO", "macro"},
	}, filtered)
}

func TestFilterAndSortCandidatesMaxResults(t *testing.T) {
	identity := func(s string) string { return s }

	filtered, err := FilterAndSortCandidates(
		[]string{"fooc", "foob", "fooa", "food"}, identity, "foo", 2)
	require.NoError(t, err)
	require.Equal(t, []string{"fooa", "foob"}, filtered)
}

func TestFilterAndSortCandidatesEmptyQuery(t *testing.T) {
	identity := func(s string) string { return s }

	filtered, err := FilterAndSortCandidates(
		[]string{"foo", "bar"}, identity, "", 0)
	require.NoError(t, err)
	require.Equal(t, []string{"bar", "foo"}, filtered)
}

func TestFilterAndSortCandidatesOversize(t *testing.T) {
	identity := func(s string) string { return s }

	filtered, err := FilterAndSortCandidates(
		[]string{strings.Repeat("f", maxCandidateSize+1), "foo"}, identity, "f", 0)
	require.NoError(t, err)
	require.Equal(t, []string{"foo"}, filtered)
}

func TestFilterAndSortCandidatesDuplicateItemsKept(t *testing.T) {
	identity := func(s string) string { return s }

	// Unlike the identifier database, one-shot filtering keeps
	// duplicate items: each input item is ranked on its own.
	filtered, err := FilterAndSortCandidates(
		[]string{"foo", "foo"}, identity, "foo", 0)
	require.NoError(t, err)
	require.Equal(t, []string{"foo", "foo"}, filtered)
}
