package idmatch

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func candidatesForQuery(t *testing.T, completer *IdentifierCompleter, query string) []string {
	t.Helper()
	candidates, err := completer.CandidatesForQuery(query, 0)
	require.NoError(t, err)
	return candidates
}

func completerWith(t *testing.T, candidates ...string) *IdentifierCompleter {
	t.Helper()
	completer, err := NewIdentifierCompleterWithCandidates(candidates)
	require.NoError(t, err)
	return completer
}

func TestCompleterOneCandidate(t *testing.T) {
	completer := completerWith(t, "foobar")
	require.Equal(t, []string{"foobar"}, candidatesForQuery(t, completer, "fbr"))
}

func TestCompleterManyCandidatesSimple(t *testing.T) {
	completer := completerWith(t, "foobar", "foobartest", "Foobartest")
	require.Equal(t,
		[]string{"foobar", "foobartest", "Foobartest"},
		candidatesForQuery(t, completer, "fbr"))
}

func TestCompleterEmptyCandidateNeverMatches(t *testing.T) {
	completer := completerWith(t, "")
	require.Empty(t, candidatesForQuery(t, completer, ""))
	require.Empty(t, candidatesForQuery(t, completer, "foo"))
}

func TestCompleterIgnoresCandidatesShorterThanQuery(t *testing.T) {
	completer := completerWith(t, "fo", "foo")
	require.Empty(t, candidatesForQuery(t, completer, "fooo"))
}

func TestCompleterUnicodeCandidates(t *testing.T) {
	completer := completerWith(t, "fooémbar", "fooembar")
	require.Equal(t,
		[]string{"fooembar", "fooémbar"},
		candidatesForQuery(t, completer, "fooem"))
	require.Equal(t,
		[]string{"fooémbar"},
		candidatesForQuery(t, completer, "fooém"))
}

func TestCompleterSmartCaseFiltering(t *testing.T) {
	completer := completerWith(t, "fooBar", "fooBaR")
	require.Equal(t,
		[]string{"fooBaR", "fooBar"},
		candidatesForQuery(t, completer, "fBr"))
}

func TestCompleterFirstCharSameAsQueryWins(t *testing.T) {
	completer := completerWith(t, "foobar", "afoobar")
	require.Equal(t,
		[]string{"foobar", "afoobar"},
		candidatesForQuery(t, completer, "fbr"))
}

func TestCompleterCompleteMatchForWordBoundaryCharsWins(t *testing.T) {
	completer := completerWith(t, "FooBarQux", "FBaqux")
	require.Equal(t,
		[]string{"FooBarQux", "FBaqux"},
		candidatesForQuery(t, completer, "fbq"))

	completer = completerWith(t, "CompleterTest", "CompleteMatchForWordBoundaryCharsWins")
	require.Equal(t,
		[]string{"CompleterTest", "CompleteMatchForWordBoundaryCharsWins"},
		candidatesForQuery(t, completer, "ct"))
}

func TestCompleterRatioUtilizationTieBreak(t *testing.T) {
	completer := completerWith(t, "aGaaFooBarQux", "aBaafbq")
	require.Equal(t,
		[]string{"aGaaFooBarQux", "aBaafbq"},
		candidatesForQuery(t, completer, "fbq"))

	completer = completerWith(t, "FooBar", "FooBarRux")
	require.Equal(t,
		[]string{"FooBar", "FooBarRux"},
		candidatesForQuery(t, completer, "fba"))
}

func TestCompleterEarlierMatchWins(t *testing.T) {
	completer := completerWith(t, "FooBarQux", "FaBarQux")
	require.Equal(t,
		[]string{"FaBarQux", "FooBarQux"},
		candidatesForQuery(t, completer, "fbq"))
}

func TestCompleterShorterCandidateWins(t *testing.T) {
	completer := completerWith(t, "CompleterT", "CompleterTest")
	require.Equal(t,
		[]string{"CompleterT", "CompleterTest"},
		candidatesForQuery(t, completer, "co"))

	completer = completerWith(t, "font-family", "font-face")
	require.Equal(t,
		[]string{"font-face", "font-family"},
		candidatesForQuery(t, completer, "fo"))
}

func TestCompleterShorterAndLowercaseWins(t *testing.T) {
	completer := completerWith(t, "STDIN_FILENO", "stdin")
	require.Equal(t,
		[]string{"stdin", "STDIN_FILENO"},
		candidatesForQuery(t, completer, "std"))
}

func TestCompleterNonAlnumStartChar(t *testing.T) {
	completer := completerWith(t, "-zoo-foo")
	require.Equal(t, []string{"-zoo-foo"}, candidatesForQuery(t, completer, "-z"))
}

func TestCompleterEmptyQueryRanksLexicographically(t *testing.T) {
	completer := completerWith(t, "foo", "bar")
	require.Equal(t, []string{"bar", "foo"}, candidatesForQuery(t, completer, ""))
}

func TestCompleterDuplicatesRemoved(t *testing.T) {
	completer := completerWith(t, "foobar", "foobar", "foobar")
	require.Equal(t, []string{"foobar"}, candidatesForQuery(t, completer, "foo"))
}

func TestCompleterNoMatch(t *testing.T) {
	completer := completerWith(t, "foobar")
	require.Empty(t, candidatesForQuery(t, completer, "zzz"))
}

func TestCompleterMaxCandidates(t *testing.T) {
	completer := completerWith(t, "foobar1", "foobar2", "foobar3")
	candidates, err := completer.CandidatesForQuery("foobar", 2)
	require.NoError(t, err)
	require.Equal(t, []string{"foobar1", "foobar2"}, candidates)
}

func TestCompleterClearForFile(t *testing.T) {
	completer := NewIdentifierCompleter()
	require.NoError(t, completer.AddIdentifiersToDatabase(
		[]string{"oldIdent"}, "cpp", "/foo.cpp"))
	require.NoError(t, completer.ClearForFileAndAddIdentifiersToDatabase(
		[]string{"newIdent"}, "cpp", "/foo.cpp"))

	candidates, err := completer.CandidatesForQueryAndType("ident", "cpp", 0)
	require.NoError(t, err)
	require.Equal(t, []string{"newIdent"}, candidates)
}

// generateCandidates returns count candidates of the form [a-z]{5} in
// increasing order.
func generateCandidates(count int) []string {
	candidates := make([]string, 0, count)
	for i := 0; i < count; i++ {
		candidate := make([]byte, 5)
		for pos, letter := 4, i; pos >= 0; pos, letter = pos-1, letter/26 {
			candidate[pos] = byte(letter%26) + 'a'
		}
		candidates = append(candidates, string(candidate))
	}
	return candidates
}

func TestCompleterLotOfCandidates(t *testing.T) {
	candidates := generateCandidates(2048)
	completer := completerWith(t, candidates...)

	require.Equal(t, candidates, candidatesForQuery(t, completer, "aa"))

	top, err := completer.CandidatesForQuery("aa", 2)
	require.NoError(t, err)
	require.Equal(t, []string{"aaaaa", "aaaab"}, top)
}

func BenchmarkCandidatesForQuery(b *testing.B) {
	completer := NewIdentifierCompleter()
	if err := completer.AddIdentifiersToDatabase(
		generateCandidates(4096), "cpp", "/foo.cpp"); err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := completer.CandidatesForQueryAndType("aA", "cpp", 10); err != nil {
			b.Fatal(err)
		}
	}
}

func writeTagFile(t *testing.T, dir string, name string, contents string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestCompleterTagFiles(t *testing.T) {
	dir := t.TempDir()
	tagFile := writeTagFile(t, dir, "tags",
		"foosy\tfoo.go\t/^func foosy/;\"\tf\tlanguage:Go\n"+
			"barsy\t"+filepath.Join(dir, "bar.py")+"\t1;\"\tkind:m\tlanguage:Python\n"+
			"fooaaa\tfoo.go\t/^class fooaaa/;\"\tlanguage:Gibberish\n"+
			"invalid line\n")

	completer := NewIdentifierCompleter()
	require.NoError(t, completer.AddIdentifiersToDatabaseFromTagFiles([]string{tagFile}))

	candidates, err := completer.CandidatesForQueryAndType("foo", "go", 0)
	require.NoError(t, err)
	require.Equal(t, []string{"foosy"}, candidates)

	candidates, err = completer.CandidatesForQueryAndType("bar", "python", 0)
	require.NoError(t, err)
	require.Equal(t, []string{"barsy"}, candidates)

	// Unknown languages are skipped.
	candidates, err = completer.CandidatesForQueryAndType("fooaaa", "gibberish", 0)
	require.NoError(t, err)
	require.Empty(t, candidates)
}

func TestCompleterUnreadableTagFile(t *testing.T) {
	completer := NewIdentifierCompleter()
	require.NoError(t, completer.AddIdentifiersToDatabaseFromTagFiles(
		[]string{"/does/not/exist/tags"}))
}
