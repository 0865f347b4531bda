package idmatch

import (
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func resultTexts(results []Result) []string {
	texts := make([]string, 0, len(results))
	for _, result := range results {
		texts = append(texts, result.Text())
	}
	return texts
}

func TestDatabaseAddAndQuery(t *testing.T) {
	database := NewIdentifierDatabase()
	require.NoError(t, database.AddIdentifiers(
		[]string{"foobar", "fizzbuzz"}, "cpp", "/foo.cpp"))

	results, err := database.ResultsForQueryAndType("fbr", "cpp", 0)
	require.NoError(t, err)
	require.Equal(t, []string{"foobar"}, resultTexts(results))
}

func TestDatabaseUnknownFiletype(t *testing.T) {
	database := NewIdentifierDatabase()
	require.NoError(t, database.AddIdentifiers([]string{"foobar"}, "cpp", "/foo.cpp"))

	results, err := database.ResultsForQueryAndType("foo", "python", 0)
	require.NoError(t, err)
	require.Empty(t, results)
}

func TestDatabaseFiletypePartitioning(t *testing.T) {
	database := NewIdentifierDatabase()
	require.NoError(t, database.AddIdentifiers([]string{"cppIdent"}, "cpp", "/foo.cpp"))
	require.NoError(t, database.AddIdentifiers([]string{"pyIdent"}, "python", "/foo.py"))

	results, err := database.ResultsForQueryAndType("ident", "cpp", 0)
	require.NoError(t, err)
	require.Equal(t, []string{"cppIdent"}, resultTexts(results))
}

func TestDatabaseDeduplicatesAcrossFiles(t *testing.T) {
	database := NewIdentifierDatabase()
	require.NoError(t, database.AddIdentifiers(
		[]string{"foobar", "foobar", "foobar"}, "cpp", "/foo.cpp"))
	require.NoError(t, database.AddIdentifiers([]string{"foobar"}, "cpp", "/bar.cpp"))

	results, err := database.ResultsForQueryAndType("foo", "cpp", 0)
	require.NoError(t, err)
	require.Equal(t, []string{"foobar"}, resultTexts(results))
}

func TestDatabaseClearForFile(t *testing.T) {
	database := NewIdentifierDatabase()
	require.NoError(t, database.AddIdentifiers([]string{"fooqux"}, "cpp", "/foo.cpp"))
	require.NoError(t, database.AddIdentifiers([]string{"barqux"}, "cpp", "/bar.cpp"))

	database.ClearCandidatesStoredForFile("cpp", "/foo.cpp")

	results, err := database.ResultsForQueryAndType("qux", "cpp", 0)
	require.NoError(t, err)
	require.Equal(t, []string{"barqux"}, resultTexts(results))
}

func TestDatabaseAddIdentifiersFromMap(t *testing.T) {
	database := NewIdentifierDatabase()
	require.NoError(t, database.AddIdentifiersFromMap(FiletypeIdentifierMap{
		"cpp": {
			"/foo.cpp": {"fooIdent"},
			"/bar.cpp": {"barIdent"},
		},
		"python": {
			"/baz.py": {"bazIdent"},
		},
	}))

	results, err := database.ResultsForQueryAndType("ident", "cpp", 0)
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"fooIdent", "barIdent"}, resultTexts(results))

	results, err = database.ResultsForQueryAndType("ident", "python", 0)
	require.NoError(t, err)
	require.Equal(t, []string{"bazIdent"}, resultTexts(results))
}

func TestDatabaseMaxResults(t *testing.T) {
	database := NewIdentifierDatabase()
	identifiers := make([]string, 20)
	for i := range identifiers {
		identifiers[i] = fmt.Sprintf("match%02d", i)
	}
	require.NoError(t, database.AddIdentifiers(identifiers, "cpp", "/foo.cpp"))

	results, err := database.ResultsForQueryAndType("match", "cpp", 5)
	require.NoError(t, err)
	require.Len(t, results, 5)
	// Candidates tie on every feature except the final lexicographic
	// comparison.
	require.Equal(t,
		[]string{"match00", "match01", "match02", "match03", "match04"},
		resultTexts(results))
}

func TestDatabaseEmptyQueryRanksLexicographically(t *testing.T) {
	database := NewIdentifierDatabase()
	require.NoError(t, database.AddIdentifiers([]string{"foo", "bar"}, "cpp", "/foo.cpp"))

	results, err := database.ResultsForQueryAndType("", "cpp", 0)
	require.NoError(t, err)
	require.Equal(t, []string{"bar", "foo"}, resultTexts(results))
}

func TestDatabaseSkipsOversizeCandidates(t *testing.T) {
	database := NewIdentifierDatabase()
	require.NoError(t, database.AddIdentifiers(
		[]string{strings.Repeat("a", maxCandidateSize+1), "aaa"}, "cpp", "/foo.cpp"))

	results, err := database.ResultsForQueryAndType("a", "cpp", 0)
	require.NoError(t, err)
	require.Equal(t, []string{"aaa"}, resultTexts(results))
}

func TestDatabaseInvalidQuery(t *testing.T) {
	database := NewIdentifierDatabase()
	require.NoError(t, database.AddIdentifiers([]string{"foobar"}, "cpp", "/foo.cpp"))

	_, err := database.ResultsForQueryAndType("\xff", "cpp", 0)
	require.Equal(t, ErrInvalidLeadingByte, err)
}

func TestDatabaseConcurrentAddAndQuery(t *testing.T) {
	database := NewIdentifierDatabase()

	var wg sync.WaitGroup
	for worker := 0; worker < 4; worker++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			path := fmt.Sprintf("/file%d.cpp", worker)
			for i := 0; i < 50; i++ {
				identifier := fmt.Sprintf("ident%d_%d", worker, i)
				if err := database.AddIdentifiers([]string{identifier}, "cpp", path); err != nil {
					t.Errorf("AddIdentifiers failed: %s", err)
				}
				if _, err := database.ResultsForQueryAndType("ident", "cpp", 10); err != nil {
					t.Errorf("ResultsForQueryAndType failed: %s", err)
				}
			}
		}(worker)
	}
	wg.Wait()

	results, err := database.ResultsForQueryAndType("ident", "cpp", 0)
	require.NoError(t, err)
	require.Len(t, results, 200)
}
