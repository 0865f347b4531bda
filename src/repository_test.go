package idmatch

import (
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRepositoryReturnsElementsInInputOrder(t *testing.T) {
	repository := NewRepository(newCandidate)

	candidates, err := repository.GetElements([]string{"foo", "bar", "foo"})
	require.NoError(t, err)
	require.Len(t, candidates, 3)
	require.Equal(t, "foo", candidates[0].Text())
	require.Equal(t, "bar", candidates[1].Text())
	require.Equal(t, "foo", candidates[2].Text())
}

func TestRepositoryInternsElements(t *testing.T) {
	repository := NewRepository(newCandidate)

	first, err := repository.GetElements([]string{"foo"})
	require.NoError(t, err)
	second, err := repository.GetElements([]string{"foo"})
	require.NoError(t, err)
	require.Same(t, first[0], second[0])

	require.Equal(t, 1, repository.NumStoredElements())
}

func TestRepositoryClear(t *testing.T) {
	repository := NewRepository(newCandidate)

	_, err := repository.GetElements([]string{"foo", "bar"})
	require.NoError(t, err)
	require.Equal(t, 2, repository.NumStoredElements())

	repository.Clear()
	require.Equal(t, 0, repository.NumStoredElements())
}

func TestRepositoryBuildErrorPropagates(t *testing.T) {
	repository := NewRepository(newCandidate)

	_, err := repository.GetElements([]string{"\xff"})
	require.Equal(t, ErrInvalidLeadingByte, err)
}

func TestRepositoryConcurrentAccess(t *testing.T) {
	repository := NewRepository(newCandidate)

	var wg sync.WaitGroup
	for worker := 0; worker < 8; worker++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				texts := []string{
					fmt.Sprintf("shared%d", i),
					fmt.Sprintf("worker%d_%d", worker, i),
				}
				elements, err := repository.GetElements(texts)
				if err != nil || len(elements) != 2 {
					t.Errorf("GetElements(%q) = %v, %v", texts, elements, err)
				}
			}
		}(worker)
	}
	wg.Wait()

	// 100 shared texts plus 100 per worker.
	require.Equal(t, 900, repository.NumStoredElements())

	shared, err := repository.GetElements([]string{"shared0"})
	require.NoError(t, err)
	again, err := repository.GetElements([]string{"shared0"})
	require.NoError(t, err)
	require.Same(t, shared[0], again[0])
}

func TestInternCandidatesOversize(t *testing.T) {
	repository := NewRepository(newCandidate)

	longText := strings.Repeat("a", maxCandidateSize+1)
	candidates, err := internCandidates(repository, []string{"short", longText})
	require.NoError(t, err)
	require.Len(t, candidates, 2)
	require.Equal(t, "short", candidates[0].Text())
	// Oversize candidates collapse to the empty sentinel.
	require.Equal(t, "", candidates[1].Text())
	require.True(t, candidates[1].IsEmpty())
	require.Equal(t, 2, repository.NumStoredElements())
}

func TestInternCandidatesBoundary(t *testing.T) {
	repository := NewRepository(newCandidate)

	exact := strings.Repeat("b", maxCandidateSize)
	candidates, err := internCandidates(repository, []string{exact})
	require.NoError(t, err)
	require.Equal(t, exact, candidates[0].Text())
}
