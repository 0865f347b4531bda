package idmatch

type indexedResult struct {
	result Result
	index  int
}

func (ir indexedResult) less(other indexedResult) bool {
	return ir.result.Less(other.result)
}

// FilterAndSortCandidates ranks an externally provided list of items
// against the query and returns the matching items, best first. Items
// are opaque: textOf extracts the candidate text to match. At most
// maxResults items are returned unless maxResults is zero.
//
// The extracted texts are interned in the candidate repository so
// repeated calls over the same completion lists amortize the Unicode
// analysis.
func FilterAndSortCandidates[T any](items []T, textOf func(T) string,
	query string, maxResults int) ([]T, error) {

	texts := make([]string, len(items))
	for i, item := range items {
		texts[i] = textOf(item)
	}
	candidates, err := internCandidates(candidateRepository, texts)
	if err != nil {
		return nil, err
	}

	queryWord, err := NewWord(query)
	if err != nil {
		return nil, err
	}

	var results []indexedResult
	for i, candidate := range candidates {
		if candidate.IsEmpty() || !candidate.ContainsBytes(queryWord) {
			continue
		}
		if result := candidate.QueryMatchResult(queryWord); result.IsSubsequence() {
			results = append(results, indexedResult{result, i})
		}
	}

	results = partialSort(results, maxResults, indexedResult.less)

	filtered := make([]T, 0, len(results))
	for _, result := range results {
		filtered = append(filtered, items[result.index])
	}
	return filtered, nil
}
