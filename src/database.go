package idmatch

import "sync"

// FiletypeIdentifierMap groups identifiers by filetype and then by the
// path of the file they were found in.
type FiletypeIdentifierMap map[string]map[string][]string

// IdentifierDatabase stores the identifiers fed to the completion
// engine, partitioned by filetype and filepath. Candidates are unique
// by text within a (filetype, filepath) bucket and are interned in the
// candidate repository, so the per-bucket sets only hold references.
//
// IdentifierDatabase is thread-safe: adds and clears are serialized by
// a writer lock while queries iterate under a reader lock, which keeps
// the borrowed candidate references alive and the structure unchanged
// for the duration of the scan.
type IdentifierDatabase struct {
	mutex      sync.RWMutex
	filetypes  map[string]map[string]map[string]*Candidate
	repository *Repository[Candidate]
}

// NewIdentifierDatabase returns an empty database interning its
// candidates in the process-wide candidate repository.
func NewIdentifierDatabase() *IdentifierDatabase {
	return &IdentifierDatabase{
		filetypes:  make(map[string]map[string]map[string]*Candidate),
		repository: candidateRepository,
	}
}

// AddIdentifiers adds each identifier not already present to the
// (filetype, filepath) bucket, interning new texts in the candidate
// repository.
func (db *IdentifierDatabase) AddIdentifiers(identifiers []string, filetype string, filepath string) error {
	candidates, err := internCandidates(db.repository, identifiers)
	if err != nil {
		return err
	}

	db.mutex.Lock()
	defer db.mutex.Unlock()

	bucket := db.candidateSet(filetype, filepath)
	for _, candidate := range candidates {
		if _, present := bucket[candidate.Text()]; !present {
			bucket[candidate.Text()] = candidate
		}
	}
	return nil
}

// AddIdentifiersFromMap adds every identifier group of the map to its
// (filetype, filepath) bucket.
func (db *IdentifierDatabase) AddIdentifiersFromMap(identifierMap FiletypeIdentifierMap) error {
	for filetype, pathsToIdentifiers := range identifierMap {
		for filepath, identifiers := range pathsToIdentifiers {
			if err := db.AddIdentifiers(identifiers, filetype, filepath); err != nil {
				return err
			}
		}
	}
	return nil
}

// ClearCandidatesStoredForFile empties the (filetype, filepath) bucket.
func (db *IdentifierDatabase) ClearCandidatesStoredForFile(filetype string, filepath string) {
	db.mutex.Lock()
	defer db.mutex.Unlock()
	if pathsToCandidates, found := db.filetypes[filetype]; found {
		pathsToCandidates[filepath] = make(map[string]*Candidate)
	}
}

// ResultsForQueryAndType returns the results of matching the query
// against every distinct candidate stored under the filetype, best
// first. At most maxResults results are returned unless maxResults is
// zero, in which case all of them are.
func (db *IdentifierDatabase) ResultsForQueryAndType(query string, filetype string, maxResults int) ([]Result, error) {
	db.mutex.RLock()
	pathsToCandidates, found := db.filetypes[filetype]
	db.mutex.RUnlock()
	if !found {
		return nil, nil
	}

	queryWord, err := NewWord(query)
	if err != nil {
		return nil, err
	}

	seenCandidates := make(map[string]struct{})
	var results []Result

	db.mutex.RLock()
	for _, candidates := range pathsToCandidates {
		for _, candidate := range candidates {
			if _, seen := seenCandidates[candidate.Text()]; seen {
				continue
			}
			seenCandidates[candidate.Text()] = struct{}{}

			if candidate.IsEmpty() || !candidate.ContainsBytes(queryWord) {
				continue
			}

			if result := candidate.QueryMatchResult(queryWord); result.IsSubsequence() {
				results = append(results, result)
			}
		}
	}
	db.mutex.RUnlock()

	return PartialSort(results, maxResults), nil
}

// candidateSet returns the candidate set for the (filetype, filepath)
// pair, creating it if needed. The caller must hold the writer lock.
func (db *IdentifierDatabase) candidateSet(filetype string, filepath string) map[string]*Candidate {
	pathsToCandidates, found := db.filetypes[filetype]
	if !found {
		pathsToCandidates = make(map[string]map[string]*Candidate)
		db.filetypes[filetype] = pathsToCandidates
	}
	candidates, found := pathsToCandidates[filepath]
	if !found {
		candidates = make(map[string]*Candidate)
		pathsToCandidates[filepath] = candidates
	}
	return candidates
}
