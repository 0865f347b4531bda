package idmatch

// IdentifierCompleter is the façade over the identifier database: it
// feeds identifiers in from source buffers and tag files and turns
// ranked results back into plain candidate strings.
type IdentifierCompleter struct {
	database *IdentifierDatabase
}

// NewIdentifierCompleter returns a completer over an empty database.
func NewIdentifierCompleter() *IdentifierCompleter {
	return &IdentifierCompleter{database: NewIdentifierDatabase()}
}

// NewIdentifierCompleterWithCandidates returns a completer whose
// database is seeded with the given identifiers, stored under the empty
// filetype and filepath.
func NewIdentifierCompleterWithCandidates(candidates []string) (*IdentifierCompleter, error) {
	completer := NewIdentifierCompleter()
	if err := completer.AddIdentifiersToDatabase(candidates, "", ""); err != nil {
		return nil, err
	}
	return completer, nil
}

// AddIdentifiersToDatabase adds the identifiers under the given
// filetype and filepath.
func (c *IdentifierCompleter) AddIdentifiersToDatabase(
	newCandidates []string, filetype string, filepath string) error {
	return c.database.AddIdentifiers(newCandidates, filetype, filepath)
}

// ClearForFileAndAddIdentifiersToDatabase drops every identifier stored
// for the (filetype, filepath) pair before adding the new ones, so the
// bucket reflects the current contents of the file.
func (c *IdentifierCompleter) ClearForFileAndAddIdentifiersToDatabase(
	newCandidates []string, filetype string, filepath string) error {
	c.database.ClearCandidatesStoredForFile(filetype, filepath)
	return c.AddIdentifiersToDatabase(newCandidates, filetype, filepath)
}

// AddIdentifiersToDatabaseFromTagFiles loads identifiers from the given
// tag files. Files that cannot be read are skipped.
func (c *IdentifierCompleter) AddIdentifiersToDatabaseFromTagFiles(
	absolutePathsToTagFiles []string) error {
	for _, path := range absolutePathsToTagFiles {
		if err := c.database.AddIdentifiersFromMap(
			ExtractIdentifiersFromTagsFile(path)); err != nil {
			return err
		}
	}
	return nil
}

// CandidatesForQuery returns the candidates matching the query over all
// identifiers stored under the empty filetype.
func (c *IdentifierCompleter) CandidatesForQuery(
	query string, maxCandidates int) ([]string, error) {
	return c.CandidatesForQueryAndType(query, "", maxCandidates)
}

// CandidatesForQueryAndType returns the candidate texts matching the
// query under the filetype, best first, at most maxCandidates of them
// unless maxCandidates is zero.
func (c *IdentifierCompleter) CandidatesForQueryAndType(
	query string, filetype string, maxCandidates int) ([]string, error) {
	results, err := c.database.ResultsForQueryAndType(query, filetype, maxCandidates)
	if err != nil {
		return nil, err
	}

	candidates := make([]string, 0, len(results))
	for _, result := range results {
		candidates = append(candidates, result.Text())
	}
	return candidates, nil
}
