package idmatch

// Candidate is a Word from the identifier pool, extended with the
// features the ranking needs: the case-swapped text, the sequence of
// word boundary characters and whether the whole text is lowercase.
// Candidates are interned in the candidate repository.
type Candidate struct {
	Word
	caseSwappedText   string
	wordBoundaryChars []*Character
	textIsLowercase   bool
}

func newCandidate(text string) (*Candidate, error) {
	word, err := NewWord(text)
	if err != nil {
		return nil, err
	}

	candidate := &Candidate{Word: *word, textIsLowercase: true}
	for _, character := range candidate.Characters() {
		candidate.caseSwappedText += character.SwappedCase()
		if character.IsUppercase() {
			candidate.textIsLowercase = false
		}
	}
	candidate.computeWordBoundaryChars()
	return candidate, nil
}

// computeWordBoundaryChars collects the characters starting a new word
// within the candidate text. A character is a word boundary character
// if one of these is true:
//   - it is the first character and not a punctuation;
//   - it is uppercase but the previous character is not;
//   - it is a letter and the previous character is a punctuation.
func (c *Candidate) computeWordBoundaryChars() {
	characters := c.Characters()
	if len(characters) == 0 {
		return
	}

	if !characters[0].IsPunctuation() {
		c.wordBoundaryChars = append(c.wordBoundaryChars, characters[0])
	}

	for index := 1; index < len(characters); index++ {
		previous := characters[index-1]
		character := characters[index]

		if (!previous.IsUppercase() && character.IsUppercase()) ||
			(previous.IsPunctuation() && character.IsLetter()) {
			c.wordBoundaryChars = append(c.wordBoundaryChars, character)
		}
	}
}

func (c *Candidate) CaseSwappedText() string {
	return c.caseSwappedText
}

func (c *Candidate) WordBoundaryChars() []*Character {
	return c.wordBoundaryChars
}

func (c *Candidate) TextIsLowercase() bool {
	return c.textIsLowercase
}

// QueryMatchResult checks if the query is a subsequence of the
// candidate and returns a Result accordingly. This is done by
// simultaneously going through the characters of the query and the
// candidate. If both characters match, we move to the next character in
// the query and the candidate. Otherwise, we only move to the next
// character in the candidate. The matching is a combination of smart
// base matching and smart case matching. If there is no character left
// in the query, the query is a subsequence and we return a result with
// the query, the candidate, the sum of indexes of the candidate where
// characters matched, and a boolean that is true if the query is a
// prefix of the candidate. If there is no character left in the
// candidate, the query is not a subsequence and we return an empty
// result.
func (c *Candidate) QueryMatchResult(query *Word) Result {
	if query.IsEmpty() {
		return newResult(c, query, 0, false)
	}

	if c.Length() < query.Length() {
		return Result{}
	}

	queryCharacters := query.Characters()
	candidateCharacters := c.Characters()

	queryIndex := 0
	indexSum := 0

	for candidateIndex, candidateCharacter := range candidateCharacters {
		if queryCharacters[queryIndex].MatchesSmart(candidateCharacter) {
			indexSum += candidateIndex

			if queryIndex == len(queryCharacters)-1 {
				return newResult(c, query, indexSum, candidateIndex == queryIndex)
			}
			queryIndex++
		}
	}

	return Result{}
}

// internCandidates returns the interned candidates for the given
// strings, in input order. A reasonable limit is enforced on the
// candidate size to prevent issues with huge strings entering the
// repository: texts longer than maxCandidateSize bytes are interned as
// the empty candidate, which never matches.
func internCandidates(repository *Repository[Candidate], texts []string) ([]*Candidate, error) {
	interned := make([]string, len(texts))
	for i, text := range texts {
		if len(text) > maxCandidateSize {
			text = ""
		}
		interned[i] = text
	}
	return repository.GetElements(interned)
}
