package idmatch

// Current version
const Version = "0.1.0"

const (
	// Candidates longer than this many bytes are interned as the empty
	// candidate. Such large identifiers are almost never desirable.
	maxCandidateSize = 80
)
