package ballot

import "errors"

// Sentinel errors returned by NewStore.
var (
	// ErrNegativeCandidateCount indicates NewStore was called with a negative
	// candidate count.
	ErrNegativeCandidateCount = errors.New("ballot: number of candidates must be non-negative")

	// ErrCandidateOutOfRange indicates a vote's preference list names a
	// candidate index outside [0, NumCandidates).
	ErrCandidateOutOfRange = errors.New("ballot: vote mentions a candidate index out of range")
)
