package ballot

// Store is the tabulated cast-vote record: an ordered sequence of Vote
// records plus a precomputed first-preference tally. It is immutable after
// construction.
type Store struct {
	votes                []Vote
	firstPreferenceTally []BallotPaperCount
	numCandidates        int
}

// NewStore builds a Store from the given vote records and candidate count.
// It rejects any vote whose first preference names a candidate index outside
// [0, numCandidates) with ErrCandidateOutOfRange.
func NewStore(votes []Vote, numCandidates int) (*Store, error) {
	if numCandidates < 0 {
		return nil, ErrNegativeCandidateCount
	}

	tally := make([]BallotPaperCount, numCandidates)
	for _, v := range votes {
		if len(v.Prefs) == 0 {
			continue
		}
		first := v.Prefs[0]
		if int(first) < 0 || int(first) >= numCandidates {
			return nil, ErrCandidateOutOfRange
		}
		tally[first] += v.N
	}

	return &Store{
		votes:                votes,
		firstPreferenceTally: tally,
		numCandidates:        numCandidates,
	}, nil
}

// NumCandidates returns the number of candidates the Store was constructed
// with.
func (s *Store) NumCandidates() int {
	return s.numCandidates
}

// FirstPreferenceTally returns the number of ballots whose top preference is
// c.
func (s *Store) FirstPreferenceTally(c Candidate) BallotPaperCount {
	return s.firstPreferenceTally[c]
}

// TotalVotes returns the sum of all ballot counts.
func (s *Store) TotalVotes() BallotPaperCount {
	var total BallotPaperCount
	for _, v := range s.votes {
		total += v.N
	}
	return total
}

// RestrictedTallies returns, for each candidate in continuing (same order),
// the number of ballots for which that candidate is the highest-ranked
// continuing preference. A ballot with no continuing preference contributes
// to nothing.
//
// Runs in O(total preference entries scanned + max(continuing)) using a dense reverse-index
// array: candidateToSlot[c] is the position of c within continuing, or a
// sentinel if c is not continuing.
func (s *Store) RestrictedTallies(continuing []Candidate) []BallotPaperCount {
	result := make([]BallotPaperCount, len(continuing))
	if len(continuing) == 0 {
		return result
	}

	const notContinuing = -1
	maxCandidate := 0
	for _, c := range continuing {
		if int(c) > maxCandidate {
			maxCandidate = int(c)
		}
	}

	slotOf := make([]int, maxCandidate+1)
	for i := range slotOf {
		slotOf[i] = notContinuing
	}
	for slot, c := range continuing {
		slotOf[c] = slot
	}

	for _, v := range s.votes {
		for _, pref := range v.Prefs {
			if int(pref) > maxCandidate {
				continue
			}
			if slot := slotOf[pref]; slot != notContinuing {
				result[slot] += v.N
				break
			}
		}
	}

	return result
}
