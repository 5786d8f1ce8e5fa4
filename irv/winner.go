package irv

import (
	"encoding/binary"
	"sort"

	"github.com/democracydevelopers/raire-go/ballot"
	"github.com/democracydevelopers/raire-go/timeout"
)

// Result is the outcome of running an IRV election to determine its
// winner(s).
type Result struct {
	// PossibleWinners lists every candidate who could win under some
	// resolution of the ties encountered along the way. A single-element
	// result means the election has an unambiguous winner.
	PossibleWinners []ballot.Candidate
	// EliminationOrder is one example elimination order (first eliminated
	// first) consistent with the search's first depth-first path. It may
	// not correspond to any single PossibleWinners entry if ties were
	// resolved along the way via bulk elimination.
	EliminationOrder []ballot.Candidate
}

// RunElection determines every possible winner of votes, starting from the
// full candidate set. The only error it can return is
// ErrTimeoutCheckingWinner.
func RunElection(votes *ballot.Store, to *timeout.Timeout) (*Result, error) {
	all := make([]ballot.Candidate, votes.NumCandidates())
	for i := range all {
		all[i] = ballot.Candidate(i)
	}
	w := &work{winnerGivenContinuing: make(map[string][]ballot.Candidate)}
	possibleWinners, err := w.findAllPossibleWinners(all, votes, to)
	if err != nil {
		return nil, err
	}
	return &Result{PossibleWinners: possibleWinners, EliminationOrder: w.eliminationOrder}, nil
}

// work holds the memoization table and the elimination-order witness
// accumulated across one RunElection call.
type work struct {
	// winnerGivenContinuing is keyed by the canonical (ascending) encoding
	// of a continuing-candidate set.
	winnerGivenContinuing map[string][]ballot.Candidate
	eliminationOrder      []ballot.Candidate
}

func continuingKey(continuing []ballot.Candidate) string {
	buf := make([]byte, len(continuing)*4)
	for i, c := range continuing {
		binary.LittleEndian.PutUint32(buf[i*4:], uint32(c))
	}
	return string(buf)
}

// findAllPossibleWinners returns every candidate who could win IRV among
// continuing, recording one example elimination order for the whole
// contest along the way.
func (w *work) findAllPossibleWinners(continuing []ballot.Candidate, votes *ballot.Store, to *timeout.Timeout) ([]ballot.Candidate, error) {
	if to.QuickCheckTimeout() {
		return nil, ErrTimeoutCheckingWinner
	}

	if len(continuing) == 1 {
		if len(w.eliminationOrder)+len(continuing) == votes.NumCandidates() {
			w.eliminationOrder = append(w.eliminationOrder, continuing[0])
		}
		return continuing, nil
	}

	key := continuingKey(continuing)
	if cached, ok := w.winnerGivenContinuing[key]; ok {
		return cached, nil
	}

	tallies := votes.RestrictedTallies(continuing)
	minTally := tallies[0]
	for _, t := range tallies[1:] {
		if t < minTally {
			minTally = t
		}
	}

	winners := map[ballot.Candidate]struct{}{}
	triedOneOption := false
	triedBulkElimination := false
	for i := range continuing {
		if tallies[i] != minTally {
			continue
		}
		if triedOneOption && !triedBulkElimination {
			if findBulkElimination(continuing, tallies) != nil {
				break
			}
			triedBulkElimination = true
		}
		if len(w.eliminationOrder)+len(continuing) == votes.NumCandidates() {
			w.eliminationOrder = append(w.eliminationOrder, continuing[i])
		}
		newContinuing := make([]ballot.Candidate, 0, len(continuing)-1)
		newContinuing = append(newContinuing, continuing[:i]...)
		newContinuing = append(newContinuing, continuing[i+1:]...)
		res, err := w.findAllPossibleWinners(newContinuing, votes, to)
		if err != nil {
			return nil, err
		}
		for _, c := range res {
			winners[c] = struct{}{}
		}
		triedOneOption = true
	}

	result := make([]ballot.Candidate, 0, len(winners))
	for c := range winners {
		result = append(result, c)
	}
	sort.Slice(result, func(i, j int) bool { return result[i] < result[j] })
	w.winnerGivenContinuing[key] = result
	return result, nil
}

// findBulkElimination looks for a prefix of at least two lowest-tallying
// continuing candidates, sorted by tally, whose combined tally can never
// catch up to the next candidate's tally — meaning all of that prefix is
// excluded before anyone else, no matter how their preferences flow. It
// returns that prefix sorted smallest-tally-first, or nil if no such prefix
// exists.
func findBulkElimination(continuing []ballot.Candidate, tallies []ballot.BallotPaperCount) []ballot.Candidate {
	type pair struct {
		c ballot.Candidate
		t ballot.BallotPaperCount
	}
	merged := make([]pair, len(continuing))
	for i := range continuing {
		merged[i] = pair{continuing[i], tallies[i]}
	}
	sort.Slice(merged, func(i, j int) bool { return merged[i].t < merged[j].t })

	var cumulative ballot.BallotPaperCount
	for i, m := range merged {
		if i > 1 && m.t > cumulative {
			bulk := make([]ballot.Candidate, i)
			for j := 0; j < i; j++ {
				bulk[j] = merged[j].c
			}
			return bulk
		}
		cumulative = cumulative.Add(m.t)
	}
	return nil
}
