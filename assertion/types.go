package assertion

import (
	"github.com/democracydevelopers/raire-go/audit"
	"github.com/democracydevelopers/raire-go/ballot"
)

// Effect classifies what an assertion does to a candidate elimination-order
// suffix: rule it out entirely, let it through regardless of the rest of the
// order, or defer judgement until the suffix is longer.
type Effect int

const (
	// Contradiction means the suffix is ruled out by the assertion, no
	// matter how the rest of the elimination order turns out.
	Contradiction Effect = iota
	// Ok means the suffix is fine as far as the assertion is concerned;
	// extending it further cannot change that.
	Ok
	// NeedsMoreDetail means the suffix does not yet contain enough of the
	// elimination order to decide.
	NeedsMoreDetail
)

func (e Effect) String() string {
	switch e {
	case Contradiction:
		return "Contradiction"
	case Ok:
		return "Ok"
	case NeedsMoreDetail:
		return "NeedsMoreDetail"
	default:
		return "Effect(?)"
	}
}

// Assertion is something that can be checked against a vote store (to get a
// difficulty) and against an elimination-order suffix (to get an Effect).
type Assertion interface {
	Difficulty(votes *ballot.Store, metric audit.Metric) audit.Difficulty
	EffectOnSuffix(suffix []ballot.Candidate) Effect
	Winner() ballot.Candidate
	Loser() ballot.Candidate
}

// AllowedSuffixes expands suffix into every elimination-order suffix (over
// numCandidates candidates) that a is compatible with: itself if a is
// decided already, nothing if contradicted, or every one-candidate extension
// recursively expanded if more detail is needed.
func AllowedSuffixes(a Assertion, suffix []ballot.Candidate, numCandidates int) [][]ballot.Candidate {
	switch a.EffectOnSuffix(suffix) {
	case Contradiction:
		return nil
	case Ok:
		return [][]ballot.Candidate{suffix}
	default:
		var res [][]ballot.Candidate
		for c := ballot.Candidate(0); int(c) < numCandidates; c++ {
			if contains(suffix, c) {
				continue
			}
			extended := make([]ballot.Candidate, 0, len(suffix)+1)
			extended = append(extended, c)
			extended = append(extended, suffix...)
			res = append(res, AllowedSuffixes(a, extended, numCandidates)...)
		}
		return res
	}
}

func contains(s []ballot.Candidate, c ballot.Candidate) bool {
	for _, v := range s {
		if v == c {
			return true
		}
	}
	return false
}

// AssertionAndDifficulty pairs an assertion with the difficulty it was
// constructed at, so the search can compare candidates without recomputing.
type AssertionAndDifficulty struct {
	Assertion  Assertion
	Difficulty audit.Difficulty
}

// checkWinnerEliminatedAfterLoser scans suffix from its winner end (the last
// index) back toward index 0, looking for whichever of winner or loser
// appears first. Finding the winner
// first means the loser, if present at all, was eliminated earlier still, so
// the suffix is fine; finding the loser first means the loser outlasted the
// winner, contradicting a NEB assertion.
func checkWinnerEliminatedAfterLoser(suffix []ballot.Candidate, winner, loser ballot.Candidate) Effect {
	for i := len(suffix) - 1; i >= 0; i-- {
		switch suffix[i] {
		case winner:
			return Ok
		case loser:
			return Contradiction
		}
	}
	return NeedsMoreDetail
}
