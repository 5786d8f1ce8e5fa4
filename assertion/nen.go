package assertion

import (
	"math"
	"sort"

	"github.com/democracydevelopers/raire-go/audit"
	"github.com/democracydevelopers/raire-go/ballot"
)

// NEN asserts that Winner beats Loser once every candidate outside
// Continuing has been excluded: Loser cannot be the next candidate
// eliminated, because Winner's restricted tally among Continuing already
// exceeds Loser's. Continuing must be sorted ascending, the canonical form
// so two NEN assertions over the same round compare equal and a continuing
// check can binary-search. Also called NotEliminatedNext, or IRV in the
// original RAIRE paper.
type NEN struct {
	WinnerCandidate ballot.Candidate
	LoserCandidate  ballot.Candidate
	Continuing      []ballot.Candidate
}

func (a NEN) Winner() ballot.Candidate { return a.WinnerCandidate }
func (a NEN) Loser() ballot.Candidate  { return a.LoserCandidate }

// Difficulty implements Assertion.
func (a NEN) Difficulty(votes *ballot.Store, metric audit.Metric) audit.Difficulty {
	tallies := votes.RestrictedTallies(a.Continuing)
	var winnerTally, loserTally ballot.BallotPaperCount
	var total ballot.BallotPaperCount
	for i, c := range a.Continuing {
		total = total.Add(tallies[i])
		switch c {
		case a.LoserCandidate:
			loserTally = tallies[i]
		case a.WinnerCandidate:
			winnerTally = tallies[i]
		}
	}
	return metric.Difficulty(winnerTally, loserTally, total)
}

func (a NEN) isContinuing(c ballot.Candidate) bool {
	i := sort.Search(len(a.Continuing), func(i int) bool { return a.Continuing[i] >= c })
	return i < len(a.Continuing) && a.Continuing[i] == c
}

// EffectOnSuffix implements Assertion. suffix is in elimination order, winner
// last, as described in the package doc; only its last len(Continuing) entries (or
// all of it, if shorter) are relevant, since those are the candidates this
// assertion's round was fought among.
func (a NEN) EffectOnSuffix(suffix []ballot.Candidate) Effect {
	relevant := suffix
	if len(suffix) > len(a.Continuing) {
		relevant = suffix[len(suffix)-len(a.Continuing):]
	}
	for _, c := range relevant {
		if !a.isContinuing(c) {
			return Ok
		}
	}
	if len(relevant) == len(a.Continuing) {
		if relevant[0] == a.WinnerCandidate {
			return Contradiction
		}
		return Ok
	}
	if contains(relevant, a.WinnerCandidate) {
		return Ok
	}
	return NeedsMoreDetail
}

// FindBestNEN finds, among the given continuing candidates, the cheapest NEN
// assertion naming winner as the candidate that cannot be eliminated next:
// it pairs winner against whichever other continuing candidate has the
// lowest restricted tally. Returns nil if winner is the only continuing
// candidate.
func FindBestNEN(votes *ballot.Store, metric audit.Metric, continuing []ballot.Candidate, winner ballot.Candidate) *AssertionAndDifficulty {
	tallies := votes.RestrictedTallies(continuing)
	var winnerTally ballot.BallotPaperCount
	loserTally := ballot.BallotPaperCount(math.MaxUint64)
	var total ballot.BallotPaperCount
	var bestLoser *ballot.Candidate
	for i, c := range continuing {
		total = total.Add(tallies[i])
		if c == winner {
			winnerTally = tallies[i]
		} else if tallies[i] <= loserTally {
			l := c
			bestLoser = &l
			loserTally = tallies[i]
		}
	}
	if bestLoser == nil {
		return nil
	}
	difficulty := metric.Difficulty(winnerTally, loserTally, total)
	sorted := append([]ballot.Candidate(nil), continuing...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	return &AssertionAndDifficulty{
		Assertion:  NEN{WinnerCandidate: winner, LoserCandidate: *bestLoser, Continuing: sorted},
		Difficulty: difficulty,
	}
}
