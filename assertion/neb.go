package assertion

import (
	"math"

	"github.com/democracydevelopers/raire-go/audit"
	"github.com/democracydevelopers/raire-go/ballot"
)

// NEB asserts that Winner cannot be eliminated before Loser: in a winner-only
// contest between the two, Winner's first-preference tally already exceeds
// Loser's count once every other candidate is excluded. Also called
// NotEliminatedBefore, or WinnerOnly in the original RAIRE paper.
type NEB struct {
	WinnerCandidate ballot.Candidate
	LoserCandidate  ballot.Candidate
}

func (a NEB) Winner() ballot.Candidate { return a.WinnerCandidate }
func (a NEB) Loser() ballot.Candidate  { return a.LoserCandidate }

// Difficulty implements Assertion. The total passed to the metric is the two
// candidates' combined tally, not the full vote total; see DESIGN.md. The
// four metrics in package audit ignore that argument and divide by their own
// TotalAuditableBallots instead.
func (a NEB) Difficulty(votes *ballot.Store, metric audit.Metric) audit.Difficulty {
	winnerTally := votes.FirstPreferenceTally(a.WinnerCandidate)
	loserTally := votes.RestrictedTallies([]ballot.Candidate{a.WinnerCandidate, a.LoserCandidate})[1]
	return metric.Difficulty(winnerTally, loserTally, winnerTally.Add(loserTally))
}

// EffectOnSuffix implements Assertion: the winner cannot be eliminated after
// the loser.
func (a NEB) EffectOnSuffix(suffix []ballot.Candidate) Effect {
	return checkWinnerEliminatedAfterLoser(suffix, a.WinnerCandidate, a.LoserCandidate)
}

// NEBDifficultyCache serves precomputed NEB difficulties keyed by winner and
// loser candidate index, with an infinite diagonal. nebcache.Table satisfies
// this.
type NEBDifficultyCache interface {
	Difficulty(winner, loser ballot.Candidate) audit.Difficulty
}

// FindBestNEB considers every candidate alt as a possible counterpart to c
// and returns the cheapest NEB assertion relating them: alt as loser if alt
// appears later in laterInPi (c beats a later rival), or alt as winner
// otherwise (some candidate outside pi beats c). Returns nil if there is no
// other candidate to compare against.
func FindBestNEB(c ballot.Candidate, laterInPi []ballot.Candidate, votes *ballot.Store, metric audit.Metric) *AssertionAndDifficulty {
	best := math.Inf(1)
	var bestAssertion *NEB
	for alt := ballot.Candidate(0); int(alt) < votes.NumCandidates(); alt++ {
		if alt == c {
			continue
		}
		var candidate NEB
		if contains(laterInPi, alt) {
			candidate = NEB{WinnerCandidate: c, LoserCandidate: alt}
		} else {
			candidate = NEB{WinnerCandidate: alt, LoserCandidate: c}
		}
		d := candidate.Difficulty(votes, metric)
		if bestAssertion == nil || d < best {
			best = d
			cc := candidate
			bestAssertion = &cc
		}
	}
	if bestAssertion == nil {
		return nil
	}
	return &AssertionAndDifficulty{Assertion: *bestAssertion, Difficulty: best}
}

// FindBestNEBUsingCache is FindBestNEB but reads precomputed difficulties
// from cache instead of recomputing them against votes.
func FindBestNEBUsingCache(c ballot.Candidate, laterInPi []ballot.Candidate, numCandidates int, cache NEBDifficultyCache) *AssertionAndDifficulty {
	best := math.Inf(1)
	var bestAssertion *NEB
	for alt := ballot.Candidate(0); int(alt) < numCandidates; alt++ {
		if alt == c {
			continue
		}
		var candidate NEB
		if contains(laterInPi, alt) {
			candidate = NEB{WinnerCandidate: c, LoserCandidate: alt}
		} else {
			candidate = NEB{WinnerCandidate: alt, LoserCandidate: c}
		}
		d := cache.Difficulty(candidate.WinnerCandidate, candidate.LoserCandidate)
		if bestAssertion == nil || d < best {
			best = d
			cc := candidate
			bestAssertion = &cc
		}
	}
	if bestAssertion == nil {
		return nil
	}
	return &AssertionAndDifficulty{Assertion: *bestAssertion, Difficulty: best}
}
