package raire

import (
	"container/heap"
	"math"

	"github.com/democracydevelopers/raire-go/assertion"
	"github.com/democracydevelopers/raire-go/audit"
	"github.com/democracydevelopers/raire-go/ballot"
	"github.com/democracydevelopers/raire-go/timeout"
)

func containsCandidate(s []ballot.Candidate, c ballot.Candidate) bool {
	for _, v := range s {
		if v == c {
			return true
		}
	}
	return false
}

// findBestAudit returns the cheapest assertion that rules out every full
// elimination order ending in pi, considering pi[0]'s rivalry with every
// other candidate (NEB) and pi[0]'s standing within the continuing set pi
// itself (NEN). It never returns a nil difficulty: absent any real
// assertion, it falls back to the dummy infinite-difficulty NEB(c, c).
func findBestAudit(pi []ballot.Candidate, votes *ballot.Store, metric audit.Metric, nebCache assertion.NEBDifficultyCache) assertion.AssertionAndDifficulty {
	c := pi[0]
	best := assertion.AssertionAndDifficulty{
		Assertion:  assertion.NEB{WinnerCandidate: c, LoserCandidate: c},
		Difficulty: math.Inf(1),
	}
	if a := assertion.FindBestNEBUsingCache(c, pi[1:], votes.NumCandidates(), nebCache); a != nil && a.Difficulty < best.Difficulty {
		best = *a
	}
	if a := assertion.FindBestNEN(votes, metric, pi, c); a != nil && a.Difficulty < best.Difficulty {
		best = *a
	}
	return best
}

// commitBook accumulates the emitted assertion list and de-duplicates by
// assertion equality, as the search repeatedly tries to commit the same
// winning assertion from different frontier entries.
type commitBook struct {
	assertions []assertion.AssertionAndDifficulty
}

func (b *commitBook) commit(f *frontier, a assertion.AssertionAndDifficulty, ancestor []ballot.Candidate) {
	for _, existing := range b.assertions {
		if assertionsEqual(existing.Assertion, a.Assertion) {
			return
		}
	}
	purge(f, ancestor)
	b.assertions = append(b.assertions, a)
}

// assertionsEqual compares two assertions by value. Assertion is an
// interface and NEN carries a slice field, so the built-in == operator
// cannot be used directly.
func assertionsEqual(a, b assertion.Assertion) bool {
	switch av := a.(type) {
	case assertion.NEB:
		bv, ok := b.(assertion.NEB)
		return ok && av == bv
	case assertion.NEN:
		bv, ok := b.(assertion.NEN)
		if !ok || av.WinnerCandidate != bv.WinnerCandidate || av.LoserCandidate != bv.LoserCandidate {
			return false
		}
		if len(av.Continuing) != len(bv.Continuing) {
			return false
		}
		for i := range av.Continuing {
			if av.Continuing[i] != bv.Continuing[i] {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// commitFullPermutation implements the full-permutation handler: fail if
// the node could not be ruled out at all, otherwise raise bound to the
// node's difficulty and commit it like any other ≤-bound entry.
func commitFullPermutation(book *commitBook, f *frontier, bound *audit.Difficulty, node *sequenceAndEffort) error {
	if math.IsInf(node.difficulty(), 1) {
		return newCouldNotRuleOut(node.pi)
	}
	if node.difficulty() > *bound {
		*bound = node.difficulty()
	}
	book.commit(f, node.bestAssertionForAncestor, node.bestAncestor())
	return nil
}

// search runs the best-first RAIRE assertion search described in the
// package doc, starting bound at floor (0 unless the caller supplies a
// difficulty estimate to skip past). witnessOrder is the IRV winner
// finder's example elimination order (first-eliminated first, winner
// last); diving walks it from the winner back towards the first
// elimination.
func search(
	votes *ballot.Store,
	winner ballot.Candidate,
	metric audit.Metric,
	nebCache assertion.NEBDifficultyCache,
	witnessOrder []ballot.Candidate,
	enableDiving bool,
	floor audit.Difficulty,
	to *timeout.Timeout,
) ([]assertion.AssertionAndDifficulty, audit.Difficulty, error) {
	n := votes.NumCandidates()
	bound := floor
	book := &commitBook{}
	var f frontier

	for c := ballot.Candidate(0); int(c) < n; c++ {
		if c == winner {
			continue
		}
		pi := []ballot.Candidate{c}
		best := findBestAudit(pi, votes, metric, nebCache)
		heap.Push(&f, &sequenceAndEffort{pi: pi, bestAssertionForAncestor: best, bestAncestorLength: 1})
	}

	witnessWalk := make([]ballot.Candidate, len(witnessOrder))
	for i, c := range witnessOrder {
		witnessWalk[len(witnessOrder)-1-i] = c
	}

	for f.Len() > 0 {
		if to.QuickCheckTimeout() {
			return nil, 0, newTimeoutFindingAssertions(bound)
		}
		e := heap.Pop(&f).(*sequenceAndEffort)

		if e.difficulty() <= bound {
			book.commit(&f, e.bestAssertionForAncestor, e.bestAncestor())
			continue
		}

		if enableDiving && e.diveDone == nil {
			if err := dive(book, &f, &bound, e, witnessWalk, n, votes, metric, nebCache); err != nil {
				return nil, 0, err
			}
			continue
		}

		for c := ballot.Candidate(0); int(c) < n; c++ {
			if containsCandidate(e.pi, c) {
				continue
			}
			if e.diveDone != nil && c == *e.diveDone {
				continue
			}
			node := extend(e.pi, c, e.bestAncestorLength, e.bestAssertionForAncestor, votes, metric, nebCache)
			if len(node.pi) == n {
				if err := commitFullPermutation(book, &f, &bound, node); err != nil {
					return nil, 0, err
				}
			} else {
				heap.Push(&f, node)
			}
		}
	}

	return book.assertions, bound, nil
}

// extend builds the frontier entry for [c]++pi, inheriting the ancestor's
// best assertion unless pi's own cheapest assertion beats it.
func extend(pi []ballot.Candidate, c ballot.Candidate, ancestorLength int, ancestorAssertion assertion.AssertionAndDifficulty, votes *ballot.Store, metric audit.Metric, nebCache assertion.NEBDifficultyCache) *sequenceAndEffort {
	newPi := make([]ballot.Candidate, 0, len(pi)+1)
	newPi = append(newPi, c)
	newPi = append(newPi, pi...)
	a := findBestAudit(newPi, votes, metric, nebCache)
	if a.Difficulty < ancestorAssertion.Difficulty {
		return &sequenceAndEffort{pi: newPi, bestAssertionForAncestor: a, bestAncestorLength: len(newPi)}
	}
	return &sequenceAndEffort{pi: newPi, bestAssertionForAncestor: ancestorAssertion, bestAncestorLength: ancestorLength}
}

// dive walks witnessWalk (winner towards first-eliminated), extending e (or
// its latest extension) by each candidate not yet in the running suffix. It
// stops as soon as an extension's difficulty drops to bound or below
// (committing it), or once every witness candidate has been folded in (in
// which case the final extension necessarily has full length and is
// resolved via the full-permutation handler).
func dive(book *commitBook, f *frontier, bound *audit.Difficulty, e *sequenceAndEffort, witnessWalk []ballot.Candidate, n int, votes *ballot.Store, metric audit.Metric, nebCache assertion.NEBDifficultyCache) error {
	source := e
	var last *sequenceAndEffort
	for _, c := range witnessWalk {
		if last != nil {
			source = last
		}
		if containsCandidate(source.pi, c) {
			continue
		}
		node := extend(source.pi, c, source.bestAncestorLength, source.bestAssertionForAncestor, votes, metric, nebCache)

		cc := c
		source.diveDone = &cc
		heap.Push(f, source)

		if node.difficulty() <= *bound {
			book.commit(f, node.bestAssertionForAncestor, node.bestAncestor())
			return nil
		}
		last = node
	}
	if last != nil && len(last.pi) == n {
		return commitFullPermutation(book, f, bound, last)
	}
	return nil
}
