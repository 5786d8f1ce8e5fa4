package trim

import (
	"sort"

	"github.com/democracydevelopers/raire-go/assertion"
	"github.com/democracydevelopers/raire-go/ballot"
	"github.com/democracydevelopers/raire-go/timeout"
)

// OrderAndRemoveUnnecessary sorts assertions into canonical order - NEBs
// before NENs, NENs by continuing length then winner, loser and continuing
// lexicographically, NEBs by winner then loser - then, unless algo is None,
// builds one pruning tree per candidate and discards every assertion no
// tree's forced selection needs.
//
// If a timeout occurs partway through, the returned slice is nil and the
// caller's input is left sorted but otherwise unchanged.
func OrderAndRemoveUnnecessary(
	assertions []assertion.AssertionAndDifficulty,
	winner ballot.Candidate,
	numCandidates int,
	algo Algorithm,
	to *timeout.Timeout,
) ([]assertion.AssertionAndDifficulty, error) {
	sort.SliceStable(assertions, func(i, j int) bool {
		return less(assertions[i].Assertion, assertions[j].Assertion)
	})

	var continueAfterPrune howFarToContinue
	switch algo {
	case None:
		return assertions, nil
	case MinimizeTree:
		continueAfterPrune = stopImmediately
	case MinimizeAssertions:
		continueAfterPrune = forever
	}

	all := make([]assertion.Assertion, len(assertions))
	indices := make([]int, len(assertions))
	for i, a := range assertions {
		all[i] = a.Assertion
		indices[i] = i
	}

	used := newAssertionUsage(len(assertions))
	trees := make([]*Node, 0, numCandidates)
	for c := ballot.Candidate(0); int(c) < numCandidates; c++ {
		tree, err := newNode(nil, c, indices, all, numCandidates, continueAfterPrune, to)
		if err != nil {
			return nil, err
		}
		if tree.Valid != (c == winner) {
			if c == winner {
				return nil, ErrRuledOutWinner
			}
			return nil, ErrDidntRuleOutLoser
		}
		if c != winner {
			used.addTreeForced(tree)
			trees = append(trees, tree)
		}
	}
	for _, tree := range trees {
		if err := used.addTreeSecondPass(tree, to); err != nil {
			return nil, err
		}
	}

	kept := make([]assertion.AssertionAndDifficulty, 0, len(assertions))
	for i, a := range assertions {
		if used.uses(i) {
			kept = append(kept, a)
		}
	}
	return kept, nil
}

// less implements the canonical assertion ordering: NEB before NEN; within
// NEN, shorter continuing sets first, then winner, then loser, then
// continuing compared element by element; within NEB, winner then loser.
func less(a, b assertion.Assertion) bool {
	aNEN, aIsNEN := a.(assertion.NEN)
	bNEN, bIsNEN := b.(assertion.NEN)
	switch {
	case aIsNEN && !bIsNEN:
		return false
	case !aIsNEN && bIsNEN:
		return true
	case aIsNEN && bIsNEN:
		if len(aNEN.Continuing) != len(bNEN.Continuing) {
			return len(aNEN.Continuing) < len(bNEN.Continuing)
		}
		if aNEN.WinnerCandidate != bNEN.WinnerCandidate {
			return aNEN.WinnerCandidate < bNEN.WinnerCandidate
		}
		if aNEN.LoserCandidate != bNEN.LoserCandidate {
			return aNEN.LoserCandidate < bNEN.LoserCandidate
		}
		for i := range aNEN.Continuing {
			if aNEN.Continuing[i] != bNEN.Continuing[i] {
				return aNEN.Continuing[i] < bNEN.Continuing[i]
			}
		}
		return false
	default:
		aNEB := a.(assertion.NEB)
		bNEB := b.(assertion.NEB)
		if aNEB.WinnerCandidate != bNEB.WinnerCandidate {
			return aNEB.WinnerCandidate < bNEB.WinnerCandidate
		}
		return aNEB.LoserCandidate < bNEB.LoserCandidate
	}
}

// assertionUsage is the simplistic assertion selector: take the lone pruning
// assertion of every childless node outright, then for any node not already
// covered by a used assertion, take its first pruning assertion. Fast and
// simple rather than globally optimal; in practice it matches the optimal
// selection whenever trees are built with the "forever" continuation policy.
type assertionUsage struct {
	used []bool
}

func newAssertionUsage(n int) *assertionUsage {
	return &assertionUsage{used: make([]bool, n)}
}

func (u *assertionUsage) uses(i int) bool { return u.used[i] }

func (u *assertionUsage) addTreeForced(node *Node) {
	if len(node.PruningAssertions) > 0 {
		if len(node.Children) == 0 && len(node.PruningAssertions) == 1 {
			u.used[node.PruningAssertions[0]] = true
		}
		return
	}
	for _, child := range node.Children {
		u.addTreeForced(child)
	}
}

// alreadyEliminated reports whether node is already ruled out by assertions
// marked used so far, directly or because every one of its children is.
func (u *assertionUsage) alreadyEliminated(node *Node) bool {
	for _, idx := range node.PruningAssertions {
		if u.used[idx] {
			return true
		}
	}
	if len(node.Children) == 0 {
		return false
	}
	for _, child := range node.Children {
		if !u.alreadyEliminated(child) {
			return false
		}
	}
	return true
}

func (u *assertionUsage) addTreeSecondPass(node *Node, to *timeout.Timeout) error {
	if to.QuickCheckTimeout() {
		return ErrTimeout
	}
	if len(node.PruningAssertions) > 0 {
		if !u.alreadyEliminated(node) {
			u.used[node.PruningAssertions[0]] = true
		}
		return nil
	}
	for _, child := range node.Children {
		if err := u.addTreeSecondPass(child, to); err != nil {
			return err
		}
	}
	return nil
}
