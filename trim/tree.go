package trim

import (
	"github.com/democracydevelopers/raire-go/assertion"
	"github.com/democracydevelopers/raire-go/ballot"
	"github.com/democracydevelopers/raire-go/timeout"
)

// Node is one step of a reverse-elimination-order suffix tree: the candidate
// eliminated at this step, the indices (into the full sorted assertion list)
// of every assertion that contradicts any suffix ending here, the children
// explored when no single assertion settles the node, and whether this node
// or some descendant survives every assertion.
type Node struct {
	CandidateEliminated ballot.Candidate
	PruningAssertions   []int
	Children            []*Node
	Valid               bool
}

// newNode builds the subtree rooted at candidate. parentSuffix is the
// elimination-order suffix above it, most-recently-eliminated first;
// relevantAssertions are the assertions not yet decided by an ancestor.
func newNode(
	parentSuffix []ballot.Candidate,
	candidate ballot.Candidate,
	relevantAssertions []int,
	allAssertions []assertion.Assertion,
	numCandidates int,
	continueAfterPrune howFarToContinue,
	to *timeout.Timeout,
) (*Node, error) {
	if to.QuickCheckTimeout() {
		return nil, ErrTimeout
	}

	suffix := make([]ballot.Candidate, 0, len(parentSuffix)+1)
	suffix = append(suffix, candidate)
	suffix = append(suffix, parentSuffix...)

	var pruning, stillRelevant []int
	for _, idx := range relevantAssertions {
		switch allAssertions[idx].EffectOnSuffix(suffix) {
		case assertion.Contradiction:
			pruning = append(pruning, idx)
		case assertion.NeedsMoreDetail:
			stillRelevant = append(stillRelevant, idx)
		}
	}

	var children []*Node
	valid := len(pruning) == 0 && len(stillRelevant) == 0

	if (len(pruning) == 0 || continueAfterPrune.shouldContinueIfPruned()) && len(stillRelevant) > 0 {
		nextContinue := continueAfterPrune
		if len(pruning) > 0 {
			nextContinue = continueAfterPrune.nextLevelIfPruned()
		}
		for c := ballot.Candidate(0); int(c) < numCandidates; c++ {
			if containsCandidate(suffix, c) {
				continue
			}
			child, err := newNode(suffix, c, stillRelevant, allAssertions, numCandidates, nextContinue, to)
			if err != nil {
				return nil, err
			}
			if child.Valid {
				if len(pruning) == 0 {
					valid = true
				} else {
					// we were continuing past a pruned branch for nothing.
					children = nil
					break
				}
			}
			children = append(children, child)
		}
	}

	return &Node{
		CandidateEliminated: candidate,
		PruningAssertions:   pruning,
		Children:            children,
		Valid:               valid,
	}, nil
}

func containsCandidate(s []ballot.Candidate, c ballot.Candidate) bool {
	for _, v := range s {
		if v == c {
			return true
		}
	}
	return false
}
