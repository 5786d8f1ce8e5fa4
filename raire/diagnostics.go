package raire

import (
	"github.com/democracydevelopers/raire-go/assertion"
	"github.com/democracydevelopers/raire-go/ballot"
)

// PossibleEliminationOrdersAllowedByAssertions enumerates every full
// elimination order that r.Assertions does not rule out. It is exponential in
// numCandidates and is meant for small-scale auditing and debugging, not for
// use inside the search itself.
func (r *Result) PossibleEliminationOrdersAllowedByAssertions(numCandidates int) [][]ballot.Candidate {
	orders := assertion.AllEliminationOrders(numCandidates)
	for _, a := range r.Assertions {
		kept := orders[:0]
		for _, order := range orders {
			if a.Assertion.EffectOnSuffix(order) == assertion.Ok {
				kept = append(kept, order)
			}
		}
		orders = kept
	}
	return orders
}

// PossibleEliminationOrderSuffixesAllowedByAssertions is the suffix-only
// analogue of PossibleEliminationOrdersAllowedByAssertions: rather than
// enumerating full orders and filtering, it grows a set of suffixes
// assertion by assertion, so a suffix that r.Assertions already resolve
// without needing every candidate named stays short instead of being
// expanded into every full order consistent with it.
func (r *Result) PossibleEliminationOrderSuffixesAllowedByAssertions(numCandidates int) [][]ballot.Candidate {
	suffixes := [][]ballot.Candidate{{}}
	for _, a := range r.Assertions {
		var next [][]ballot.Candidate
		for _, s := range suffixes {
			next = append(next, assertion.AllowedSuffixes(a.Assertion, s, numCandidates)...)
		}
		suffixes = next
	}
	return suffixes
}
