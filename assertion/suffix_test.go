package assertion_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/democracydevelopers/raire-go/assertion"
	"github.com/democracydevelopers/raire-go/ballot"
)

func TestAllowedSuffixes_ContradictionYieldsNone(t *testing.T) {
	a := assertion.NEB{WinnerCandidate: 0, LoserCandidate: 1}
	res := assertion.AllowedSuffixes(a, cands(0, 1), 3)
	require.Empty(t, res)
}

func TestAllowedSuffixes_OkYieldsSuffixUnchanged(t *testing.T) {
	a := assertion.NEB{WinnerCandidate: 0, LoserCandidate: 1}
	res := assertion.AllowedSuffixes(a, cands(1, 0), 3)
	require.Equal(t, [][]ballot.Candidate{cands(1, 0)}, res)
}

func TestAllowedSuffixes_NeedsMoreDetailExpandsOverRemainingCandidates(t *testing.T) {
	a := assertion.NEB{WinnerCandidate: 0, LoserCandidate: 1}
	res := assertion.AllowedSuffixes(a, cands(2), 3)
	// prepending the loser contradicts immediately; only the winner-first
	// branch survives.
	for _, suffix := range res {
		require.Equal(t, assertion.Ok, a.EffectOnSuffix(suffix))
	}
	require.NotEmpty(t, res)
}
