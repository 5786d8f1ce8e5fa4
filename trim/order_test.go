package trim_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/democracydevelopers/raire-go/assertion"
	"github.com/democracydevelopers/raire-go/ballot"
	"github.com/democracydevelopers/raire-go/timeout"
	"github.com/democracydevelopers/raire-go/trim"
)

func guideAssertionsWithDifficulty() []assertion.AssertionAndDifficulty {
	return []assertion.AssertionAndDifficulty{
		{Assertion: assertion.NEN{WinnerCandidate: 0, LoserCandidate: 1, Continuing: []ballot.Candidate{0, 1, 2, 3}}, Difficulty: 10},
		{Assertion: assertion.NEN{WinnerCandidate: 0, LoserCandidate: 3, Continuing: []ballot.Candidate{0, 2, 3}}, Difficulty: 5},
		{Assertion: assertion.NEN{WinnerCandidate: 2, LoserCandidate: 0, Continuing: []ballot.Candidate{0, 2}}, Difficulty: 3},
		{Assertion: assertion.NEN{WinnerCandidate: 2, LoserCandidate: 3, Continuing: []ballot.Candidate{0, 2, 3}}, Difficulty: 6},
		{Assertion: assertion.NEB{WinnerCandidate: 2, LoserCandidate: 1}, Difficulty: 2},
		{Assertion: assertion.NEN{WinnerCandidate: 0, LoserCandidate: 3, Continuing: []ballot.Candidate{0, 3}}, Difficulty: 4},
	}
}

func TestOrderAndRemoveUnnecessary_NoneOnlySorts(t *testing.T) {
	assertions := guideAssertionsWithDifficulty()
	out, err := trim.OrderAndRemoveUnnecessary(assertions, 2, 4, trim.None, timeout.Never())
	require.NoError(t, err)
	require.Len(t, out, 6)

	// the single NEB sorts first.
	_, isNEB := out[0].Assertion.(assertion.NEB)
	require.True(t, isNEB)

	// every NEN after it is non-decreasing in continuing-set length.
	lastLen := -1
	for _, a := range out[1:] {
		nen := a.Assertion.(assertion.NEN)
		require.GreaterOrEqual(t, len(nen.Continuing), lastLen)
		lastLen = len(nen.Continuing)
	}
}

func TestOrderAndRemoveUnnecessary_MinimizeTreeKeepsAValidAssertionSet(t *testing.T) {
	assertions := guideAssertionsWithDifficulty()
	out, err := trim.OrderAndRemoveUnnecessary(assertions, 2, 4, trim.MinimizeTree, timeout.Never())
	require.NoError(t, err)
	require.NotEmpty(t, out)
	require.LessOrEqual(t, len(out), 6)

	// rebuilding the pruning trees from exactly the kept assertions must
	// still validate winner 2 and rule out every other candidate. The None
	// call only re-sorts; the MinimizeTree call after it rebuilds the trees
	// and returns an error if trimming kept an insufficient set.
	_, err = trim.OrderAndRemoveUnnecessary(out, 2, 4, trim.None, timeout.Never())
	require.NoError(t, err)
	_, err = trim.OrderAndRemoveUnnecessary(append([]assertion.AssertionAndDifficulty{}, out...), 2, 4, trim.MinimizeTree, timeout.Never())
	require.NoError(t, err)
}

func TestOrderAndRemoveUnnecessary_MinimizeAssertionsAlsoValidates(t *testing.T) {
	out, err := trim.OrderAndRemoveUnnecessary(guideAssertionsWithDifficulty(), 2, 4, trim.MinimizeAssertions, timeout.Never())
	require.NoError(t, err)
	require.NotEmpty(t, out)
	require.LessOrEqual(t, len(out), 6)
}

func TestOrderAndRemoveUnnecessary_RuledOutWinnerIsAnInternalError(t *testing.T) {
	// An assertion set that contradicts the announced winner's own suffix
	// is internally inconsistent; trimming must refuse to proceed rather
	// than silently drop the winner's tree.
	assertions := []assertion.AssertionAndDifficulty{
		{Assertion: assertion.NEB{WinnerCandidate: 1, LoserCandidate: 0}, Difficulty: math.Inf(1)},
	}
	_, err := trim.OrderAndRemoveUnnecessary(assertions, 0, 2, trim.MinimizeTree, timeout.Never())
	require.ErrorIs(t, err, trim.ErrRuledOutWinner)
}
