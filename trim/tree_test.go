package trim

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/democracydevelopers/raire-go/assertion"
	"github.com/democracydevelopers/raire-go/ballot"
	"github.com/democracydevelopers/raire-go/timeout"
)

// raireGuideAssertions is the six-assertion example from the RAIRE guide:
// four candidates, winner 2, assertions 0..5 as printed in comments below.
func raireGuideAssertions() []assertion.Assertion {
	return []assertion.Assertion{
		assertion.NEN{WinnerCandidate: 0, LoserCandidate: 1, Continuing: []ballot.Candidate{0, 1, 2, 3}},
		assertion.NEN{WinnerCandidate: 0, LoserCandidate: 3, Continuing: []ballot.Candidate{0, 2, 3}},
		assertion.NEN{WinnerCandidate: 2, LoserCandidate: 0, Continuing: []ballot.Candidate{0, 2}},
		assertion.NEN{WinnerCandidate: 2, LoserCandidate: 3, Continuing: []ballot.Candidate{0, 2, 3}},
		assertion.NEB{WinnerCandidate: 2, LoserCandidate: 1},
		assertion.NEN{WinnerCandidate: 0, LoserCandidate: 3, Continuing: []ballot.Candidate{0, 3}},
	}
}

func TestNewNode_TimesOut(t *testing.T) {
	all := raireGuideAssertions()
	indices := []int{0, 1, 2, 3, 4, 5}
	one := uint64(1)
	to := timeout.New(&one, nil)
	_, err := newNode(nil, 0, indices, all, 4, stopImmediately, to)
	require.ErrorIs(t, err, ErrTimeout)
}

func TestNewNode_MatchesGuideExample(t *testing.T) {
	all := raireGuideAssertions()
	indices := []int{0, 1, 2, 3, 4, 5}

	tree0, err := newNode(nil, 0, indices, all, 4, stopImmediately, timeout.Never())
	require.NoError(t, err)
	tree1, err := newNode(nil, 1, indices, all, 4, stopImmediately, timeout.Never())
	require.NoError(t, err)
	tree2, err := newNode(nil, 2, indices, all, 4, stopImmediately, timeout.Never())
	require.NoError(t, err)
	tree3, err := newNode(nil, 3, indices, all, 4, stopImmediately, timeout.Never())
	require.NoError(t, err)

	require.False(t, tree0.Valid)
	require.Len(t, tree0.Children, 3)
	require.Equal(t, []int{4}, tree0.Children[0].PruningAssertions)
	require.Equal(t, []int{2}, tree0.Children[1].PruningAssertions)
	require.Empty(t, tree0.Children[2].PruningAssertions)
	require.Len(t, tree0.Children[2].Children, 2)
	require.Equal(t, []int{4}, tree0.Children[2].Children[0].PruningAssertions)
	require.Equal(t, []int{3}, tree0.Children[2].Children[1].PruningAssertions)

	require.False(t, tree1.Valid)
	require.Equal(t, []int{4}, tree1.PruningAssertions)

	require.True(t, tree2.Valid) // candidate 2 won.

	require.False(t, tree3.Valid)
	require.Len(t, tree3.Children, 3)
	require.Equal(t, []int{5}, tree3.Children[0].PruningAssertions)
	require.Equal(t, []int{4}, tree3.Children[1].PruningAssertions)
	require.Empty(t, tree3.Children[2].PruningAssertions)
	require.Len(t, tree3.Children[2].Children, 2)
	require.Equal(t, []int{1}, tree3.Children[2].Children[0].PruningAssertions)
	require.Empty(t, tree3.Children[2].Children[1].PruningAssertions)
	require.Equal(t, []int{0}, tree3.Children[2].Children[1].Children[0].PruningAssertions)
}
