package irv_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/democracydevelopers/raire-go/ballot"
	"github.com/democracydevelopers/raire-go/irv"
	"github.com/democracydevelopers/raire-go/timeout"
)

func votes(pairs ...any) []ballot.Vote {
	var out []ballot.Vote
	for i := 0; i < len(pairs); i += 2 {
		n := pairs[i].(int)
		prefs := pairs[i+1].([]ballot.Candidate)
		out = append(out, ballot.Vote{N: ballot.BallotPaperCount(n), Prefs: prefs})
	}
	return out
}

func cands(cs ...int) []ballot.Candidate {
	out := make([]ballot.Candidate, len(cs))
	for i, c := range cs {
		out[i] = ballot.Candidate(c)
	}
	return out
}

func TestRunElection_UnambiguousWinner(t *testing.T) {
	// S1 from the guide: candidate 0 wins after candidate 3, then 2, then 1
	// are eliminated.
	store, err := ballot.NewStore(votes(
		2, cands(0, 1),
		1, cands(1, 0),
		1, cands(2, 0),
		1, cands(3, 0),
	), 4)
	require.NoError(t, err)

	result, err := irv.RunElection(store, timeout.Never())
	require.NoError(t, err)
	require.Equal(t, []ballot.Candidate{0}, result.PossibleWinners)
	require.Len(t, result.EliminationOrder, 4)
	require.Equal(t, ballot.Candidate(0), result.EliminationOrder[3])
}

func TestRunElection_TieProducesMultiplePossibleWinners(t *testing.T) {
	// Three candidates, each with exactly one first-preference vote naming
	// only themselves: every elimination order is plausible, so all three
	// candidates can win.
	store, err := ballot.NewStore(votes(
		1, cands(0),
		1, cands(1),
		1, cands(2),
	), 3)
	require.NoError(t, err)

	result, err := irv.RunElection(store, timeout.Never())
	require.NoError(t, err)
	require.ElementsMatch(t, []ballot.Candidate{0, 1, 2}, result.PossibleWinners)
}

func TestRunElection_SingleCandidate(t *testing.T) {
	store, err := ballot.NewStore(votes(3, cands(0)), 1)
	require.NoError(t, err)

	result, err := irv.RunElection(store, timeout.Never())
	require.NoError(t, err)
	require.Equal(t, []ballot.Candidate{0}, result.PossibleWinners)
	require.Equal(t, []ballot.Candidate{0}, result.EliminationOrder)
}

func TestRunElection_RespectsTimeout(t *testing.T) {
	store, err := ballot.NewStore(votes(
		1, cands(0),
		1, cands(1),
		1, cands(2),
		1, cands(3),
		1, cands(4),
	), 5)
	require.NoError(t, err)

	zero := uint64(0)
	_, err = irv.RunElection(store, timeout.New(&zero, nil))
	require.ErrorIs(t, err, irv.ErrTimeoutCheckingWinner)
}

func TestRunElection_BulkEliminationMatchesOneAtATime(t *testing.T) {
	// Two serious candidates (0 and 1) and three long-tail candidates (2,3,4)
	// each with a single vote. Bulk elimination should excuse candidates
	// 2,3,4 from exhaustive tie exploration, but the possible-winner set
	// must still be identical to what exhaustive per-candidate elimination
	// would find.
	store, err := ballot.NewStore(votes(
		100, cands(0),
		90, cands(1),
		1, cands(2),
		1, cands(3),
		1, cands(4),
	), 5)
	require.NoError(t, err)

	result, err := irv.RunElection(store, timeout.Never())
	require.NoError(t, err)
	require.Equal(t, []ballot.Candidate{0}, result.PossibleWinners)
}
