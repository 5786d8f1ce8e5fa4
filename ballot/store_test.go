package ballot_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/democracydevelopers/raire-go/ballot"
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

func TestNewStore_RejectsOutOfRangeFirstPreference(t *testing.T) {
	_, err := ballot.NewStore(votes(1, cands(4)), 4)
	require.ErrorIs(t, err, ballot.ErrCandidateOutOfRange)
}

func TestNewStore_RejectsNegativeCandidateCount(t *testing.T) {
	_, err := ballot.NewStore(nil, -1)
	require.ErrorIs(t, err, ballot.ErrNegativeCandidateCount)
}

func TestNewStore_EmptyPrefsIgnoredForTally(t *testing.T) {
	store, err := ballot.NewStore(votes(5, []ballot.Candidate{}), 3)
	require.NoError(t, err)
	require.Equal(t, ballot.BallotPaperCount(0), store.FirstPreferenceTally(0))
	require.Equal(t, ballot.BallotPaperCount(5), store.TotalVotes())
}

func TestStore_FirstPreferenceTally_S1(t *testing.T) {
	// S1 from the paper's guide: 4 candidates.
	store, err := ballot.NewStore(votes(
		2, cands(0, 1),
		1, cands(1, 0),
		1, cands(2, 0),
		1, cands(3, 0),
	), 4)
	require.NoError(t, err)
	require.Equal(t, ballot.BallotPaperCount(2), store.FirstPreferenceTally(0))
	require.Equal(t, ballot.BallotPaperCount(1), store.FirstPreferenceTally(1))
	require.Equal(t, ballot.BallotPaperCount(1), store.FirstPreferenceTally(2))
	require.Equal(t, ballot.BallotPaperCount(1), store.FirstPreferenceTally(3))
	require.Equal(t, ballot.BallotPaperCount(5), store.TotalVotes())
}

func TestStore_RestrictedTallies_S2(t *testing.T) {
	// Example 10 from the guide.
	store, err := ballot.NewStore(votes(
		5000, cands(2, 1, 0),
		1000, cands(1, 2, 3),
		1500, cands(3, 0),
		4000, cands(0, 3),
		2000, cands(3),
	), 4)
	require.NoError(t, err)

	tallies := store.RestrictedTallies(cands(0, 2, 3))
	require.Equal(t, []ballot.BallotPaperCount{4000, 6000, 3500}, tallies)
}

func TestStore_RestrictedTallies_NoContinuingPreference(t *testing.T) {
	store, err := ballot.NewStore(votes(10, cands(0)), 2)
	require.NoError(t, err)

	tallies := store.RestrictedTallies(cands(1))
	require.Equal(t, []ballot.BallotPaperCount{0}, tallies)
}

func TestStore_RestrictedTallies_EmptyContinuing(t *testing.T) {
	store, err := ballot.NewStore(votes(10, cands(0)), 2)
	require.NoError(t, err)
	require.Empty(t, store.RestrictedTallies(nil))
}

func TestStore_NumCandidates(t *testing.T) {
	store, err := ballot.NewStore(nil, 7)
	require.NoError(t, err)
	require.Equal(t, 7, store.NumCandidates())
}
