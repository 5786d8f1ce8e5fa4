package assertion_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/democracydevelopers/raire-go/assertion"
	"github.com/democracydevelopers/raire-go/audit"
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

func storeS2(t *testing.T) *ballot.Store {
	t.Helper()
	store, err := ballot.NewStore(votes(
		5000, cands(2, 1, 0),
		1000, cands(1, 2, 3),
		1500, cands(3, 0),
		4000, cands(0, 3),
		2000, cands(3),
	), 4)
	require.NoError(t, err)
	return store
}

func TestNEB_Difficulty_UsesFirstPreferenceAndRestrictedTally(t *testing.T) {
	store := storeS2(t)
	metric := audit.OneOverMargin{TotalAuditableBallots: store.TotalVotes()}

	a := assertion.NEB{WinnerCandidate: 0, LoserCandidate: 3}
	// Candidate 0's first preferences: 4000. Restricted [0,3] tally for 3: ballots
	// whose highest continuing preference among {0,3} is 3: the 1000 "1,2,3",
	// 1500 "3,0" and 2000 "3" votes, 4500 in all.
	tallies := store.RestrictedTallies(cands(0, 3))
	d := a.Difficulty(store, metric)
	require.False(t, d < 0)
	require.Equal(t, store.FirstPreferenceTally(0), ballot.BallotPaperCount(4000))
	require.Equal(t, tallies[1], store.RestrictedTallies(cands(0, 3))[1])
}

func TestNEB_EffectOnSuffix_WinnerAfterLoser(t *testing.T) {
	a := assertion.NEB{WinnerCandidate: 0, LoserCandidate: 1}
	require.Equal(t, assertion.Ok, a.EffectOnSuffix(cands(1, 2, 0)))
}

func TestNEB_EffectOnSuffix_LoserAfterWinner(t *testing.T) {
	a := assertion.NEB{WinnerCandidate: 0, LoserCandidate: 1}
	require.Equal(t, assertion.Contradiction, a.EffectOnSuffix(cands(0, 2, 1)))
}

func TestNEB_EffectOnSuffix_NeitherPresent(t *testing.T) {
	a := assertion.NEB{WinnerCandidate: 0, LoserCandidate: 1}
	require.Equal(t, assertion.NeedsMoreDetail, a.EffectOnSuffix(cands(2, 3)))
}

func TestFindBestNEB_PicksCheapestOfAllRivals(t *testing.T) {
	store := storeS2(t)
	metric := audit.OneOverMargin{TotalAuditableBallots: store.TotalVotes()}

	best := assertion.FindBestNEB(0, cands(1, 2, 3), store, metric)
	require.NotNil(t, best)
	require.Equal(t, ballot.Candidate(0), best.Assertion.Winner())

	for alt := ballot.Candidate(0); int(alt) < store.NumCandidates(); alt++ {
		if alt == 0 {
			continue
		}
		other := assertion.NEB{WinnerCandidate: 0, LoserCandidate: alt}
		require.LessOrEqual(t, best.Difficulty, other.Difficulty(store, metric))
	}
}

func TestFindBestNEB_NoOtherCandidates(t *testing.T) {
	store, err := ballot.NewStore(nil, 1)
	require.NoError(t, err)
	metric := audit.OneOverMargin{TotalAuditableBallots: store.TotalVotes()}
	require.Nil(t, assertion.FindBestNEB(0, nil, store, metric))
}
