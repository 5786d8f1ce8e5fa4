package nebcache

import (
	"math"

	"github.com/democracydevelopers/raire-go/audit"
	"github.com/democracydevelopers/raire-go/ballot"
)

// Table is a precomputed N×N table of NEB difficulties, one entry per
// (winner, loser) pair of distinct candidates. Table implements
// assertion.NEBDifficultyCache.
type Table struct {
	difficulty [][]audit.Difficulty
}

// New computes every NEB difficulty for votes under metric. winner==loser
// entries are math.Inf(1) and never consulted in practice.
func New(votes *ballot.Store, metric audit.Metric) *Table {
	n := votes.NumCandidates()
	table := make([][]audit.Difficulty, n)
	for winner := 0; winner < n; winner++ {
		row := make([]audit.Difficulty, n)
		winnerTally := votes.FirstPreferenceTally(ballot.Candidate(winner))
		for loser := 0; loser < n; loser++ {
			if winner == loser {
				row[loser] = math.Inf(1)
				continue
			}
			loserTally := votes.RestrictedTallies([]ballot.Candidate{ballot.Candidate(winner), ballot.Candidate(loser)})[1]
			row[loser] = metric.Difficulty(winnerTally, loserTally, winnerTally.Add(loserTally))
		}
		table[winner] = row
	}
	return &Table{difficulty: table}
}

// Difficulty returns the precomputed NEB difficulty for winner beating
// loser.
func (t *Table) Difficulty(winner, loser ballot.Candidate) audit.Difficulty {
	return t.difficulty[winner][loser]
}
