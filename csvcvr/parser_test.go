package csvcvr_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/democracydevelopers/raire-go/audit"
	"github.com/democracydevelopers/raire-go/ballot"
	"github.com/democracydevelopers/raire-go/csvcvr"
	"github.com/democracydevelopers/raire-go/raire"
)

const sample = `Candidates,Alice,Bob,Carol,Dave
2,Alice,Bob,,
1,Bob,Alice,,
1,Carol,Alice,,
1,Dave,Alice,,
`

func TestParse_BuildsProblemFromCSV(t *testing.T) {
	descriptor := raire.AuditDescriptor{Metric: audit.OneOverMargin{TotalAuditableBallots: 5}}
	problem, err := csvcvr.Parse(strings.NewReader(sample), descriptor)
	require.NoError(t, err)
	require.Equal(t, 4, problem.NumCandidates)
	require.Len(t, problem.Votes, 4)
	require.Equal(t, ballot.BallotPaperCount(2), problem.Votes[0].N)
	require.Equal(t, []ballot.Candidate{0, 1}, problem.Votes[0].Prefs)
	require.Equal(t, []ballot.Candidate{2, 0}, problem.Votes[2].Prefs)
}

func TestParse_RejectsUnknownCandidate(t *testing.T) {
	csv := "Candidates,Alice,Bob\n1,Eve,Alice\n"
	_, err := csvcvr.Parse(strings.NewReader(csv), raire.AuditDescriptor{})
	require.ErrorIs(t, err, csvcvr.ErrUnknownCandidate)
}

func TestParse_RejectsEmptyFile(t *testing.T) {
	_, err := csvcvr.Parse(strings.NewReader(""), raire.AuditDescriptor{})
	require.ErrorIs(t, err, csvcvr.ErrEmptyFile)
}

func TestParse_RejectsZeroCount(t *testing.T) {
	csv := "Candidates,Alice,Bob\n0,Alice,Bob\n"
	_, err := csvcvr.Parse(strings.NewReader(csv), raire.AuditDescriptor{})
	require.ErrorIs(t, err, csvcvr.ErrInvalidCount)
}
