package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/democracydevelopers/raire-go/assertion"
	"github.com/democracydevelopers/raire-go/ballot"
	"github.com/democracydevelopers/raire-go/raire"
)

func TestDescribe_NamesCandidatesFromMetadata(t *testing.T) {
	meta, err := json.Marshal(map[string][]string{"candidates": {"Alice", "Bob"}})
	require.NoError(t, err)

	solution := raire.Solution{
		Metadata: meta,
		Result: &raire.Result{
			Winner: 0,
			Assertions: []assertion.AssertionAndDifficulty{
				{Assertion: assertion.NEB{WinnerCandidate: 0, LoserCandidate: 1}, Difficulty: 2.5},
			},
			Difficulty: 2.5,
		},
	}

	var buf bytes.Buffer
	describe(&buf, solution, false)
	out := buf.String()
	require.True(t, strings.Contains(out, "Alice NEB Bob"))
	require.True(t, strings.Contains(out, "Winner: Alice"))
}

func TestDescribe_FallsBackToIndexWithoutMetadata(t *testing.T) {
	solution := raire.Solution{
		Result: &raire.Result{
			Winner: 0,
			Assertions: []assertion.AssertionAndDifficulty{
				{Assertion: assertion.NEB{WinnerCandidate: 0, LoserCandidate: 1}, Difficulty: 2.5},
			},
		},
	}
	var buf bytes.Buffer
	describe(&buf, solution, false)
	require.True(t, strings.Contains(buf.String(), "#0 NEB #1"))
}

func TestDescribe_ReportsErrSolutions(t *testing.T) {
	solution := raire.Solution{Err: &raire.Error{Err: raire.ErrTiedWinners, Candidates: []ballot.Candidate{0, 1}}}
	var buf bytes.Buffer
	describe(&buf, solution, false)
	require.True(t, strings.Contains(buf.String(), "Could not find a solution"))
}
