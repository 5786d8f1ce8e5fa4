package csvcvr

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/democracydevelopers/raire-go/ballot"
	"github.com/democracydevelopers/raire-go/raire"
)

// Parse reads a cast-vote-record CSV from r and converts it into a Problem
// with the given audit descriptor. The Problem's NumCandidates and Votes are
// populated from the file; every other Problem field is left at its
// zero value for the caller to fill in (Winner, TrimAlgorithm, time limit).
func Parse(r io.Reader, audit raire.AuditDescriptor) (raire.Problem, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return raire.Problem{}, ErrEmptyFile
	}
	if err != nil {
		return raire.Problem{}, fmt.Errorf("csvcvr: reading header: %w", err)
	}
	if len(header) < 2 {
		return raire.Problem{}, ErrNoCandidates
	}
	names := header[1:]
	index := make(map[string]ballot.Candidate, len(names))
	for i, name := range names {
		index[name] = ballot.Candidate(i)
	}

	var votes []ballot.Vote
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return raire.Problem{}, fmt.Errorf("csvcvr: reading ballot row: %w", err)
		}
		if len(row) == 0 {
			continue
		}
		n, err := strconv.ParseUint(row[0], 10, 64)
		if err != nil || n == 0 {
			return raire.Problem{}, fmt.Errorf("%w: %q", ErrInvalidCount, row[0])
		}
		var prefs []ballot.Candidate
		for _, cell := range row[1:] {
			if cell == "" {
				continue
			}
			c, ok := index[cell]
			if !ok {
				return raire.Problem{}, fmt.Errorf("%w: %q", ErrUnknownCandidate, cell)
			}
			prefs = append(prefs, c)
		}
		votes = append(votes, ballot.Vote{N: ballot.BallotPaperCount(n), Prefs: prefs})
	}

	return raire.Problem{
		NumCandidates: len(names),
		Votes:         votes,
		Audit:         audit,
	}, nil
}
