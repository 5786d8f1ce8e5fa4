// Command describe reads a RAIRE Solution file and prints a human-readable
// description of it, naming candidates from the solution's metadata when
// possible.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/democracydevelopers/raire-go/assertion"
	"github.com/democracydevelopers/raire-go/ballot"
	"github.com/democracydevelopers/raire-go/raire"
)

func main() {
	var verbose bool
	root := &cobra.Command{
		Use:   "describe <solution.json>",
		Short: "Pretty-print a RAIRE Solution",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading %s: %w", args[0], err)
			}
			var solution raire.Solution
			if err := json.Unmarshal(data, &solution); err != nil {
				return fmt.Errorf("parsing %s: %w", args[0], err)
			}
			describe(cmd.OutOrStdout(), solution, verbose)
			return nil
		},
	}
	root.Flags().BoolVarP(&verbose, "verbose", "v", false, "also list the elimination-order suffixes the assertions allow")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func describe(w io.Writer, solution raire.Solution, verbose bool) {
	var meta struct {
		Candidates []string `json:"candidates"`
	}
	_ = json.Unmarshal(solution.Metadata, &meta)
	candidateName := func(c ballot.Candidate) string {
		if int(c) < len(meta.Candidates) {
			return meta.Candidates[c]
		}
		return fmt.Sprintf("#%d", c)
	}

	if solution.Err != nil {
		fmt.Fprintf(w, "Could not find a solution: %v\n", solution.Err)
		return
	}

	result := solution.Result
	fmt.Fprintf(w, "Solution overall difficulty %v\n", result.Difficulty)
	fmt.Fprintf(w, "Winner: %s\n", candidateName(result.Winner))
	for _, a := range result.Assertions {
		switch v := a.Assertion.(type) {
		case assertion.NEB:
			fmt.Fprintf(w, "%s NEB %s", candidateName(v.WinnerCandidate), candidateName(v.LoserCandidate))
		case assertion.NEN:
			names := make([]string, len(v.Continuing))
			for i, c := range v.Continuing {
				names[i] = candidateName(c)
			}
			fmt.Fprintf(w, "%s > %s with %v continuing", candidateName(v.WinnerCandidate), candidateName(v.LoserCandidate), names)
		}
		fmt.Fprintf(w, "  Difficulty %v\n", a.Difficulty)
	}

	if verbose {
		suffixes := result.PossibleEliminationOrderSuffixesAllowedByAssertions(result.NumCandidates)
		fmt.Fprintf(w, "%d elimination-order suffixes remain consistent with these assertions\n", len(suffixes))
	}
}
