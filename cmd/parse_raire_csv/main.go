// Command parse_raire_csv converts a cast-vote-record CSV file into a RAIRE
// Problem JSON file, choosing an audit metric from flags the same way the
// original tool did: ballot-comparison (MACRO/OneOnMargin) by default,
// ballot-polling (BRAVO/OneOnMarginSq) with --ballot-polling, and a
// confidence-based metric (MACRO/BRAVO) instead of a margin-based one
// whenever --confidence is given.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/democracydevelopers/raire-go/audit"
	"github.com/democracydevelopers/raire-go/ballot"
	"github.com/democracydevelopers/raire-go/csvcvr"
	"github.com/democracydevelopers/raire-go/raire"
)

func main() {
	var (
		outputPath           string
		ballotPolling        bool
		totalBallots         int
		confidence           float64
		hasConfidence        bool
		errorInflationFactor float64
	)

	root := &cobra.Command{
		Use:   "parse_raire_csv <input.csv> [output.json]",
		Short: "Convert a cast-vote-record CSV file into a RAIRE Problem JSON file",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			inputPath := args[0]
			out := outputPath
			if len(args) == 2 {
				out = args[1]
			}
			if out == "" {
				ext := filepath.Ext(inputPath)
				out = strings.TrimSuffix(inputPath, ext) + ".json"
			}

			f, err := os.Open(inputPath)
			if err != nil {
				return fmt.Errorf("opening %s: %w", inputPath, err)
			}
			defer f.Close()

			descriptor := raire.AuditDescriptor{Metric: audit.OneOverMargin{}}
			problem, err := csvcvr.Parse(f, descriptor)
			if err != nil {
				return fmt.Errorf("parsing %s: %w", inputPath, err)
			}

			total := ballot.BallotPaperCount(totalBallots)
			if totalBallots <= 0 {
				for _, v := range problem.Votes {
					total = total.Add(v.N)
				}
			}
			problem.Audit = AuditDescriptorFor(ballotPolling, hasConfidence, confidence, errorInflationFactor, total)

			data, err := json.MarshalIndent(problem, "", "  ")
			if err != nil {
				return fmt.Errorf("encoding problem: %w", err)
			}
			if err := os.WriteFile(out, data, 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", out, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d ballots, wrote %s\n", len(problem.Votes), out)
			return nil
		},
	}

	root.Flags().StringVarP(&outputPath, "output", "o", "", "output Problem file (default: <input>.json)")
	root.Flags().BoolVar(&ballotPolling, "ballot-polling", false, "use ballot-polling metrics instead of ballot-comparison")
	root.Flags().IntVar(&totalBallots, "total-ballots", 0, "total auditable ballots, if different from the CSV's vote total")
	root.Flags().Float64Var(&confidence, "confidence", 0, "desired confidence level for MACRO/BRAVO (default: use a margin-based metric)")
	root.Flags().Float64Var(&errorInflationFactor, "error-inflation-factor", 1.0, "MACRO error inflation factor")
	root.PreRun = func(cmd *cobra.Command, args []string) {
		hasConfidence = cmd.Flags().Changed("confidence")
	}

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// AuditDescriptorFor mirrors the original CLI's (ballot_polling, confidence)
// match: ballot-comparison+margin by default, ballot-polling+margin-squared,
// ballot-comparison+MACRO, or ballot-polling+BRAVO.
func AuditDescriptorFor(ballotPolling, hasConfidence bool, confidence, errorInflationFactor float64, total ballot.BallotPaperCount) raire.AuditDescriptor {
	switch {
	case !ballotPolling && !hasConfidence:
		return raire.AuditDescriptor{Metric: audit.OneOverMargin{TotalAuditableBallots: total}}
	case ballotPolling && !hasConfidence:
		return raire.AuditDescriptor{Metric: audit.OneOverMarginSquared{TotalAuditableBallots: total}}
	case !ballotPolling && hasConfidence:
		return raire.AuditDescriptor{Metric: audit.MACRO{TotalAuditableBallots: total, Confidence: confidence, ErrorInflationFactor: errorInflationFactor}}
	default:
		return raire.AuditDescriptor{Metric: audit.BRAVO{TotalAuditableBallots: total, Confidence: confidence}}
	}
}
