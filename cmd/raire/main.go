// Command raire reads a RAIRE Problem from a JSON file, solves it, and
// writes the resulting Solution to another JSON file. A "serve" subcommand
// instead runs the same solving logic behind an HTTP endpoint.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/democracydevelopers/raire-go/config"
	"github.com/democracydevelopers/raire-go/raire"
	"github.com/democracydevelopers/raire-go/server"
)

func main() {
	root := &cobra.Command{
		Use:   "raire",
		Short: "Solve risk-limiting audits for instant-runoff elections",
	}
	root.AddCommand(solveCmd(), serveCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func solveCmd() *cobra.Command {
	var outputPath string
	cmd := &cobra.Command{
		Use:   "solve <input-problem.json> [output-solution.json]",
		Short: "Solve a Problem file and write the resulting Solution",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			inputPath := args[0]
			out := outputPath
			if len(args) == 2 {
				out = args[1]
			}
			if out == "" {
				ext := filepath.Ext(inputPath)
				out = strings.TrimSuffix(inputPath, ext) + "_out.json"
			}

			data, err := os.ReadFile(inputPath)
			if err != nil {
				return fmt.Errorf("reading %s: %w", inputPath, err)
			}
			var problem raire.Problem
			if err := json.Unmarshal(data, &problem); err != nil {
				return fmt.Errorf("parsing %s: %w", inputPath, err)
			}

			solution := raire.Solve(problem)

			outData, err := json.MarshalIndent(solution, "", "  ")
			if err != nil {
				return fmt.Errorf("encoding solution: %w", err)
			}
			if err := os.WriteFile(out, outData, 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", out, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "output Solution file (default: <input>_out.json)")
	return cmd
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the RAIRE HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			level := slog.LevelInfo
			_ = level.UnmarshalText([]byte(cfg.LogLevel))
			logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))

			srv := server.New(server.ServerConfig{
				Port:      cfg.Port,
				StaticDir: cfg.StaticDir,
				Logger:    logger,
			})

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() { errCh <- srv.Start() }()

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
				return srv.Shutdown(context.Background())
			}
		},
	}
}
