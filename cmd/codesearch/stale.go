package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var (
	stalePrefix bool
	staleDiff   bool
)

var staleCmd = &cobra.Command{
	Use:   "stale <path>",
	Short: "Check whether a local file matches the server's copy",
	Long: `Check whether a local file matches the server's copy.

With --prefix only the lines present locally are compared, which suits
files being appended to. With --diff a unified diff from the server copy
to the local file is printed.`,
	Args: cobra.ExactArgs(1),
	RunE: withEnv(runStale),
}

func init() {
	staleCmd.Flags().BoolVar(&stalePrefix, "prefix", false, "Only compare the lines present locally")
	staleCmd.Flags().BoolVar(&staleDiff, "diff", false, "Print a unified diff")
	rootCmd.AddCommand(staleCmd)
}

func runStale(ctx context.Context, cmd *cobra.Command, e *env, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading local file: %w", err)
	}
	lines := strings.Split(string(data), "\n")
	spec := fileSpecFor(e.session, args[0])

	stale, err := e.session.IsContentStale(ctx, spec, lines, stalePrefix)
	if err != nil {
		return err
	}
	view := &StaleView{File: spec.Name, Stale: stale}
	if staleDiff && stale {
		if view.Diff, err = e.session.ContentDiff(ctx, spec, lines); err != nil {
			return err
		}
	}
	return emit(cmd, view)
}
