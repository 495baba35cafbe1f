package main

import (
	"fmt"
	"log/slog"
	"os"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/amineHorseman/butterfly-optimization-algorithms/internal/store"
)

var (
	runsDataDir   string
	keepLast      int
	olderThanDays int
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Manage persisted optimization runs",
	Long: `Manage persisted runs including listing and cleaning old results.
Each run directory holds a result.json and a trace.jsonl convergence log.`,
}

var listRunsCmd = &cobra.Command{
	Use:   "list",
	Short: "List all persisted runs",
	RunE:  runListRuns,
}

var cleanRunsCmd = &cobra.Command{
	Use:   "clean",
	Short: "Clean old runs",
	Long: `Delete old runs based on retention policy: keep only the last N
runs, or delete runs older than N days.`,
	RunE: runCleanRuns,
}

func init() {
	rootCmd.AddCommand(runsCmd)
	runsCmd.AddCommand(listRunsCmd)
	runsCmd.AddCommand(cleanRunsCmd)

	runsCmd.PersistentFlags().StringVar(&runsDataDir, "data-dir", "./data", "Base directory for run persistence")
	cleanRunsCmd.Flags().IntVar(&keepLast, "keep-last", 0, "Keep only the last N runs (0 = keep all)")
	cleanRunsCmd.Flags().IntVar(&olderThanDays, "older-than", 0, "Delete runs older than N days (0 = no age limit)")
}

func runListRuns(cmd *cobra.Command, args []string) error {
	st, err := store.NewFSStore(runsDataDir)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}

	runs, err := st.ListRuns()
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}
	if len(runs) == 0 {
		fmt.Println("No runs found.")
		return nil
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].Timestamp.After(runs[j].Timestamp)
	})

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "RUN ID\tMETHOD\tBEST\tGENS\tFEVALS\tEARLY STOP\tTIMESTAMP")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%g\t%d\t%d\t%t\t%s\n",
			run.RunID,
			run.Method,
			run.BestFitness,
			run.Generations,
			run.Fevals,
			run.EarlyStopped,
			run.Timestamp.Format(time.RFC3339),
		)
	}
	return w.Flush()
}

func runCleanRuns(cmd *cobra.Command, args []string) error {
	if keepLast == 0 && olderThanDays == 0 {
		return fmt.Errorf("specify --keep-last and/or --older-than")
	}

	st, err := store.NewFSStore(runsDataDir)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}

	runs, err := st.ListRuns()
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}

	// Newest first, so retention keeps the most recent runs.
	sort.Slice(runs, func(i, j int) bool {
		return runs[i].Timestamp.After(runs[j].Timestamp)
	})

	cutoff := time.Now().AddDate(0, 0, -olderThanDays)
	deleted := 0
	for i, run := range runs {
		tooMany := keepLast > 0 && i >= keepLast
		tooOld := olderThanDays > 0 && run.Timestamp.Before(cutoff)
		if !tooMany && !tooOld {
			continue
		}
		if err := st.DeleteRun(run.RunID); err != nil {
			slog.Warn("failed to delete run", "runID", run.RunID, "error", err)
			continue
		}
		deleted++
	}

	fmt.Printf("Deleted %d of %d runs.\n", deleted, len(runs))
	return nil
}
