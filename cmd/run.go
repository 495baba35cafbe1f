package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/amineHorseman/butterfly-optimization-algorithms/internal/config"
	"github.com/amineHorseman/butterfly-optimization-algorithms/internal/problem"
	"github.com/amineHorseman/butterfly-optimization-algorithms/internal/solver"
	"github.com/amineHorseman/butterfly-optimization-algorithms/internal/store"
)

var (
	configPath string
	method     string
	dim        int
	lowerBound float64
	upperBound float64
	popSize    int
	iters      int
	seed       int64
	verbosity  int
	earlyStop  int
	dataDir    string
	noSave     bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a single optimization",
	Long: `Runs the selected BOA variant on the sum-of-genes minimization
problem and prints the best solution found. Flags override values from
the optional YAML params file.`,
	RunE: runOptimization,
}

func init() {
	runCmd.Flags().StringVar(&configPath, "config", "", "YAML params file (optional)")
	runCmd.Flags().StringVar(&method, "method", "", "Method: boa, mboa, aboa, saboa, xboa, xaboa (other: random baseline)")
	runCmd.Flags().IntVar(&dim, "dim", 0, "Solution size (number of genes)")
	runCmd.Flags().Float64Var(&lowerBound, "lower", 0, "Lower bound per gene")
	runCmd.Flags().Float64Var(&upperBound, "upper", 0, "Upper bound per gene")
	runCmd.Flags().IntVar(&popSize, "pop", 0, "Population size")
	runCmd.Flags().IntVar(&iters, "iters", 0, "Max iterations")
	runCmd.Flags().Int64Var(&seed, "seed", 0, "Random seed")
	runCmd.Flags().IntVar(&verbosity, "verbosity", -1, "Log every Nth generation (0 disables)")
	runCmd.Flags().IntVar(&earlyStop, "early-stop", 0, "Generations without improvement before stopping")
	runCmd.Flags().StringVar(&dataDir, "data-dir", "./data", "Base directory for run persistence")
	runCmd.Flags().BoolVar(&noSave, "no-save", false, "Skip persisting the run result and trace")

	rootCmd.AddCommand(runCmd)
}

// loadRunConfig merges the optional params file with flag overrides.
func loadRunConfig(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("method") {
		cfg.Method = method
	}
	if cmd.Flags().Changed("dim") {
		cfg.SolutionSize = dim
	}
	if cmd.Flags().Changed("lower") {
		cfg.LowerBound = lowerBound
	}
	if cmd.Flags().Changed("upper") {
		cfg.UpperBound = upperBound
	}
	if cmd.Flags().Changed("pop") {
		cfg.PopSize = popSize
	}
	if cmd.Flags().Changed("iters") {
		cfg.MaxIterations = iters
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = seed
	}
	if cmd.Flags().Changed("verbosity") {
		cfg.VerbosityLevel = verbosity
	}
	if cmd.Flags().Changed("early-stop") {
		cfg.EarlyStoppingCounter = earlyStop
	}
	return cfg, nil
}

func runOptimization(cmd *cobra.Command, args []string) error {
	cfg, err := loadRunConfig(cmd)
	if err != nil {
		return err
	}

	slog.Info("starting optimization",
		"method", cfg.Method,
		"dim", cfg.SolutionSize,
		"pop", cfg.PopSize,
		"iters", cfg.MaxIterations,
		"seed", cfg.Seed,
	)

	obj := problem.NewSum(cfg.SolutionSize, cfg.LowerBound, cfg.UpperBound)
	s := solver.New(obj, solver.Options{
		Method:               cfg.Method,
		SolutionSize:         cfg.SolutionSize,
		PopSize:              cfg.PopSize,
		MaxIterations:        cfg.MaxIterations,
		Seed:                 cfg.Seed,
		VerbosityLevel:       cfg.VerbosityLevel,
		EarlyStoppingCounter: cfg.EarlyStoppingCounter,
		MethodParams:         cfg.MethodParams,
	})

	start := time.Now()
	result := s.Solve()
	elapsed := time.Since(start)

	slog.Info("optimization complete",
		"elapsed", elapsed,
		"method", result.Method,
		"initial_fitness", result.InitialFitness,
		"best_fitness", result.BestFitness,
		"improvement", result.BestFitness-result.InitialFitness,
		"generations", result.Generations,
		"early_stopped", result.EarlyStopped,
		"fevals", result.Fevals,
	)

	if !noSave {
		runID := uuid.New().String()
		if err := persistRun(runID, cfg, result); err != nil {
			return err
		}
		slog.Info("run persisted", "runID", runID, "dataDir", dataDir)
	}

	fmt.Printf("Best solution: %v\n", result.BestX)
	fmt.Printf("Best fitness: %g (%d generations, %d fevals)\n",
		result.BestFitness, result.Generations, result.Fevals)
	return nil
}

func persistRun(runID string, cfg config.Config, result *solver.Result) error {
	st, err := store.NewFSStore(dataDir)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}

	now := time.Now()
	err = st.SaveResult(runID, &store.RunResult{
		RunID:          runID,
		Method:         result.Method,
		BestX:          result.BestX,
		BestFitness:    result.BestFitness,
		InitialFitness: result.InitialFitness,
		Generations:    result.Generations,
		EarlyStopped:   result.EarlyStopped,
		Fevals:         result.Fevals,
		Timestamp:      now,
		Config: store.RunConfig{
			Method:               cfg.Method,
			SolutionSize:         cfg.SolutionSize,
			LowerBound:           cfg.LowerBound,
			UpperBound:           cfg.UpperBound,
			PopSize:              cfg.PopSize,
			MaxIterations:        cfg.MaxIterations,
			Seed:                 cfg.Seed,
			VerbosityLevel:       cfg.VerbosityLevel,
			EarlyStoppingCounter: cfg.EarlyStoppingCounter,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to save result: %w", err)
	}

	tw, err := store.NewTraceWriter(dataDir, runID)
	if err != nil {
		return fmt.Errorf("failed to create trace writer: %w", err)
	}

	for _, entry := range result.Trace {
		err := tw.Write(store.TraceEntry{
			Generation:  entry.Iteration,
			Fevals:      entry.Fevals,
			BestFitness: entry.Best,
			Improvement: entry.Improvement,
			Timestamp:   now,
		})
		if err != nil {
			tw.Close()
			return fmt.Errorf("failed to write trace: %w", err)
		}
	}

	// Close flushes the buffered trace; a flush failure means the run
	// was not fully persisted.
	if err := tw.Close(); err != nil {
		return fmt.Errorf("failed to close trace writer: %w", err)
	}
	return nil
}
