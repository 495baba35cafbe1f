package solver

import (
	"log/slog"
	"math/rand"
	"strings"

	"gonum.org/v1/gonum/stat"

	"github.com/amineHorseman/butterfly-optimization-algorithms/internal/opt"
	"github.com/amineHorseman/butterfly-optimization-algorithms/internal/pop"
	"github.com/amineHorseman/butterfly-optimization-algorithms/internal/problem"
)

// Options configures a solve. Zero values fall back to the reference
// defaults; method parameters are forwarded to the strategy, which
// normalizes out-of-range values instead of rejecting them.
type Options struct {
	Method               string
	SolutionSize         int
	PopSize              int
	MaxIterations        int
	Seed                 int64
	VerbosityLevel       int
	EarlyStoppingCounter int

	// MethodParams carries the variant tunables by their configuration
	// names (sensory_modality, power_exponent, switch_probability, mu).
	// Unrecognized keys are accepted and ignored.
	MethodParams map[string]float64
}

func (o Options) normalized() Options {
	if o.PopSize < 1 {
		o.PopSize = 10
	}
	if o.MaxIterations < 1 {
		o.MaxIterations = 1
	}
	if o.EarlyStoppingCounter < 1 {
		o.EarlyStoppingCounter = 10
	}
	return o
}

// Result is the outcome of a solve.
type Result struct {
	Method         string
	BestX          []float64
	BestFitness    float64
	InitialFitness float64
	Generations    int
	EarlyStopped   bool
	Fevals         int

	// Trace records one entry per executed generation, regardless of
	// the verbosity level.
	Trace []opt.LogEntry

	// Final-population fitness statistics.
	MeanFitness   float64
	StdDevFitness float64
}

// Solver owns the population and drives the selected strategy one
// generation at a time, applying early stopping on stagnation.
type Solver struct {
	obj      problem.Objective
	opts     Options
	pop      *pop.Population
	strategy opt.Strategy
	baseline bool
}

// New samples the initial population inside the objective's bounds and
// selects a strategy by case-insensitive method name. Any name outside
// the known families selects the random baseline.
func New(obj problem.Objective, opts Options) *Solver {
	opts = opts.normalized()
	rng := rand.New(rand.NewSource(opts.Seed))

	lower, upper := obj.Bounds()
	bounds := pop.FromVectors(lower, upper)
	population := pop.SampleInitial(obj, opts.PopSize, opts.SolutionSize, bounds, rng)

	params := opt.Params{
		Gen:     1,
		MaxGen:  opts.MaxIterations,
		Variant: opts.Method,
		// Absent switch_probability is marked out of range so the
		// strategy falls back to its own default; zero is a legal value.
		P: -1,
	}
	if c, ok := opts.MethodParams["sensory_modality"]; ok {
		params.C = c
	}
	if a, ok := opts.MethodParams["power_exponent"]; ok {
		params.A = a
	}
	if p, ok := opts.MethodParams["switch_probability"]; ok {
		params.P = p
	}
	if mu, ok := opts.MethodParams["mu"]; ok {
		params.Mu = mu
	}

	var strategy opt.Strategy
	baseline := false
	switch strings.ToLower(opts.Method) {
	case "boa", "mboa", "aboa":
		strategy = opt.NewBOA(params, rng)
	case "saboa":
		strategy = opt.NewSABOA(params, rng)
	case "xboa", "xaboa":
		strategy = opt.NewXBOA(params, rng)
	default:
		strategy = opt.NewRandom()
		baseline = true
	}
	strategy.SetVerbosity(opts.VerbosityLevel)

	if opts.VerbosityLevel > 0 {
		slog.Info("solving problem", "problem", obj.Name(), "method", strategy.Name())
	}

	return &Solver{
		obj:      obj,
		opts:     opts,
		pop:      population,
		strategy: strategy,
		baseline: baseline,
	}
}

// Population exposes the solver's population, mainly for tests and for
// inspecting the initial sample before Solve.
func (s *Solver) Population() *pop.Population {
	return s.pop
}

// Strategy exposes the selected strategy.
func (s *Solver) Strategy() opt.Strategy {
	return s.strategy
}

// Solve runs the optimization and returns the best solution found.
//
// The baseline returns the first individual of the untouched initial
// population. Otherwise the driver evolves one generation per outer
// iteration, decrements the stagnation counter on generations with
// exactly zero improvement, resets it on any improvement, and stops
// when the counter reaches zero or the budget is exhausted.
func (s *Solver) Solve() *Result {
	if s.baseline {
		first := s.pop.First()
		best := make([]float64, len(first.X))
		copy(best, first.X)
		return s.summarize(&Result{
			BestX:          best,
			BestFitness:    first.Fitness,
			InitialFitness: first.Fitness,
		})
	}

	counter := s.opts.EarlyStoppingCounter
	initialBest := s.pop.Champion().Fitness
	oldBest := initialBest

	res := &Result{InitialFitness: initialBest}
	for i := 1; i <= s.opts.MaxIterations; i++ {
		s.strategy.SetIteration(i)
		s.strategy.Evolve(s.pop, s.obj)

		best := s.pop.Champion().Fitness
		improvement := best - oldBest
		if improvement == 0 {
			counter--
		} else {
			counter = s.opts.EarlyStoppingCounter
		}
		oldBest = best

		res.Generations = i
		res.Trace = append(res.Trace, opt.LogEntry{
			Iteration:   i,
			Fevals:      s.obj.Fevals(),
			Best:        best,
			Improvement: improvement,
		})

		if s.opts.VerbosityLevel > 0 && i%s.opts.VerbosityLevel == 0 {
			slog.Info("generation",
				"gen", i,
				"fevals", s.obj.Fevals(),
				"fbest", best,
				"improvement", improvement,
			)
		}

		if counter <= 0 {
			res.EarlyStopped = true
			break
		}
	}

	if s.opts.VerbosityLevel > 0 {
		slog.Info("optimization finished",
			"generations", res.Generations,
			"early_stopped", res.EarlyStopped,
		)
	}

	champion := s.pop.Champion()
	res.BestX = make([]float64, len(champion.X))
	copy(res.BestX, champion.X)
	res.BestFitness = champion.Fitness
	return s.summarize(res)
}

func (s *Solver) summarize(res *Result) *Result {
	res.Method = s.strategy.Name()
	res.Fevals = s.obj.Fevals()

	fits := make([]float64, 0, s.pop.Len())
	for _, id := range s.pop.IDs() {
		fits = append(fits, s.pop.Get(id).Fitness)
	}
	res.MeanFitness = stat.Mean(fits, nil)
	res.StdDevFitness = stat.StdDev(fits, nil)
	return res
}
