package opt

import (
	"log/slog"
	"math"
	"math/rand"
	"strings"

	"github.com/google/uuid"

	"github.com/amineHorseman/butterfly-optimization-algorithms/internal/pop"
	"github.com/amineHorseman/butterfly-optimization-algorithms/internal/problem"
)

// Strategy is the contract the driver invokes once per outer iteration.
// Evolve runs the strategy's configured number of sweeps over the
// population, mutating it in place through pop.Population.Replace.
type Strategy interface {
	// Evolve runs one evolution step over the population.
	Evolve(p *pop.Population, obj problem.Objective)

	// SetIteration tells the strategy the driver's current outer
	// iteration, used by the time-dependent update rules.
	SetIteration(i int)

	// SetVerbosity enables the strategy's own convergence log: a record
	// is appended every level-th sweep. Zero disables logging.
	SetVerbosity(level int)

	// Log returns the strategy's append-only convergence records.
	Log() []LogEntry

	// Name returns a human-readable strategy name.
	Name() string
}

// LogEntry is one convergence record.
type LogEntry struct {
	Iteration   int     `json:"iteration"`
	Fevals      int     `json:"fevals"`
	Best        float64 `json:"best"`
	Improvement float64 `json:"improvement"`
}

// Params holds the tunables shared by the strategy constructors.
// Zero values are replaced by the reference defaults; out-of-range
// values are normalized, not rejected.
type Params struct {
	Gen     int     // sweeps per Evolve call, coerced to >= 1
	C       float64 // sensory modality
	A       float64 // power exponent
	P       float64 // switch probability, reset to 0.8 outside [0,1]
	Mu      float64 // nonlinear modality shape parameter
	MaxGen  int     // outer iteration budget, drives modality updates
	Variant string  // case-insensitive variant tag
}

const (
	defaultSensoryModality   = 0.01
	defaultPowerExponent     = 0.1
	defaultSwitchProbability = 0.8
	defaultMu                = 2
)

func (cfg Params) normalized() Params {
	if cfg.Gen < 1 {
		cfg.Gen = 1
	}
	if cfg.C == 0 {
		cfg.C = defaultSensoryModality
	}
	if cfg.A == 0 {
		cfg.A = defaultPowerExponent
	}
	if cfg.P < 0 || cfg.P > 1 {
		cfg.P = defaultSwitchProbability
	}
	if cfg.Mu == 0 {
		cfg.Mu = defaultMu
	}
	if cfg.MaxGen < 1 {
		cfg.MaxGen = 1
	}
	cfg.Variant = strings.ToLower(cfg.Variant)
	return cfg
}

// fragrance computes the stimulus intensity f = c*|fitness|^a. The
// absolute value avoids a complex result when a is fractional and the
// fitness negative, matching the reference rule.
func fragrance(c, a, fitness float64) float64 {
	return c * math.Pow(math.Abs(fitness), a)
}

// nonlinearModality is the ABOA/xABOA update rule
// c = 0.1 - (0.1-0.3)*sin(pi/mu * (t/maxGen)^2).
func nonlinearModality(mu float64, iteration, maxGen int) float64 {
	const a0, a1 = 0.1, 0.3
	it := math.Pow(float64(iteration)/float64(maxGen), 2)
	return a0 - (a0-a1)*math.Sin(math.Pi/mu*it)
}

// linearModality is the classic update rule c += 0.025/(c*maxGen).
// The division by c is deliberately unguarded: c near zero blows up,
// reproducing the reference behavior.
func linearModality(c float64, maxGen int) float64 {
	return c + 0.025/(c*float64(maxGen))
}

// candidate is a strategy's working copy of one individual.
type candidate struct {
	x   []float64
	fit float64
}

// working is a sweep snapshot of the population: positions and fitness
// copied out once, processed in population iteration order, and written
// back after the sweeps complete.
type working struct {
	ids  []uuid.UUID
	byID map[uuid.UUID]*candidate
}

func snapshot(p *pop.Population) *working {
	w := &working{
		ids:  p.IDs(),
		byID: make(map[uuid.UUID]*candidate, p.Len()),
	}
	for _, id := range w.ids {
		ind := p.Get(id)
		x := make([]float64, len(ind.X))
		copy(x, ind.X)
		w.byID[id] = &candidate{x: x, fit: ind.Fitness}
	}
	return w
}

// randomID picks an ID uniformly at random, with replacement across calls.
func (w *working) randomID(rng *rand.Rand) uuid.UUID {
	return w.ids[rng.Intn(len(w.ids))]
}

// writeBack copies the working state into the population.
func (w *working) writeBack(p *pop.Population) {
	for _, id := range w.ids {
		cand := w.byID[id]
		p.Replace(id, cand.x, cand.fit)
	}
}

// tracer implements the verbosity-gated convergence log shared by all
// strategies.
type tracer struct {
	verbosity int
	entries   []LogEntry
}

func (t *tracer) SetVerbosity(level int) {
	if level > 0 {
		t.verbosity = level
	}
}

func (t *tracer) Log() []LogEntry {
	return t.entries
}

func (t *tracer) record(iteration, fevals int, best, improvement float64) {
	if t.verbosity <= 0 || iteration%t.verbosity != 0 {
		return
	}
	t.entries = append(t.entries, LogEntry{
		Iteration:   iteration,
		Fevals:      fevals,
		Best:        best,
		Improvement: improvement,
	})
	slog.Debug("sweep complete",
		"iteration", iteration,
		"fevals", fevals,
		"fbest", best,
		"improvement", improvement,
	)
}
