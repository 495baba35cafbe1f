package opt

import (
	"github.com/amineHorseman/butterfly-optimization-algorithms/internal/pop"
	"github.com/amineHorseman/butterfly-optimization-algorithms/internal/problem"
)

// Random is the control baseline selected for unknown method names.
// It performs no optimization: the driver returns the first individual
// of the untouched initial population, and Evolve is a no-op costing
// zero evaluations.
type Random struct {
	tracer
}

// NewRandom creates the random baseline.
func NewRandom() *Random {
	return &Random{}
}

// Evolve leaves the population untouched.
func (r *Random) Evolve(_ *pop.Population, _ problem.Objective) {}

// SetIteration is a no-op for the baseline.
func (r *Random) SetIteration(int) {}

// Name returns the baseline name.
func (r *Random) Name() string {
	return "Random"
}
