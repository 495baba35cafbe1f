package problem

// Objective defines a minimization problem over a fixed-dimension
// continuous search space.
//
// Evaluate must count every call: the engine reads Fevals for its
// convergence log and trusts the value without verification.
type Objective interface {
	// Evaluate computes the fitness of a position vector. Lower is better.
	Evaluate(x []float64) float64

	// Bounds returns the per-gene lower and upper limits.
	Bounds() (lower, upper []float64)

	// Fevals returns the cumulative number of Evaluate calls.
	Fevals() int

	// Name returns a human-readable problem name.
	Name() string
}

// Sum is the example minimization problem: fitness is the sum of all
// genes, bounded by a scalar range broadcast over every dimension.
type Sum struct {
	dim    int
	lower  []float64
	upper  []float64
	fevals int
}

// NewSum creates a sum-of-genes problem of the given dimension with
// uniform scalar bounds.
func NewSum(dim int, lower, upper float64) *Sum {
	lo := make([]float64, dim)
	hi := make([]float64, dim)
	for i := 0; i < dim; i++ {
		lo[i] = lower
		hi[i] = upper
	}
	return &Sum{dim: dim, lower: lo, upper: hi}
}

// Evaluate returns the sum of all elements of x.
func (s *Sum) Evaluate(x []float64) float64 {
	s.fevals++
	var total float64
	for _, v := range x {
		total += v
	}
	return total
}

// Bounds returns the broadcast lower and upper bound vectors.
func (s *Sum) Bounds() (lower, upper []float64) {
	return s.lower, s.upper
}

// Fevals returns the cumulative evaluation count.
func (s *Sum) Fevals() int {
	return s.fevals
}

// Name returns the problem name.
func (s *Sum) Name() string {
	return "Minimization problem"
}

// Dim returns the solution size.
func (s *Sum) Dim() int {
	return s.dim
}
