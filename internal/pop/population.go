package pop

import (
	"math/rand"

	"github.com/google/uuid"

	"github.com/amineHorseman/butterfly-optimization-algorithms/internal/problem"
)

// Individual is one candidate solution: a position vector and its fitness.
type Individual struct {
	ID      uuid.UUID
	X       []float64
	Fitness float64
}

// Population holds candidate solutions keyed by ID. Iteration order is
// the insertion order and is significant: strategies process individuals
// in this order, and mid-sweep champion/worst updates are visible to
// later individuals.
type Population struct {
	ids     []uuid.UUID
	members map[uuid.UUID]*Individual
}

// SampleInitial creates a population of the given size with uniform
// random positions inside bounds, evaluating each individual once.
func SampleInitial(obj problem.Objective, size, dim int, bounds *Bounds, rng *rand.Rand) *Population {
	p := &Population{
		ids:     make([]uuid.UUID, 0, size),
		members: make(map[uuid.UUID]*Individual, size),
	}
	for i := 0; i < size; i++ {
		x := make([]float64, dim)
		for k := 0; k < dim; k++ {
			lo := bounds.Lower[k]
			hi := bounds.Upper[k]
			x[k] = lo + rng.Float64()*(hi-lo)
		}
		id := uuid.New()
		p.ids = append(p.ids, id)
		p.members[id] = &Individual{ID: id, X: x, Fitness: obj.Evaluate(x)}
	}
	return p
}

// Len returns the number of individuals.
func (p *Population) Len() int {
	return len(p.ids)
}

// IDs returns the individual IDs in iteration order. The returned slice
// is shared; callers must not modify it.
func (p *Population) IDs() []uuid.UUID {
	return p.ids
}

// Get returns the individual with the given ID, or nil if absent.
func (p *Population) Get(id uuid.UUID) *Individual {
	return p.members[id]
}

// First returns the first individual in iteration order.
func (p *Population) First() *Individual {
	return p.members[p.ids[0]]
}

// ChampionID returns the ID of the individual with minimum fitness.
// Ties break to the first encountered in iteration order.
func (p *Population) ChampionID() uuid.UUID {
	best := p.ids[0]
	for _, id := range p.ids[1:] {
		if p.members[id].Fitness < p.members[best].Fitness {
			best = id
		}
	}
	return best
}

// WorstID returns the ID of the individual with maximum fitness.
// Ties break to the first encountered in iteration order.
func (p *Population) WorstID() uuid.UUID {
	worst := p.ids[0]
	for _, id := range p.ids[1:] {
		if p.members[id].Fitness > p.members[worst].Fitness {
			worst = id
		}
	}
	return worst
}

// Champion returns the individual with minimum fitness.
func (p *Population) Champion() *Individual {
	return p.members[p.ChampionID()]
}

// Replace overwrites the position and fitness of the individual with
// the given ID. The overwrite is unconditional: acceptance policy is
// the caller's responsibility.
func (p *Population) Replace(id uuid.UUID, x []float64, fitness float64) {
	ind := p.members[id]
	ind.X = x
	ind.Fitness = fitness
}
