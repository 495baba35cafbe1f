package opt

import (
	"math/rand"

	"gonum.org/v1/gonum/floats"

	"github.com/amineHorseman/butterfly-optimization-algorithms/internal/pop"
	"github.com/amineHorseman/butterfly-optimization-algorithms/internal/problem"
)

// SABOA implements the Self-Adaptive Butterfly Optimization Algorithm.
// There is no persistent sensory modality: the move magnitude is drawn
// fresh per individual and decays with the outer iteration.
type SABOA struct {
	tracer

	p       float64
	gen     int
	maxGen  int
	current int
	rng     *rand.Rand
}

// NewSABOA creates a SABOA strategy.
func NewSABOA(cfg Params, rng *rand.Rand) *SABOA {
	cfg = cfg.normalized()
	return &SABOA{
		p:       cfg.P,
		gen:     cfg.Gen,
		maxGen:  cfg.MaxGen,
		current: 1,
		rng:     rng,
	}
}

// Evolve runs the configured number of sweeps. Best and worst IDs are
// tracked explicitly and updated immediately mid-sweep, so later
// individuals observe the latest extremes. The worst ID moves on any
// evaluated candidate whose fitness exceeds the current worst, even a
// rejected one; the recorded worst may therefore lag the true maximum.
// This reproduces the reference behavior.
func (s *SABOA) Evolve(p *pop.Population, obj problem.Objective) {
	lower, upper := obj.Bounds()
	bounds := pop.FromVectors(lower, upper)

	w := snapshot(p)
	bestID := p.ChampionID()
	worstID := p.WorstID()

	for i := 0; i < s.gen; i++ {
		oldBest := w.byID[bestID].fit

		for _, id := range w.ids {
			cur := w.byID[id]

			u := s.rng.Float64()
			f := u * (1 - float64(s.current)/float64(s.maxGen))

			x := make([]float64, len(cur.x))
			if s.rng.Float64() > s.p {
				// Additive move relative to the best butterfly, kept
				// literally as published: x' = x + best + (x-best)*f.
				copy(x, cur.x)
				floats.Add(x, w.byID[bestID].x)
				diff := make([]float64, len(cur.x))
				copy(diff, cur.x)
				floats.Sub(diff, w.byID[bestID].x)
				floats.AddScaled(x, f, diff)
			} else {
				// Midpoint move: x' = 0.5*(best+worst)*f. The current
				// position does not participate.
				floats.AddTo(x, w.byID[bestID].x, w.byID[worstID].x)
				floats.Scale(0.5*f, x)
			}

			bounds.Clamp(x)
			newFit := obj.Evaluate(x)

			if newFit < cur.fit {
				w.byID[id] = &candidate{x: x, fit: newFit}
			}
			if newFit < w.byID[bestID].fit {
				bestID = id
			}
			if newFit > w.byID[worstID].fit {
				worstID = id
			}
		}

		best := w.byID[bestID].fit
		s.record(i+1, obj.Fevals(), best, best-oldBest)
	}

	w.writeBack(p)
}

// SetIteration records the driver's current outer iteration.
func (s *SABOA) SetIteration(i int) {
	s.current = i
}

// Name returns the strategy's full name.
func (s *SABOA) Name() string {
	return "SABOA: Self-Adaptative Butterfly Optimization Algorithm"
}
