package opt

import (
	"math/rand"

	"gonum.org/v1/gonum/floats"

	"github.com/amineHorseman/butterfly-optimization-algorithms/internal/pop"
	"github.com/amineHorseman/butterfly-optimization-algorithms/internal/problem"
)

// XBOA implements the Crossover Butterfly Optimization Algorithm and
// its xABOA variant (xBOA plus the nonlinear modality update).
type XBOA struct {
	tracer

	c       float64
	a       float64
	p       float64
	mu      float64
	variant string
	gen     int
	maxGen  int
	current int
	rng     *rand.Rand
}

// NewXBOA creates an xBOA-family strategy. Unknown variants fall back
// to plain "xboa".
func NewXBOA(cfg Params, rng *rand.Rand) *XBOA {
	cfg = cfg.normalized()
	switch cfg.Variant {
	case "xboa", "xaboa":
	default:
		cfg.Variant = "xboa"
	}
	return &XBOA{
		c:       cfg.C,
		a:       cfg.A,
		p:       cfg.P,
		mu:      cfg.Mu,
		variant: cfg.Variant,
		gen:     cfg.Gen,
		maxGen:  cfg.MaxGen,
		current: 1,
		rng:     rng,
	}
}

// Evolve runs the configured number of sweeps. Each sweep re-snapshots
// the population: crossover maps parents to offspring by ID, and state
// is not carried forward from a prior internal sweep. The write-back
// happens once after all sweeps, so the strategy's own log reads the
// population champion as it was before this Evolve call.
func (x *XBOA) Evolve(p *pop.Population, obj problem.Objective) {
	lower, upper := obj.Bounds()
	bounds := pop.FromVectors(lower, upper)
	size := p.Len()

	var w *working
	for i := 0; i < x.gen; i++ {
		oldBest := p.Champion().Fitness
		w = snapshot(p)

		for _, id := range w.ids {
			cur := w.byID[id]
			dim := len(cur.x)

			if x.rng.Float64() > x.p {
				// Crossover branch. A lone butterfly has no mate and a
				// one-gene vector has no cut point: the slot is left
				// unchanged with no evaluations.
				if size <= 1 || dim < 2 {
					continue
				}
				j := id
				for j == id {
					j = w.randomID(x.rng)
				}
				mate := w.byID[j].x
				cut := x.rng.Intn(dim-1) + 1

				off1 := make([]float64, dim)
				copy(off1, cur.x[:cut])
				copy(off1[cut:], mate[cut:])
				off2 := make([]float64, dim)
				copy(off2, mate[:cut])
				copy(off2[cut:], cur.x[cut:])

				bounds.Clamp(off1)
				bounds.Clamp(off2)
				fit1 := obj.Evaluate(off1)
				fit2 := obj.Evaluate(off2)

				// Replace the parent by the fitter offspring, only if
				// one of them improves on it.
				if fit1 < cur.fit || fit2 < cur.fit {
					if fit1 < fit2 {
						w.byID[id] = &candidate{x: off1, fit: fit1}
					} else {
						w.byID[id] = &candidate{x: off2, fit: fit2}
					}
				}
			} else {
				// Neighbour move, as the BOA local search.
				f := fragrance(x.c, x.a, cur.fit)
				r1 := x.rng.Float64()
				r2 := x.rng.Float64()
				j := w.randomID(x.rng)
				k := w.randomID(x.rng)

				xv := make([]float64, dim)
				copy(xv, cur.x)
				step := make([]float64, dim)
				copy(step, w.byID[j].x)
				floats.Scale(r1*r2, step)
				floats.Sub(step, w.byID[k].x)
				floats.AddScaled(xv, f, step)

				bounds.Clamp(xv)
				if newFit := obj.Evaluate(xv); newFit < cur.fit {
					w.byID[id] = &candidate{x: xv, fit: newFit}
				}
			}
		}

		if x.variant == "xaboa" {
			x.c = nonlinearModality(x.mu, x.current, x.maxGen)
		} else {
			x.c = linearModality(x.c, x.maxGen)
		}

		best := p.Champion().Fitness
		x.record(i+1, obj.Fevals(), best, best-oldBest)
	}

	w.writeBack(p)
}

// SetIteration records the driver's current outer iteration.
func (x *XBOA) SetIteration(i int) {
	x.current = i
}

// Name returns the variant's full name.
func (x *XBOA) Name() string {
	if x.variant == "xaboa" {
		return "xABOA: Crossover Adaptative Butterfly Optimization Algorithm"
	}
	return "xBOA: Crossover Butterfly Optimization Algorithm"
}

// SensoryModality exposes the current c value.
func (x *XBOA) SensoryModality() float64 {
	return x.c
}
