package opt

import (
	"math/rand"

	"gonum.org/v1/gonum/floats"

	"github.com/amineHorseman/butterfly-optimization-algorithms/internal/pop"
	"github.com/amineHorseman/butterfly-optimization-algorithms/internal/problem"
)

// BOA implements the Butterfly Optimization Algorithm and its mBOA and
// ABOA variants.
//
// Implementation notes, carried over from the reference implementation:
//  1. The published pseudo-code updates the power exponent each
//     generation, but the authors' code updates the sensory modality c
//     instead. The modality is what changes here.
//  2. The published global move uses r^2; the authors' code draws two
//     independent random numbers r1*r2. Two draws are used here.
//  3. The published switch condition is r < p; the authors' code uses
//     r > p. The r > p form is used here.
type BOA struct {
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

// NewBOA creates a BOA-family strategy. Unknown variants fall back to
// plain "boa".
func NewBOA(cfg Params, rng *rand.Rand) *BOA {
	cfg = cfg.normalized()
	switch cfg.Variant {
	case "boa", "mboa", "aboa":
	default:
		cfg.Variant = "boa"
	}
	return &BOA{
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

// Evolve runs the configured number of sweeps over the population.
// Individuals are processed in population iteration order, and an
// accepted candidate that beats the current best becomes the attractor
// for the remainder of the sweep.
func (b *BOA) Evolve(p *pop.Population, obj problem.Objective) {
	lower, upper := obj.Bounds()
	bounds := pop.FromVectors(lower, upper)

	w := snapshot(p)
	bestID := p.ChampionID()

	for i := 0; i < b.gen; i++ {
		oldBest := w.byID[bestID].fit

		for _, id := range w.ids {
			cur := w.byID[id]
			f := fragrance(b.c, b.a, cur.fit)

			r1 := b.rng.Float64()
			r2 := b.rng.Float64()
			x := make([]float64, len(cur.x))
			copy(x, cur.x)
			step := make([]float64, len(cur.x))
			if b.rng.Float64() > b.p {
				// Global move toward the best butterfly:
				// x' = x + f*(r1*r2*best - x).
				copy(step, w.byID[bestID].x)
				floats.Scale(r1*r2, step)
				floats.Sub(step, cur.x)
			} else {
				// Local move among two random neighbours, drawn with
				// replacement: x' = x + f*(r1*r2*x_j - x_k).
				j := w.randomID(b.rng)
				k := w.randomID(b.rng)
				copy(step, w.byID[j].x)
				floats.Scale(r1*r2, step)
				floats.Sub(step, w.byID[k].x)
			}
			floats.AddScaled(x, f, step)

			bounds.Clamp(x)
			newFit := obj.Evaluate(x)

			// mBOA intensive exploitation: with independent probability
			// p, also try x2 = best + (r1-r2)*best and keep the fitter
			// of the two candidates.
			if b.variant == "mboa" && b.rng.Float64() < b.p {
				r1 = b.rng.Float64()
				r2 = b.rng.Float64()
				x2 := make([]float64, len(cur.x))
				copy(x2, w.byID[bestID].x)
				floats.AddScaled(x2, r1-r2, w.byID[bestID].x)
				bounds.Clamp(x2)
				if fit2 := obj.Evaluate(x2); fit2 < newFit {
					x = x2
					newFit = fit2
				}
			}

			// Greedy per-individual acceptance.
			if newFit < cur.fit {
				w.byID[id] = &candidate{x: x, fit: newFit}
			}
			if newFit < w.byID[bestID].fit {
				bestID = id
			}
		}

		if b.variant == "aboa" {
			b.c = nonlinearModality(b.mu, b.current, b.maxGen)
		} else {
			b.c = linearModality(b.c, b.maxGen)
		}

		best := w.byID[bestID].fit
		b.record(i+1, obj.Fevals(), best, best-oldBest)
	}

	w.writeBack(p)
}

// SetIteration records the driver's current outer iteration.
func (b *BOA) SetIteration(i int) {
	b.current = i
}

// Name returns the variant's full name.
func (b *BOA) Name() string {
	switch b.variant {
	case "aboa":
		return "ABOA: Adaptative Butterfly Optimization Algorithm"
	case "mboa":
		return "mBOA: Modified Butterfly Optimization Algorithm"
	default:
		return "BOA: Butterfly Optimization Algorithm"
	}
}

// SensoryModality exposes the current c value.
func (b *BOA) SensoryModality() float64 {
	return b.c
}
