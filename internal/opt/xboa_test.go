package opt

import (
	"math"
	"math/rand"
	"testing"
)

// With a single butterfly the crossover branch has no mate to pick:
// the slot must stay untouched, with no evaluations and no error.
func TestXBOADegenerateCrossoverSingleIndividual(t *testing.T) {
	p, obj := newEvolveFixture(t, 1, 3, -2, 2, 30)
	afterInit := obj.Fevals()

	first := p.First()
	origX := append([]float64(nil), first.X...)
	origFit := first.Fitness

	// p=0 routes every individual into the crossover branch.
	x := NewXBOA(Params{Gen: 1, P: 0, MaxGen: 5}, rand.New(rand.NewSource(31)))
	for gen := 1; gen <= 5; gen++ {
		x.SetIteration(gen)
		x.Evolve(p, obj)
	}

	if got := obj.Fevals() - afterInit; got != 0 {
		t.Errorf("Degenerate crossover performed %d evaluations, want 0", got)
	}
	ind := p.First()
	if ind.Fitness != origFit {
		t.Errorf("Fitness changed: %v -> %v", origFit, ind.Fitness)
	}
	for k := range origX {
		if ind.X[k] != origX[k] {
			t.Errorf("Gene %d changed: %v -> %v", k, origX[k], ind.X[k])
		}
	}
}

// A one-gene vector has no interior cut point, so the crossover branch
// is likewise a no-op.
func TestXBOADimensionOneCrossoverSkipped(t *testing.T) {
	p, obj := newEvolveFixture(t, 4, 1, -2, 2, 32)
	afterInit := obj.Fevals()

	x := NewXBOA(Params{Gen: 1, P: 0, MaxGen: 3}, rand.New(rand.NewSource(33)))
	x.SetIteration(1)
	x.Evolve(p, obj)

	if got := obj.Fevals() - afterInit; got != 0 {
		t.Errorf("Dimension-1 crossover performed %d evaluations, want 0", got)
	}
}

// Crossover splices parents gene-for-gene: every post-sweep gene value
// must come from one of the two parents at the same index (bounds are
// wide enough that clamping never rewrites a gene).
func TestXBOACrossoverSplicesParentGenes(t *testing.T) {
	const size, dim = 2, 4
	p, obj := newEvolveFixture(t, size, dim, -5, 5, 34)

	ids := p.IDs()
	parents := make(map[int][]float64, size)
	for i, id := range ids {
		parents[i] = append([]float64(nil), p.Get(id).X...)
	}

	x := NewXBOA(Params{Gen: 1, P: 0, MaxGen: 1}, rand.New(rand.NewSource(35)))
	x.SetIteration(1)
	x.Evolve(p, obj)

	for _, id := range ids {
		ind := p.Get(id)
		for k, v := range ind.X {
			if v != parents[0][k] && v != parents[1][k] {
				t.Errorf("Gene %d = %v is not a parent gene (%v or %v)", k, v, parents[0][k], parents[1][k])
			}
		}
	}
}

func TestXBOACrossoverEvaluatesBothOffspring(t *testing.T) {
	const size = 6
	p, obj := newEvolveFixture(t, size, 4, -3, 3, 36)
	afterInit := obj.Fevals()

	x := NewXBOA(Params{Gen: 1, P: 0, MaxGen: 1}, rand.New(rand.NewSource(37)))
	x.SetIteration(1)
	x.Evolve(p, obj)

	if got := obj.Fevals() - afterInit; got != 2*size {
		t.Errorf("Crossover sweep performed %d evaluations, want %d", got, 2*size)
	}
}

func TestXABOANonlinearModalityClosedForm(t *testing.T) {
	const maxGen = 50
	const mu = 2.0

	p, obj := newEvolveFixture(t, 8, 3, -3, 3, 38)
	x := NewXBOA(Params{Gen: 1, MaxGen: maxGen, Mu: mu, Variant: "xaboa"}, rand.New(rand.NewSource(39)))

	for iter := 1; iter <= 10; iter++ {
		x.SetIteration(iter)
		x.Evolve(p, obj)

		it := math.Pow(float64(iter)/float64(maxGen), 2)
		want := 0.1 - (0.1-0.3)*math.Sin(math.Pi/mu*it)
		if got := x.SensoryModality(); math.Abs(got-want) > 1e-12 {
			t.Errorf("Iteration %d: c = %v, want %v", iter, got, want)
		}
	}
}

func TestXBOALinearModality(t *testing.T) {
	const maxGen = 100

	p, obj := newEvolveFixture(t, 5, 2, -1, 1, 40)
	x := NewXBOA(Params{Gen: 1, MaxGen: maxGen}, rand.New(rand.NewSource(41)))

	c := x.SensoryModality()
	x.SetIteration(1)
	x.Evolve(p, obj)

	want := c + 0.025/(c*float64(maxGen))
	if got := x.SensoryModality(); math.Abs(got-want) > 1e-12 {
		t.Errorf("c = %v, want %v", got, want)
	}
}

func TestXBOAVariantNormalization(t *testing.T) {
	tests := []struct {
		variant string
		want    string
	}{
		{variant: "xboa", want: "xboa"},
		{variant: "xABOA", want: "xaboa"},
		{variant: "boa", want: "xboa"},
		{variant: "", want: "xboa"},
	}

	for _, tt := range tests {
		x := NewXBOA(Params{Variant: tt.variant}, rand.New(rand.NewSource(42)))
		if x.variant != tt.want {
			t.Errorf("variant %q normalized to %q, want %q", tt.variant, x.variant, tt.want)
		}
	}
}
