package opt

import (
	"math"
	"math/rand"
	"testing"
)

func TestBOAParamsNormalization(t *testing.T) {
	tests := []struct {
		name        string
		cfg         Params
		wantP       float64
		wantGen     int
		wantVariant string
	}{
		{
			name:        "defaults applied",
			cfg:         Params{},
			wantP:       0.8,
			wantGen:     1,
			wantVariant: "boa",
		},
		{
			name:        "switch probability above one resets",
			cfg:         Params{P: 1.5, Gen: 3, Variant: "mBOA"},
			wantP:       0.8,
			wantGen:     3,
			wantVariant: "mboa",
		},
		{
			name:        "negative switch probability resets",
			cfg:         Params{P: -0.1, Variant: "ABOA"},
			wantP:       0.8,
			wantGen:     1,
			wantVariant: "aboa",
		},
		{
			name:        "zero switch probability is legal",
			cfg:         Params{P: 0, Gen: 1, Variant: "boa"},
			wantP:       0,
			wantGen:     1,
			wantVariant: "boa",
		},
		{
			name:        "unknown variant falls back to boa",
			cfg:         Params{Variant: "butterfly"},
			wantP:       0.8,
			wantGen:     1,
			wantVariant: "boa",
		},
		{
			name:        "non-positive generations coerce to one",
			cfg:         Params{Gen: -4},
			wantP:       0.8,
			wantGen:     1,
			wantVariant: "boa",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBOA(tt.cfg, rand.New(rand.NewSource(1)))
			if b.p != tt.wantP {
				t.Errorf("p = %v, want %v", b.p, tt.wantP)
			}
			if b.gen != tt.wantGen {
				t.Errorf("gen = %v, want %v", b.gen, tt.wantGen)
			}
			if b.variant != tt.wantVariant {
				t.Errorf("variant = %q, want %q", b.variant, tt.wantVariant)
			}
		})
	}
}

func TestNonlinearModalityClosedForm(t *testing.T) {
	const maxGen = 50
	const mu = 2.0

	p, obj := newEvolveFixture(t, 8, 3, -3, 3, 2)
	b := NewBOA(Params{Gen: 1, MaxGen: maxGen, Mu: mu, Variant: "aboa"}, rand.New(rand.NewSource(3)))

	for iter := 1; iter <= 10; iter++ {
		b.SetIteration(iter)
		b.Evolve(p, obj)

		it := math.Pow(float64(iter)/float64(maxGen), 2)
		want := 0.1 - (0.1-0.3)*math.Sin(math.Pi/mu*it)
		if got := b.SensoryModality(); math.Abs(got-want) > 1e-12 {
			t.Errorf("Iteration %d: c = %v, want %v", iter, got, want)
		}
	}
}

func TestLinearModalityUpdate(t *testing.T) {
	const maxGen = 100

	p, obj := newEvolveFixture(t, 5, 2, -1, 1, 4)
	b := NewBOA(Params{Gen: 1, MaxGen: maxGen}, rand.New(rand.NewSource(5)))

	c := b.SensoryModality()
	for iter := 1; iter <= 5; iter++ {
		b.SetIteration(iter)
		b.Evolve(p, obj)

		want := c + 0.025/(c*float64(maxGen))
		if got := b.SensoryModality(); math.Abs(got-want) > 1e-12 {
			t.Errorf("Iteration %d: c = %v, want %v", iter, got, want)
		}
		c = b.SensoryModality()
	}
}

// The linear update divides by c with no guard; a near-zero modality
// blows up instead of being clamped. Pinned deliberately.
func TestLinearModalityNearZeroBlowsUp(t *testing.T) {
	p, obj := newEvolveFixture(t, 5, 2, -1, 1, 6)
	b := NewBOA(Params{Gen: 1, C: 1e-9, MaxGen: 10}, rand.New(rand.NewSource(7)))

	b.SetIteration(1)
	b.Evolve(p, obj)

	if got := b.SensoryModality(); got < 1e6 {
		t.Errorf("Expected modality blow-up from c=1e-9, got %v", got)
	}
}

// mBOA's exploitation step runs with probability p; with p=1 it fires
// for every individual, costing exactly two evaluations per move.
func TestMBOAExploitationEvaluations(t *testing.T) {
	const size = 10
	p, obj := newEvolveFixture(t, size, 3, -2, 2, 8)
	afterInit := obj.Fevals()

	b := NewBOA(Params{Gen: 1, P: 1, MaxGen: 5, Variant: "mboa"}, rand.New(rand.NewSource(9)))
	b.SetIteration(1)
	b.Evolve(p, obj)

	if got := obj.Fevals() - afterInit; got != 2*size {
		t.Errorf("mBOA with p=1 performed %d evaluations in one sweep, want %d", got, 2*size)
	}
}

func TestBOAEvaluationsPerSweep(t *testing.T) {
	const size = 10
	p, obj := newEvolveFixture(t, size, 3, -2, 2, 10)
	afterInit := obj.Fevals()

	b := NewBOA(Params{Gen: 1, MaxGen: 5}, rand.New(rand.NewSource(11)))
	b.SetIteration(1)
	b.Evolve(p, obj)

	if got := obj.Fevals() - afterInit; got != size {
		t.Errorf("BOA performed %d evaluations in one sweep, want %d", got, size)
	}
}

// A candidate accepted mid-sweep that beats the champion becomes the
// attractor immediately: the next individual's global move targets the
// updated best position, not the sweep-start champion.
func TestBOAMidSweepBestUpdateObserved(t *testing.T) {
	const seed = 41
	p, obj := newEvolveFixture(t, 2, 1, -10, 10, 40)
	ids := p.IDs()
	p.Replace(ids[0], []float64{2}, 2)
	p.Replace(ids[1], []float64{1}, 1) // initial champion

	// P=0 forces the global move for both individuals; C=1, A=1 make
	// the first individual's fragrance large enough that it always
	// lands below zero and overtakes the champion at x=1.
	b := NewBOA(Params{Gen: 1, C: 1, A: 1, P: 0, MaxGen: 10}, rand.New(rand.NewSource(seed)))
	b.SetIteration(1)
	b.Evolve(p, obj)

	// Replay the draws to compute the expected trajectory by hand.
	shadow := rand.New(rand.NewSource(seed))
	r1, r2 := shadow.Float64(), shadow.Float64()
	shadow.Float64() // switch draw, above p=0: global move
	first := 2 + fragrance(1, 1, 2)*(r1*r2*1-2)

	r1, r2 = shadow.Float64(), shadow.Float64()
	shadow.Float64()
	second := 1 + fragrance(1, 1, 1)*(r1*r2*first-1)

	if got := p.Get(ids[0]).X[0]; math.Abs(got-first) > 1e-12 {
		t.Errorf("First individual at %v, want %v", got, first)
	}
	got := p.Get(ids[1]).X[0]
	if math.Abs(got-second) > 1e-12 {
		t.Errorf("Second individual at %v, want %v", got, second)
	}
	// Attraction toward the sweep-start champion at x=1 lands at
	// r1*r2 >= 0; the updated best is negative and pulls below zero.
	if got > 0 {
		t.Errorf("Second individual at %v, expected a move below zero toward the updated best", got)
	}
}

func TestBOAName(t *testing.T) {
	tests := []struct {
		variant string
		want    string
	}{
		{variant: "boa", want: "BOA: Butterfly Optimization Algorithm"},
		{variant: "mboa", want: "mBOA: Modified Butterfly Optimization Algorithm"},
		{variant: "aboa", want: "ABOA: Adaptative Butterfly Optimization Algorithm"},
	}

	for _, tt := range tests {
		b := NewBOA(Params{Variant: tt.variant}, rand.New(rand.NewSource(1)))
		if got := b.Name(); got != tt.want {
			t.Errorf("Name(%s) = %q, want %q", tt.variant, got, tt.want)
		}
	}
}
