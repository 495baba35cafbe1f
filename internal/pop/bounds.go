package pop

// Bounds defines per-gene lower and upper limits for position vectors.
type Bounds struct {
	Lower []float64
	Upper []float64
}

// NewBounds broadcasts scalar limits over dim genes.
func NewBounds(dim int, lower, upper float64) *Bounds {
	lo := make([]float64, dim)
	hi := make([]float64, dim)
	for i := 0; i < dim; i++ {
		lo[i] = lower
		hi[i] = upper
	}
	return &Bounds{Lower: lo, Upper: hi}
}

// FromVectors wraps existing bound vectors without copying.
// Lengths are not validated against positions; a mismatch is
// undefined behavior.
func FromVectors(lower, upper []float64) *Bounds {
	return &Bounds{Lower: lower, Upper: upper}
}

// Clamp clips x elementwise into the bounds, in place. Out-of-range
// genes are silently corrected.
func (b *Bounds) Clamp(x []float64) []float64 {
	for k := range x {
		if x[k] < b.Lower[k] {
			x[k] = b.Lower[k]
		} else if x[k] > b.Upper[k] {
			x[k] = b.Upper[k]
		}
	}
	return x
}
