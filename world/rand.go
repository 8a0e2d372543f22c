package world

// Rand is the source of randomness for blood bursts. *rand.Rand satisfies
// it; tests pass a seeded one.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// between returns a value in [lo, hi).
func between(r Rand, lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}
