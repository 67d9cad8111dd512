package snowscene

import "math/rand/v2"

// Range is a general-purpose min/max range.
type Range struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// Random returns a uniform value in [Min, Max).
func (r Range) Random(rng *rand.Rand) float64 {
	return r.Min + (r.Max-r.Min)*rng.Float64()
}

// Valid reports whether Min does not exceed Max.
func (r Range) Valid() bool {
	return r.Min <= r.Max
}

// Component stream identifiers. Each stateful component draws from its own
// generator derived from the scene seed.
const (
	streamSnowfall uint64 = iota + 1
	streamGarland
	streamSnowCover
)

// NewRand creates the generator of one component.
func NewRand(seed uint64, stream uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, stream))
}
