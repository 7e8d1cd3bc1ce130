package core

import (
	"math/rand/v2"
)

// NewRandom creates a generator from a seed pair. Every concurrent unit of
// work gets its own generator; *rand.Rand is not safe for concurrent use.
func NewRandom(seed1, seed2 uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed1, seed2))
}

// RandomInUnitSphere returns a point strictly inside the unit sphere by
// rejection sampling the [-1,1)³ cube
func RandomInUnitSphere(random *rand.Rand) Vec3 {
	for {
		p := Vec3{
			X: 2*random.Float64() - 1,
			Y: 2*random.Float64() - 1,
			Z: 2*random.Float64() - 1,
		}
		if p.LengthSquared() < 1.0 {
			return p
		}
	}
}

// RandomInUnitDisk returns a point strictly inside the unit disk in the z=0 plane
func RandomInUnitDisk(random *rand.Rand) Vec3 {
	for {
		p := NewVec3(2*random.Float64()-1, 2*random.Float64()-1, 0)
		if p.LengthSquared() < 1.0 {
			return p
		}
	}
}
