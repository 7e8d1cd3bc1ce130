package integrator

import (
	"math/rand/v2"

	"github.com/df07/go-weekend-pathtracer/pkg/core"
)

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor estimates the radiance arriving along ray from world. The
	// generator must not be shared with concurrent callers.
	RayColor(ray core.Ray, world core.Hitable, random *rand.Rand) core.Vec3
}
