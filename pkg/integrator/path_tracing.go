package integrator

import (
	"math"
	"math/rand/v2"

	"github.com/df07/go-weekend-pathtracer/pkg/core"
)

const (
	// DefaultMaxDepth is the number of scatters after which a path contributes black
	DefaultMaxDepth = 50

	// DefaultTMin keeps rays leaving a surface from re-hitting it
	DefaultTMin = 0.01
)

var (
	skyTop    = core.NewVec3(0.5, 0.7, 1.0)
	skyBottom = core.NewVec3(1.0, 1.0, 1.0)
)

// Config controls path termination
type Config struct {
	MaxDepth int     // Scatters allowed before a path is cut off
	TMin     float64 // Self-intersection epsilon
}

// DefaultConfig returns the classic depth-50 cutoff with a 0.01 epsilon
func DefaultConfig() Config {
	return Config{
		MaxDepth: DefaultMaxDepth,
		TMin:     DefaultTMin,
	}
}

// PathTracingIntegrator implements recursive Monte Carlo path tracing with a
// hard depth cutoff and a sky gradient as the only light source.
//
// Paths are cut at MaxDepth rather than terminated by Russian roulette, which
// biases deep paths to black in exchange for bounded variance and stack depth.
type PathTracingIntegrator struct {
	config Config
}

// NewPathTracingIntegrator creates a new path tracing integrator
func NewPathTracingIntegrator(config Config) *PathTracingIntegrator {
	return &PathTracingIntegrator{
		config: config,
	}
}

// RayColor computes the color for a single camera ray
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, world core.Hitable, random *rand.Rand) core.Vec3 {
	return pt.rayColor(ray, world, 0, random)
}

// rayColor returns the light gathered along ray after depth scatters
func (pt *PathTracingIntegrator) rayColor(ray core.Ray, world core.Hitable, depth int, random *rand.Rand) core.Vec3 {
	hit, isHit := world.Hit(ray, pt.config.TMin, math.Inf(1))
	if !isHit {
		return BackgroundColor(ray)
	}

	if depth >= pt.config.MaxDepth {
		return core.Vec3{}
	}

	scatter, didScatter := hit.Material.Scatter(ray, *hit, random)
	if !didScatter {
		return core.Vec3{}
	}

	return scatter.Attenuation.MultiplyVec(pt.rayColor(scatter.Scattered, world, depth+1, random))
}

// BackgroundColor blends white at the bottom into light blue at the top by
// the vertical component of the ray direction
func BackgroundColor(ray core.Ray) core.Vec3 {
	unitDirection := ray.Direction.Normalize()
	t := 0.5 * (unitDirection.Y + 1.0)
	return skyBottom.Multiply(1.0 - t).Add(skyTop.Multiply(t))
}
