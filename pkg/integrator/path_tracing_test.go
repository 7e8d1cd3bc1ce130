package integrator

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/df07/go-weekend-pathtracer/pkg/core"
	"github.com/df07/go-weekend-pathtracer/pkg/geometry"
	"github.com/df07/go-weekend-pathtracer/pkg/material"
)

// countingMaterial wraps a material and records how often it scattered
type countingMaterial struct {
	inner core.Material
	calls int
}

func (c *countingMaterial) Scatter(rayIn core.Ray, hit core.HitRecord, random *rand.Rand) (core.ScatterResult, bool) {
	c.calls++
	return c.inner.Scatter(rayIn, hit, random)
}

// absorber never scatters
type absorber struct{}

func (absorber) Scatter(rayIn core.Ray, hit core.HitRecord, random *rand.Rand) (core.ScatterResult, bool) {
	return core.ScatterResult{}, false
}

func buildWorld(t *testing.T, primitives ...core.Hitable) core.Hitable {
	t.Helper()
	bvh, err := core.NewBVH(primitives, 0, 1, core.NewRandom(1, 2))
	require.NoError(t, err)
	return bvh
}

func TestBackgroundColor(t *testing.T) {
	tests := []struct {
		name      string
		direction core.Vec3
		expected  core.Vec3
	}{
		{"straight up is sky blue", core.NewVec3(0, 1, 0), core.NewVec3(0.5, 0.7, 1.0)},
		{"straight down is white", core.NewVec3(0, -1, 0), core.NewVec3(1, 1, 1)},
		{"horizon is halfway", core.NewVec3(0, 0, -1), core.NewVec3(0.75, 0.85, 1.0)},
		{"unnormalized direction", core.NewVec3(0, 10, 0), core.NewVec3(0.5, 0.7, 1.0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			color := BackgroundColor(core.NewRay(core.NewVec3(0, 0, 0), tt.direction))
			assert.True(t, color.ApproxEquals(tt.expected, 1e-12), "expected %v, got %v", tt.expected, color)
		})
	}
}

func TestPathTracing_MissReturnsBackground(t *testing.T) {
	world := buildWorld(t, geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, absorber{}))
	integrator := NewPathTracingIntegrator(DefaultConfig())

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0))
	color := integrator.RayColor(ray, world, core.NewRandom(1, 1))
	assert.Equal(t, BackgroundColor(ray), color)
}

func TestPathTracing_AbsorptionIsBlack(t *testing.T) {
	world := buildWorld(t, geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, absorber{}))
	integrator := NewPathTracingIntegrator(DefaultConfig())

	color := integrator.RayColor(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1)), world, core.NewRandom(1, 1))
	assert.Equal(t, core.Vec3{}, color)
}

func TestPathTracing_MirrorAttenuatesSky(t *testing.T) {
	albedo := core.NewVec3(0.9, 0.5, 0.2)
	world := buildWorld(t, geometry.NewSphere(core.NewVec3(0, 0, 0), 1, material.NewMetal(albedo, 0)))
	integrator := NewPathTracingIntegrator(DefaultConfig())

	// Reflects straight back along +z, where the sky is halfway between white and blue
	color := integrator.RayColor(core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1)), world, core.NewRandom(1, 1))
	expected := albedo.MultiplyVec(core.NewVec3(0.75, 0.85, 1.0))
	assert.True(t, color.ApproxEquals(expected, 1e-12), "expected %v, got %v", expected, color)
}

func TestPathTracing_AttenuationChain(t *testing.T) {
	// The ray bounces off the top of the floor sphere, then off the left pole
	// of the second sphere, then escapes up and to the left
	floorAlbedo := core.NewVec3(0.5, 1.0, 0.8)
	wallAlbedo := core.NewVec3(1.0, 0.25, 0.5)
	floor := &countingMaterial{inner: material.NewMetal(floorAlbedo, 0)}
	wall := &countingMaterial{inner: material.NewMetal(wallAlbedo, 0)}
	world := buildWorld(t,
		geometry.NewSphere(core.NewVec3(0, -5, 0), 5, floor),
		geometry.NewSphere(core.NewVec3(15, 10, 0), 5, wall),
	)
	integrator := NewPathTracingIntegrator(DefaultConfig())

	color := integrator.RayColor(core.NewRay(core.NewVec3(-10, 10, 0), core.NewVec3(1, -1, 0)), world, core.NewRandom(1, 1))

	sky := BackgroundColor(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(-1, 1, 0)))
	expected := floorAlbedo.MultiplyVec(wallAlbedo).MultiplyVec(sky)
	assert.True(t, color.ApproxEquals(expected, 1e-9), "expected %v, got %v", expected, color)
	assert.Equal(t, 1, floor.calls)
	assert.Equal(t, 1, wall.calls)
}

func TestPathTracing_FacingMirrorsStopAtDepthLimit(t *testing.T) {
	mirror := &countingMaterial{inner: material.NewMetal(core.NewVec3(0.9, 0.9, 0.9), 0)}
	world := buildWorld(t,
		geometry.NewSphere(core.NewVec3(10, 0, 0), 5, mirror),
		geometry.NewSphere(core.NewVec3(-10, 0, 0), 5, mirror),
	)
	integrator := NewPathTracingIntegrator(DefaultConfig())

	color := integrator.RayColor(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0)), world, core.NewRandom(1, 1))

	assert.Equal(t, core.Vec3{}, color)
	assert.Equal(t, DefaultMaxDepth, mirror.calls)
}

func TestPathTracing_MaxDepthZeroNeverScatters(t *testing.T) {
	mirror := &countingMaterial{inner: material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))}
	world := buildWorld(t, geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, mirror))
	integrator := NewPathTracingIntegrator(Config{MaxDepth: 0, TMin: DefaultTMin})

	color := integrator.RayColor(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1)), world, core.NewRandom(1, 1))
	assert.Equal(t, core.Vec3{}, color)
	assert.Zero(t, mirror.calls)
}

func TestPathTracing_DiffuseColorIsBounded(t *testing.T) {
	world := buildWorld(t,
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))),
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))),
	)
	integrator := NewPathTracingIntegrator(DefaultConfig())
	random := core.NewRandom(42, 42)

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	for i := 0; i < 100; i++ {
		color := integrator.RayColor(ray, world, random)
		// One bounce off a 0.5 albedo surface can never exceed half the brightest sky
		assert.LessOrEqual(t, color.X, 0.5)
		assert.LessOrEqual(t, color.Z, 0.5)
		assert.GreaterOrEqual(t, color.X, 0.0)
	}
}
