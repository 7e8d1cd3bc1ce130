package scene

import (
	"math/rand/v2"

	"github.com/df07/go-weekend-pathtracer/pkg/core"
	"github.com/df07/go-weekend-pathtracer/pkg/geometry"
	"github.com/df07/go-weekend-pathtracer/pkg/material"
	"github.com/df07/go-weekend-pathtracer/pkg/renderer"
)

// frontCameraConfig looks down -Z from the origin with a 90 degree field of
// view, framing the unit spheres placed around (0,0,-1)
func frontCameraConfig(aspectRatio float64) renderer.CameraConfig {
	return renderer.CameraConfig{
		Center:      core.NewVec3(0, 0, 0),
		LookAt:      core.NewVec3(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		AspectRatio: aspectRatio,
		VFov:        90.0,
	}
}

// NewTwoSphereScene creates a diffuse sphere resting on a huge diffuse
// ground sphere
func NewTwoSphereScene(aspectRatio float64, random *rand.Rand) (*Scene, error) {
	camera := renderer.NewCamera(frontCameraConfig(aspectRatio))

	diffuse := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	primitives := []core.Hitable{
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, diffuse),
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, diffuse),
	}

	return Build(primitives, camera, 0, 0, random)
}

// NewDefaultScene creates the material showcase: a diffuse sphere flanked
// by a gold and a silver mirror, a small glass ball in front and the ground
func NewDefaultScene(aspectRatio float64, random *rand.Rand) (*Scene, error) {
	camera := renderer.NewCamera(frontCameraConfig(aspectRatio))

	// Create materials
	lambertianRed := material.NewLambertian(core.NewVec3(0.8, 0.3, 0.3))
	lambertianGround := material.NewLambertian(core.NewVec3(0.8, 0.8, 0.8))
	metalGold := material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.0)
	metalSilver := material.NewMetal(core.NewVec3(0.8, 0.8, 0.8), 0.0)
	materialGlass := material.NewDielectric(1.5)

	primitives := []core.Hitable{
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, lambertianRed),
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, lambertianGround),
		geometry.NewSphere(core.NewVec3(1, 0, -1), 0.5, metalGold),
		geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.5, metalSilver),
		geometry.NewSphere(core.NewVec3(0, -0.3, -0.35), 0.2, materialGlass),
	}

	return Build(primitives, camera, 0, 0, random)
}

// NewCoverScene creates the random cover scene: a checkered ground sphere,
// a 22x22 grid of small spheres with random materials and three large
// feature spheres. Small diffuse spheres bounce upward over the shutter
// interval [0, 1] to show motion blur.
//
// The layout is drawn from random before the BVH is built from the same
// generator, so a seed fully determines the scene.
func NewCoverScene(aspectRatio float64, random *rand.Rand) (*Scene, error) {
	const time0, time1 = 0.0, 1.0

	camera := renderer.NewCamera(renderer.CameraConfig{
		Center:      core.NewVec3(13, 2, 3),
		LookAt:      core.NewVec3(0, 0, 0),
		Up:          core.NewVec3(0, 1, 0),
		AspectRatio: aspectRatio,
		VFov:        20.0,
		Aperture:    0.1,
		Time0:       time0,
		Time1:       time1,
	})

	checker := material.NewChecker(
		material.NewSolidColor(core.NewVec3(0.2, 0.3, 0.1)),
		material.NewSolidColor(core.NewVec3(0.9, 0.9, 0.9)),
	)
	primitives := []core.Hitable{
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, material.NewTexturedLambertian(checker)),
	}

	clearance := core.NewVec3(4, 0.2, 0)
	glass := material.NewDielectric(1.5)
	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			chooseMaterial := random.Float64()
			center := core.NewVec3(float64(a)+0.9*random.Float64(), 0.2, float64(b)+0.9*random.Float64())
			if center.Subtract(clearance).Length() <= 0.9 {
				continue
			}

			switch {
			case chooseMaterial < 0.8:
				albedo := core.NewVec3(
					random.Float64()*random.Float64(),
					random.Float64()*random.Float64(),
					random.Float64()*random.Float64(),
				)
				center1 := center.Add(core.NewVec3(0, 0.5*random.Float64(), 0))
				primitives = append(primitives,
					geometry.NewMovingSphere(center, center1, time0, time1, 0.2, material.NewLambertian(albedo)))
			case chooseMaterial < 0.95:
				albedo := core.NewVec3(
					0.5*(1+random.Float64()),
					0.5*(1+random.Float64()),
					0.5*(1+random.Float64()),
				)
				primitives = append(primitives,
					geometry.NewSphere(center, 0.2, material.NewMetal(albedo, 0.5*random.Float64())))
			default:
				primitives = append(primitives, geometry.NewSphere(center, 0.2, glass))
			}
		}
	}

	primitives = append(primitives,
		geometry.NewSphere(core.NewVec3(0, 1, 0), 1.0, glass),
		geometry.NewSphere(core.NewVec3(-4, 1, 0), 1.0, material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))),
		geometry.NewSphere(core.NewVec3(4, 1, 0), 1.0, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.0)),
	)

	return Build(primitives, camera, time0, time1, random)
}
