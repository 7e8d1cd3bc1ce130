package renderer

import (
	"math"
	"math/rand/v2"

	"github.com/df07/go-weekend-pathtracer/pkg/core"
)

// CameraConfig contains all parameters needed to create a camera
type CameraConfig struct {
	Center        core.Vec3 // Camera position (look-from)
	LookAt        core.Vec3 // Point the camera is looking at
	Up            core.Vec3 // Up direction, usually (0,1,0)
	AspectRatio   float64   // Width / height
	VFov          float64   // Vertical field of view in degrees
	Aperture      float64   // Lens diameter, 0 for a pinhole camera
	FocusDistance float64   // Distance to the focal plane, 0 to focus on LookAt
	Time0, Time1  float64   // Shutter open and close times
}

// Camera generates rays through a thin lens for depth of field and samples
// a ray time inside the shutter interval for motion blur
type Camera struct {
	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
	u, v, w         core.Vec3
	lensRadius      float64
	time0, time1    float64
}

// NewCamera creates a camera from the given configuration
func NewCamera(config CameraConfig) *Camera {
	focusDistance := config.FocusDistance
	if focusDistance <= 0 {
		focusDistance = config.Center.Subtract(config.LookAt).Length()
	}

	theta := config.VFov * math.Pi / 180
	halfHeight := math.Tan(theta / 2)
	halfWidth := config.AspectRatio * halfHeight

	// Orthonormal basis: w points backwards, u right, v up
	w := config.Center.Subtract(config.LookAt).Normalize()
	u := config.Up.Cross(w).Normalize()
	v := w.Cross(u)

	horizontal := u.Multiply(2 * halfWidth * focusDistance)
	vertical := v.Multiply(2 * halfHeight * focusDistance)
	lowerLeftCorner := config.Center.
		Subtract(u.Multiply(halfWidth * focusDistance)).
		Subtract(v.Multiply(halfHeight * focusDistance)).
		Subtract(w.Multiply(focusDistance))

	return &Camera{
		origin:          config.Center,
		lowerLeftCorner: lowerLeftCorner,
		horizontal:      horizontal,
		vertical:        vertical,
		u:               u,
		v:               v,
		w:               w,
		lensRadius:      config.Aperture / 2,
		time0:           config.Time0,
		time1:           config.Time1,
	}
}

// GetRay generates a ray for screen coordinates (s, t) where 0 <= s,t <= 1,
// s running left to right and t bottom to top
func (c *Camera) GetRay(s, t float64, random *rand.Rand) core.Ray {
	origin := c.origin
	if c.lensRadius > 0 {
		rd := core.RandomInUnitDisk(random).Multiply(c.lensRadius)
		origin = origin.Add(c.u.Multiply(rd.X)).Add(c.v.Multiply(rd.Y))
	}

	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t)).
		Subtract(origin)

	time := c.time0 + random.Float64()*(c.time1-c.time0)
	return core.NewRayAt(origin, direction, time)
}

// GetCameraForward returns the direction the camera is facing
func (c *Camera) GetCameraForward() core.Vec3 {
	return c.w.Negate()
}
