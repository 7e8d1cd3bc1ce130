package material

import (
	"math"

	"github.com/df07/go-weekend-pathtracer/pkg/core"
)

// SolidColor provides a uniform color
type SolidColor struct {
	Color core.Vec3
}

// NewSolidColor creates a new solid color source
func NewSolidColor(color core.Vec3) *SolidColor {
	return &SolidColor{Color: color}
}

// Evaluate returns the solid color regardless of UV or position
func (s *SolidColor) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	return s.Color
}

// Checker alternates between two color sources in a 3D sine pattern,
// selected by the sign of sin(fx)·sin(fy) + sin(fz)
type Checker struct {
	Even, Odd core.ColorSource
	Frequency float64
}

// NewChecker creates a checker pattern with the default frequency of 10
func NewChecker(even, odd core.ColorSource) *Checker {
	return &Checker{Even: even, Odd: odd, Frequency: 10}
}

// Evaluate picks the odd source where the sine pattern is negative
func (c *Checker) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	sines := math.Sin(c.Frequency*point.X)*math.Sin(c.Frequency*point.Y) + math.Sin(c.Frequency*point.Z)
	if sines < 0 {
		return c.Odd.Evaluate(uv, point)
	}
	return c.Even.Evaluate(uv, point)
}
