package core

import "github.com/pkg/errors"

var (
	// ErrNoBoundingBox is returned when a primitive handed to the BVH builder
	// cannot report a bounding box.
	ErrNoBoundingBox = errors.New("no bounding box")

	// ErrEmptyPrimitives is returned when the BVH builder receives no primitives.
	ErrEmptyPrimitives = errors.New("empty primitive list")
)
