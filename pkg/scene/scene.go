package scene

import (
	"bytes"
	"fmt"
	"math/rand/v2"

	"github.com/olekukonko/tablewriter"

	"github.com/df07/go-weekend-pathtracer/pkg/core"
	"github.com/df07/go-weekend-pathtracer/pkg/log"
)

var logger = log.New("scene")

// Scene contains all the elements needed for rendering
type Scene struct {
	Camera       core.Camera
	Primitives   []core.Hitable // Objects in the scene, in authoring order
	BVH          *core.BVH      // Acceleration structure for ray-object intersection
	Time0, Time1 float64        // Shutter interval the BVH boxes cover
}

// Build creates a scene over primitives, constructing the BVH for rays with
// times in [time0, time1]. It fails if primitives is empty or any primitive
// cannot report a bounding box.
func Build(primitives []core.Hitable, camera core.Camera, time0, time1 float64, random *rand.Rand) (*Scene, error) {
	bvh, err := core.NewBVH(primitives, time0, time1, random)
	if err != nil {
		return nil, err
	}

	s := &Scene{
		Camera:     camera,
		Primitives: primitives,
		BVH:        bvh,
		Time0:      time0,
		Time1:      time1,
	}
	logger.Infof("built scene with %d primitives", s.GetPrimitiveCount())
	return s, nil
}

// Hit returns the closest intersection in the scene
func (s *Scene) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	return s.BVH.Hit(ray, tMin, tMax)
}

// BoundingBox returns the box around the whole scene
func (s *Scene) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return s.BVH.BoundingBox(time0, time1)
}

// GetCamera returns the scene camera
func (s *Scene) GetCamera() core.Camera {
	return s.Camera
}

// GetPrimitiveCount returns the total number of primitive objects in the scene
func (s *Scene) GetPrimitiveCount() int {
	return len(s.Primitives)
}

// Stats builds a tabular representation of the acceleration structure
func (s *Scene) Stats() string {
	stats := s.BVH.Stats()

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"Primitives", "Nodes", "Leaves", "Max depth", "Shutter"})
	table.Append([]string{
		fmt.Sprintf("%d", stats.Primitives),
		fmt.Sprintf("%d", stats.Nodes),
		fmt.Sprintf("%d", stats.Leaves),
		fmt.Sprintf("%d", stats.MaxDepth),
		fmt.Sprintf("[%g, %g]", s.Time0, s.Time1),
	})
	table.Render()
	return buf.String()
}
