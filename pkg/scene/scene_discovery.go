package scene

import (
	"math/rand/v2"
	"sort"

	"github.com/pkg/errors"
)

// ErrUnknownScene is returned when no built-in scene has the requested id
var ErrUnknownScene = errors.New("unknown scene")

// SceneInfo represents a built-in scene with its metadata
type SceneInfo struct {
	ID          string `yaml:"id"`          // Unique identifier
	Name        string `yaml:"name"`        // Display name
	Description string `yaml:"description"` // Optional description
}

// Factory builds a scene for the given image aspect ratio
type Factory func(aspectRatio float64, random *rand.Rand) (*Scene, error)

type builtInScene struct {
	info    SceneInfo
	factory Factory
}

var builtInScenes = []builtInScene{
	{
		info: SceneInfo{
			ID:          "two-spheres",
			Name:        "Two Spheres",
			Description: "Diffuse sphere resting on a diffuse ground sphere",
		},
		factory: NewTwoSphereScene,
	},
	{
		info: SceneInfo{
			ID:          "basic",
			Name:        "Default Scene",
			Description: "Diffuse, metal and glass spheres on a diffuse ground",
		},
		factory: NewDefaultScene,
	},
	{
		info: SceneInfo{
			ID:          "cover",
			Name:        "Random Cover Scene",
			Description: "Grid of random small spheres with motion blur and three large spheres",
		},
		factory: NewCoverScene,
	},
}

// ListScenes returns the built-in scenes sorted by display name
func ListScenes() []SceneInfo {
	scenes := make([]SceneInfo, 0, len(builtInScenes))
	for _, s := range builtInScenes {
		scenes = append(scenes, s.info)
	}

	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].Name < scenes[j].Name
	})
	return scenes
}

// NewByID builds the built-in scene with the given id
func NewByID(id string, aspectRatio float64, random *rand.Rand) (*Scene, error) {
	for _, s := range builtInScenes {
		if s.info.ID == id {
			sc, err := s.factory(aspectRatio, random)
			if err != nil {
				return nil, errors.Wrapf(err, "building scene %q", id)
			}
			return sc, nil
		}
	}
	return nil, errors.Wrapf(ErrUnknownScene, "%q", id)
}
