package renderer

import (
	"io"
	"runtime"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	"github.com/df07/go-weekend-pathtracer/pkg/integrator"
)

// Config contains rendering configuration
type Config struct {
	Width           int     `yaml:"width"`             // Image width in pixels
	Height          int     `yaml:"height"`            // Image height in pixels
	SamplesPerPixel int     `yaml:"samples_per_pixel"` // Number of rays per pixel
	MaxDepth        int     `yaml:"max_depth"`         // Maximum ray bounce depth
	TMin            float64 `yaml:"t_min"`             // Self-intersection epsilon
	Workers         int     `yaml:"workers"`           // Parallelism, 0 for one per CPU
	Seed            uint64  `yaml:"seed"`              // Base seed for all sample generators
	Gamma           float64 `yaml:"gamma"`             // Output gamma
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		Width:           200,
		Height:          100,
		SamplesPerPixel: 100,
		MaxDepth:        integrator.DefaultMaxDepth,
		TMin:            integrator.DefaultTMin,
		Workers:         runtime.NumCPU(),
		Seed:            42,
		Gamma:           2.0,
	}
}

// ParseConfig decodes a YAML document on top of the defaults and validates
// the result. Keys missing from the document keep their default value.
func ParseConfig(data []byte) (Config, error) {
	config := DefaultConfig()
	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, errors.Wrap(err, "parsing render config")
	}
	if err := config.Validate(); err != nil {
		return Config{}, err
	}
	return config, nil
}

// LoadConfig reads a YAML document from r, see ParseConfig
func LoadConfig(r io.Reader) (Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Config{}, errors.Wrap(err, "reading render config")
	}
	return ParseConfig(data)
}

// Validate reports the first invalid setting
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return errors.Errorf("invalid image size %dx%d", c.Width, c.Height)
	case c.SamplesPerPixel <= 0:
		return errors.Errorf("samples per pixel must be positive, got %d", c.SamplesPerPixel)
	case c.MaxDepth < 0:
		return errors.Errorf("max depth must not be negative, got %d", c.MaxDepth)
	case c.TMin < 0:
		return errors.Errorf("t_min must not be negative, got %g", c.TMin)
	case c.Workers < 0:
		return errors.Errorf("workers must not be negative, got %d", c.Workers)
	case c.Gamma <= 0:
		return errors.Errorf("gamma must be positive, got %g", c.Gamma)
	}
	return nil
}

// AspectRatio returns width / height
func (c Config) AspectRatio() float64 {
	return float64(c.Width) / float64(c.Height)
}

func (c Config) integratorConfig() integrator.Config {
	return integrator.Config{
		MaxDepth: c.MaxDepth,
		TMin:     c.TMin,
	}
}

func (c Config) workers() int {
	if c.Workers <= 0 {
		return runtime.NumCPU()
	}
	return c.Workers
}
