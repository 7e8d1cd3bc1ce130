package renderer

import (
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()
	require.NoError(t, config.Validate())

	assert.Equal(t, 100, config.SamplesPerPixel)
	assert.Equal(t, 50, config.MaxDepth)
	assert.Equal(t, 0.01, config.TMin)
	assert.Equal(t, 2.0, config.Gamma)
	assert.Equal(t, runtime.NumCPU(), config.Workers)
	assert.Equal(t, 2.0, config.AspectRatio())
}

func TestParseConfig(t *testing.T) {
	config, err := ParseConfig([]byte(`
width: 400
height: 300
samples_per_pixel: 8
seed: 1234
`))
	require.NoError(t, err)

	assert.Equal(t, 400, config.Width)
	assert.Equal(t, 300, config.Height)
	assert.Equal(t, 8, config.SamplesPerPixel)
	assert.Equal(t, uint64(1234), config.Seed)

	// Missing keys keep their defaults
	assert.Equal(t, 50, config.MaxDepth)
	assert.Equal(t, 0.01, config.TMin)
	assert.Equal(t, 2.0, config.Gamma)
}

func TestParseConfig_Errors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		message string
	}{
		{"malformed", "width: [1, 2", "parsing render config"},
		{"wrong type", "width: wide", "parsing render config"},
		{"zero width", "width: 0", "invalid image size"},
		{"negative height", "height: -4", "invalid image size"},
		{"no samples", "samples_per_pixel: 0", "samples per pixel"},
		{"negative depth", "max_depth: -1", "max depth"},
		{"negative epsilon", "t_min: -0.5", "t_min"},
		{"negative workers", "workers: -2", "workers"},
		{"zero gamma", "gamma: 0", "gamma"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestLoadConfig(t *testing.T) {
	config, err := LoadConfig(strings.NewReader("max_depth: 0\nworkers: 0\n"))
	require.NoError(t, err)

	// Zero depth is allowed and zero workers means one per CPU
	assert.Equal(t, 0, config.MaxDepth)
	assert.Equal(t, runtime.NumCPU(), config.workers())
	assert.Equal(t, 0, config.integratorConfig().MaxDepth)
}
