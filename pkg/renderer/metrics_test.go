package renderer

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/df07/go-weekend-pathtracer/pkg/core"
)

func TestMetrics_RegisteredNames(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := NewMetrics(registry)
	m.observePixel(1)
	m.observeRender(time.Second)

	families, err := registry.Gather()
	require.NoError(t, err)

	var names []string
	for _, family := range families {
		names = append(names, family.GetName())
	}
	assert.ElementsMatch(t, []string{
		"pathtracer_samples_total",
		"pathtracer_pixels_total",
		"pathtracer_render_duration_seconds",
	}, names)
}

func TestMetrics_CountRender(t *testing.T) {
	scene := MockScene{camera: verticalCamera{}, world: core.HitableList{}}
	config := smallConfig()

	rt, err := NewRaytracer(scene, config)
	require.NoError(t, err)
	m := NewMetrics(prometheus.NewRegistry())
	rt.SetMetrics(m)

	_, _, err = rt.Render(context.Background())
	require.NoError(t, err)

	pixels := float64(config.Width * config.Height)
	assert.Equal(t, pixels, testutil.ToFloat64(m.Pixels))
	assert.Equal(t, pixels*float64(config.SamplesPerPixel), testutil.ToFloat64(m.Samples))
	assert.Equal(t, 1, testutil.CollectAndCount(m.RenderDuration))
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.observePixel(10)
		m.observeRender(time.Millisecond)
	})
}
