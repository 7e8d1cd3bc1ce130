package renderer

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRenderStats_SamplesPerSecond(t *testing.T) {
	stats := RenderStats{TotalSamples: 1000, RenderTime: 2 * time.Second}
	assert.InDelta(t, 500.0, stats.SamplesPerSecond(), 1e-9)

	assert.Equal(t, 0.0, RenderStats{TotalSamples: 10}.SamplesPerSecond())
}

func TestRenderStats_WriteTable(t *testing.T) {
	stats := RenderStats{
		Width:           200,
		Height:          100,
		SamplesPerPixel: 4,
		TotalPixels:     20000,
		TotalSamples:    80000,
		Workers:         8,
		RenderTime:      4 * time.Second,
	}

	var buf bytes.Buffer
	stats.WriteTable(&buf)
	table := buf.String()

	for _, expected := range []string{"Resolution", "Render time", "200x100", "80000", "20000", "4s"} {
		assert.Contains(t, table, expected)
	}
}
