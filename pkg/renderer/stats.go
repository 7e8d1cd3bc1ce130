package renderer

import (
	"fmt"
	"io"
	"time"

	"github.com/olekukonko/tablewriter"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	Width           int           // Image width
	Height          int           // Image height
	SamplesPerPixel int           // Samples taken for every pixel
	TotalPixels     int           // Total number of pixels rendered
	TotalSamples    int           // Total number of samples taken
	Workers         int           // Rows rendered concurrently
	RenderTime      time.Duration // Wall time of the frame
}

// SamplesPerSecond returns the sample throughput of the frame
func (s RenderStats) SamplesPerSecond() float64 {
	if s.RenderTime <= 0 {
		return 0
	}
	return float64(s.TotalSamples) / s.RenderTime.Seconds()
}

// WriteTable renders the statistics as a text table
func (s RenderStats) WriteTable(w io.Writer) {
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Resolution", "Samples/pixel", "Pixels", "Samples", "Workers", "Samples/sec", "Render time"})
	table.Append([]string{
		fmt.Sprintf("%dx%d", s.Width, s.Height),
		fmt.Sprintf("%d", s.SamplesPerPixel),
		fmt.Sprintf("%d", s.TotalPixels),
		fmt.Sprintf("%d", s.TotalSamples),
		fmt.Sprintf("%d", s.Workers),
		fmt.Sprintf("%.0f", s.SamplesPerSecond()),
		s.RenderTime.String(),
	})
	table.Render()
}
