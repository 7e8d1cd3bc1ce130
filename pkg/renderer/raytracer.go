package renderer

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/df07/go-weekend-pathtracer/pkg/core"
	"github.com/df07/go-weekend-pathtracer/pkg/integrator"
	"github.com/df07/go-weekend-pathtracer/pkg/log"
)

var logger = log.New("raytracer")

// Scene interface to avoid circular imports
type Scene interface {
	core.Hitable
	GetCamera() core.Camera
}

// Raytracer turns a scene into per-pixel color estimates
type Raytracer struct {
	scene      Scene
	integrator integrator.Integrator
	config     Config
	metrics    *Metrics
}

// NewRaytracer creates a raytracer using the recursive path tracer
func NewRaytracer(scene Scene, config Config) (*Raytracer, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &Raytracer{
		scene:      scene,
		integrator: integrator.NewPathTracingIntegrator(config.integratorConfig()),
		config:     config,
	}, nil
}

// SetMetrics attaches collectors updated as pixels complete
func (rt *Raytracer) SetMetrics(metrics *Metrics) {
	rt.metrics = metrics
}

// SetIntegrator replaces the light transport estimator
func (rt *Raytracer) SetIntegrator(estimator integrator.Integrator) {
	rt.integrator = estimator
}

// sampleRandom returns the generator owned by one sample of one pixel.
// Streams depend only on the seed, the pixel and the sample index, never on
// scheduling, so any evaluation order produces the same estimate.
func (rt *Raytracer) sampleRandom(i, j, sample int) *rand.Rand {
	pixel := uint64(j)*uint64(rt.config.Width) + uint64(i)
	return core.NewRandom(mix64(rt.config.Seed), mix64(pixel<<32|uint64(uint32(sample))))
}

// mix64 is the splitmix64 finalizer, spreading nearby inputs over the full range
func mix64(x uint64) uint64 {
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}

// traceSample traces one jittered camera ray through pixel (i, j), where j
// counts rows from the bottom of the image
func (rt *Raytracer) traceSample(i, j, sample int) core.Vec3 {
	random := rt.sampleRandom(i, j, sample)
	s := (float64(i) + random.Float64()) / float64(rt.config.Width)
	t := (float64(j) + random.Float64()) / float64(rt.config.Height)

	ray := rt.scene.GetCamera().GetRay(s, t, random)
	return rt.integrator.RayColor(ray, rt.scene, random)
}

// resolve averages the sample colors in index order and gamma corrects
func (rt *Raytracer) resolve(samples []core.Vec3) core.Vec3 {
	var sum core.Vec3
	for _, c := range samples {
		sum = sum.Add(c)
	}
	rt.metrics.observePixel(len(samples))
	return sum.Divide(float64(len(samples))).GammaCorrect(rt.config.Gamma)
}

// SamplePixel estimates the gamma-corrected color of pixel (i, j), tracing
// its samples concurrently. Rows count from the bottom of the image.
func (rt *Raytracer) SamplePixel(ctx context.Context, i, j int) (core.Vec3, error) {
	samples := make([]core.Vec3, rt.config.SamplesPerPixel)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(rt.config.workers())
	for s := range samples {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			samples[s] = rt.traceSample(i, j, s)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return core.Vec3{}, errors.Wrapf(err, "sampling pixel (%d, %d)", i, j)
	}

	return rt.resolve(samples), nil
}

// SamplePixelSequential is SamplePixel on the calling goroutine. Both
// produce bitwise identical results.
func (rt *Raytracer) SamplePixelSequential(i, j int) core.Vec3 {
	samples := make([]core.Vec3, rt.config.SamplesPerPixel)
	for s := range samples {
		samples[s] = rt.traceSample(i, j, s)
	}
	return rt.resolve(samples)
}

// Render estimates every pixel and returns the colors in row-major order,
// top row first. Rows are rendered concurrently; cancelling ctx stops the
// render before the next row starts.
func (rt *Raytracer) Render(ctx context.Context) ([]core.Vec3, RenderStats, error) {
	width, height := rt.config.Width, rt.config.Height
	workers := rt.config.workers()
	pixels := make([]core.Vec3, width*height)

	logger.Noticef("rendering %dx%d at %d samples per pixel on %d workers",
		width, height, rt.config.SamplesPerPixel, workers)
	start := time.Now()

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for row := 0; row < height; row++ {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			j := height - 1 - row
			for i := 0; i < width; i++ {
				pixels[row*width+i] = rt.SamplePixelSequential(i, j)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, RenderStats{}, errors.Wrap(err, "render aborted")
	}

	elapsed := time.Since(start)
	rt.metrics.observeRender(elapsed)

	stats := RenderStats{
		Width:           width,
		Height:          height,
		SamplesPerPixel: rt.config.SamplesPerPixel,
		TotalPixels:     width * height,
		TotalSamples:    width * height * rt.config.SamplesPerPixel,
		Workers:         workers,
		RenderTime:      elapsed,
	}
	logger.Noticef("render finished in %s", elapsed)
	return pixels, stats, nil
}
