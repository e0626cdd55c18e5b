package pipeline

import (
	"context"
	"fmt"
	"image"
	"sync"
	"time"

	"haze-hunter/internal/dehaze"
	"haze-hunter/internal/logger"
	"haze-hunter/internal/metrics"
	"haze-hunter/internal/timing"

	"golang.org/x/sync/errgroup"
)

const component = "Coordinator"

// Stage names, in execution order. The atmospheric light and transmission
// stages run concurrently.
const (
	StageDarkChannel      = "dark_channel"
	StageAtmosphericLight = "atmospheric_light"
	StageTransmission     = "transmission_map"
	StageReconstruct      = "reconstruct"
	StageMetrics          = "metrics"
)

// Result holds every product of a run.
type Result struct {
	Dark         *dehaze.Map
	Atmosphere   dehaze.RGB
	Transmission *dehaze.Map
	Radiance     *dehaze.Grid
	Metrics      metrics.Report
	Timings      []timing.Record
	Total        time.Duration
}

// TransmissionImage is the transmission map broadcast to RGB.
func (r *Result) TransmissionImage() image.Image {
	return r.Transmission.RGB().Image()
}

func (r *Result) RadianceImage() image.Image {
	return r.Radiance.Image()
}

// Coordinator wires the four dehaze stages together. It holds no per-run
// state, so one Coordinator may serve concurrent Runs.
type Coordinator struct {
	params    dehaze.Parameters
	extractor Extractor
	logger    Logger
	tracker   TimingTracker
}

type Option func(*Coordinator)

func WithLogger(l Logger) Option {
	return func(c *Coordinator) { c.logger = l }
}

func WithTracker(t TimingTracker) Option {
	return func(c *Coordinator) { c.tracker = t }
}

func WithExtractor(e Extractor) Option {
	return func(c *Coordinator) { c.extractor = e }
}

// NewCoordinator validates params. Without options it logs nothing, uses
// the native extractor and a private timing tracker.
func NewCoordinator(params dehaze.Parameters, opts ...Option) (*Coordinator, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	c := &Coordinator{
		params:    params,
		extractor: dehaze.DarkChannel,
		logger:    logger.Nop(),
		tracker:   timing.NewTracker(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func (c *Coordinator) Parameters() dehaze.Parameters {
	return c.params
}

// Run dehazes img. ctx is checked between stages; a cancelled run returns
// ctx.Err().
func (c *Coordinator) Run(ctx context.Context, img *dehaze.Grid) (*Result, error) {
	if err := img.Validate(); err != nil {
		c.logger.Error(component, err, nil)
		return nil, fmt.Errorf("input: %w", err)
	}

	start := time.Now()
	c.logger.Debug(component, "run started", map[string]interface{}{
		"width":        img.Width,
		"height":       img.Height,
		"channels":     img.Channels,
		"patch_size":   c.params.PatchSize,
		"omega":        c.params.Omega,
		"t0":           c.params.T0,
		"top_fraction": c.params.TopFraction,
	})

	var (
		result = &Result{}
		mu     sync.Mutex
	)
	record := func(name string, d time.Duration) {
		mu.Lock()
		result.Timings = append(result.Timings, timing.Record{Operation: name, Duration: d})
		mu.Unlock()
	}

	err := c.stage(ctx, StageDarkChannel, record, func() (err error) {
		result.Dark, err = c.extractor(img, c.params.PatchSize)
		return err
	})
	if err != nil {
		return nil, err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return c.stage(gctx, StageAtmosphericLight, record, func() (err error) {
			result.Atmosphere, err = dehaze.EstimateAtmosphericLight(result.Dark, img, c.params.TopFraction)
			return err
		})
	})
	g.Go(func() error {
		return c.stage(gctx, StageTransmission, record, func() (err error) {
			result.Transmission, err = dehaze.BuildTransmission(result.Dark, c.params.Omega)
			return err
		})
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	c.logger.Info(component, "atmospheric light estimated", map[string]interface{}{
		"atmosphere": result.Atmosphere.String(),
	})

	err = c.stage(ctx, StageReconstruct, record, func() (err error) {
		result.Radiance, err = dehaze.Reconstruct(img, result.Atmosphere, result.Transmission, c.params.T0)
		return err
	})
	if err != nil {
		return nil, err
	}

	err = c.stage(ctx, StageMetrics, record, func() (err error) {
		result.Metrics, err = metrics.Compute(img, result.Radiance, result.Transmission)
		return err
	})
	if err != nil {
		return nil, err
	}

	result.Total = time.Since(start)

	fields := result.Metrics.Fields()
	fields["total_ms"] = result.Total.Milliseconds()
	c.logger.Info(component, "run completed", fields)

	return result, nil
}

func (c *Coordinator) stage(ctx context.Context, name string, record func(string, time.Duration), fn func() error) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	tctx := c.tracker.StartTiming(ctx, name)
	err := fn()
	duration := c.tracker.EndTiming(tctx)

	if err != nil {
		c.logger.Error(component, err, map[string]interface{}{"stage": name})
		return fmt.Errorf("%s: %w", name, err)
	}

	record(name, duration)
	c.logger.Debug(component, "stage completed", map[string]interface{}{
		"stage":       name,
		"duration_ms": float64(duration.Microseconds()) / 1000,
	})
	return nil
}
