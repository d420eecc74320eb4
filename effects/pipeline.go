package effects

import (
	"time"

	"github.com/gogpu/crtavatar/internal/parallel"
	"github.com/gogpu/crtavatar/pixel"
	"github.com/gogpu/crtavatar/prng"
)

// Stage names one pipeline step.
type Stage string

// Pipeline stages.
const (
	StagePixelation          Stage = "pixelation"
	StageColorBleed          Stage = "colorBleed"
	StageRGBSeparation       Stage = "rgbSeparation"
	StageChromaticAberration Stage = "chromaticAberration"
	StageScanlines           Stage = "scanlines"
	StagePhosphorGlow        Stage = "phosphorGlow"
	StageNoise               Stage = "noise"
	StageVignette            Stage = "vignette"
	StageCurvature           Stage = "curvature"
)

// Stages lists every stage in execution order. The order is fixed and does
// not depend on which stages are enabled.
var Stages = []Stage{
	StagePixelation,
	StageColorBleed,
	StageRGBSeparation,
	StageChromaticAberration,
	StageScanlines,
	StagePhosphorGlow,
	StageNoise,
	StageVignette,
	StageCurvature,
}

// Enabled reports whether stage s is switched on in p.
func (p *Params) Enabled(s Stage) bool {
	switch s {
	case StagePixelation:
		return p.Pixelation.Enabled
	case StageColorBleed:
		return p.ColorBleed.Enabled
	case StageRGBSeparation:
		return p.RGBSeparation.Enabled
	case StageChromaticAberration:
		return p.ChromaticAberration.Enabled
	case StageScanlines:
		return p.Scanlines.Enabled
	case StagePhosphorGlow:
		return p.PhosphorGlow.Enabled
	case StageNoise:
		return p.Noise.Enabled
	case StageVignette:
		return p.Vignette.Enabled
	case StageCurvature:
		return p.Curvature.Enabled
	}
	return false
}

// StageHook observes each executed stage and its duration.
type StageHook func(s Stage, elapsed time.Duration)

// PipelineOption configures a Pipeline.
type PipelineOption func(*Pipeline)

// WithWorkers splits per-row stages across n goroutines. n <= 1 keeps the
// pipeline on the calling goroutine.
func WithWorkers(n int) PipelineOption {
	return func(pl *Pipeline) {
		if n > 1 {
			pl.pool = parallel.NewWorkerPool(n)
		}
	}
}

// WithStageHook installs a hook called after every executed stage.
func WithStageHook(h StageHook) PipelineOption {
	return func(pl *Pipeline) {
		pl.hook = h
	}
}

// Pipeline applies the effect stages to a buffer. The zero value is a
// ready-to-use sequential pipeline. A Pipeline is safe for concurrent use;
// each Apply call works only on its own buffer and RNG.
type Pipeline struct {
	pool *parallel.WorkerPool
	hook StageHook
}

// NewPipeline creates a pipeline with the given options.
func NewPipeline(opts ...PipelineOption) *Pipeline {
	pl := &Pipeline{}
	for _, opt := range opts {
		opt(pl)
	}
	return pl
}

// Close stops the pipeline's workers, if any. Apply keeps working after
// Close, sequentially.
func (pl *Pipeline) Close() {
	if pl.pool != nil {
		pl.pool.Close()
	}
}

// Apply runs every enabled stage on buf in place. rng is consumed only by
// the noise stage, one draw per pixel in row-major order.
func (pl *Pipeline) Apply(buf *pixel.Buffer, p *Params, rng *prng.RNG) {
	for _, s := range Stages {
		if !p.Enabled(s) {
			continue
		}
		start := time.Now()
		pl.run(s, buf, p, rng)
		if pl.hook != nil {
			pl.hook(s, time.Since(start))
		}
	}
}

func (pl *Pipeline) run(s Stage, buf *pixel.Buffer, p *Params, rng *prng.RNG) {
	f := frame{data: buf.Data(), w: buf.Width(), h: buf.Height(), pool: pl.pool}
	switch s {
	case StagePixelation:
		f.pixelate(p.Pixelation.BlockSize)
	case StageColorBleed:
		f.colorBleed(p.ColorBleed.Amount)
	case StageRGBSeparation:
		f.rgbSeparation(p.RGBSeparation.Offset)
	case StageChromaticAberration:
		f.chromaticAberration(float64(p.ChromaticAberration.Strength))
	case StageScanlines:
		f.scanlines(p.Scanlines.Thickness, p.Scanlines.Spacing, p.Scanlines.Opacity)
	case StagePhosphorGlow:
		f.phosphorGlow(p.PhosphorGlow.Threshold, p.PhosphorGlow.Radius)
	case StageNoise:
		f.noise(p.Noise.Amount, rng)
	case StageVignette:
		f.vignette(p.Vignette.Strength, p.Vignette.Radius)
	case StageCurvature:
		f.curvature(p.Curvature.Strength)
	}
}
