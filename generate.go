package crtavatar

import (
	"fmt"
	"math/rand/v2"
	"sync/atomic"
	"time"

	"github.com/gogpu/crtavatar/catalog"
	"github.com/gogpu/crtavatar/compose"
	"github.com/gogpu/crtavatar/effects"
	"github.com/gogpu/crtavatar/internal/cache"
	"github.com/gogpu/crtavatar/palette"
	"github.com/gogpu/crtavatar/pixel"
	"github.com/gogpu/crtavatar/prng"
	"github.com/gogpu/crtavatar/shape"
	"github.com/gogpu/crtavatar/traits"
)

// scaledParamsLimit bounds the number of resolutions whose scaled effect
// parameters are memoized.
const scaledParamsLimit = 32

// Request describes one avatar.
type Request struct {
	// Resolution is the output width and height in pixels.
	Resolution int
	// Seed selects the avatar. Nil uses the Generator's default seed, or a
	// random one when there is none.
	Seed *int64
	// Overrides forces variants by category name. Nil uses the Generator's
	// default overrides.
	Overrides map[string]string
}

// Result is a generated avatar.
type Result struct {
	// Image is the final buffer at the requested resolution.
	Image *pixel.Buffer
	// Working is the 32x32 canvas before upsampling and effects.
	Working *pixel.Buffer
	// Traits records everything needed to regenerate Image.
	Traits traits.Set
	// Palette is the resolved color-role mapping.
	Palette palette.Resolved
}

// Clone returns a deep copy of r.
func (r *Result) Clone() *Result {
	c := *r
	c.Image = r.Image.Clone()
	c.Working = r.Working.Clone()
	return &c
}

// Generator produces avatars from one registry and parameter document.
// A Generator is safe for concurrent use.
type Generator struct {
	opts     options
	reg      *shape.Registry
	params   *effects.Params
	comp     *compose.Compositor
	pipeline *effects.Pipeline
	scaled   *cache.Cache[int, *effects.Params]
	results  *resultCache
	closed   atomic.Bool
}

// New creates a Generator. It fails with ErrInvalidParameter when the
// effect parameters or a palette definition do not validate. Registry
// palette names with no matching definition are logged once at Warn; they
// color with the first definition.
func New(opts ...Option) (*Generator, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	g := &Generator{
		opts:   o,
		reg:    o.registry,
		params: o.params,
		scaled: cache.New[int, *effects.Params](scaledParamsLimit),
	}
	if g.reg == nil {
		g.reg = catalog.Default()
	}
	if g.params == nil {
		g.params = effects.DefaultParams()
	}
	if len(g.opts.palettes) == 0 {
		g.opts.palettes = palette.Curated()
	}
	if err := g.params.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidParameter, err)
	}
	for _, def := range g.opts.palettes {
		if err := def.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidParameter, err)
		}
	}
	if missing := g.unmatchedPalettes(); len(missing) > 0 {
		logPaletteFallback(missing, g.opts.palettes[0].Name)
	}

	g.comp = compose.New(g.reg)
	g.pipeline = effects.NewPipeline(
		effects.WithWorkers(o.workers),
		effects.WithStageHook(logStage),
	)
	if o.cacheTTL > 0 {
		g.results = newResultCache(o.cacheTTL)
	}
	return g, nil
}

// Close releases the Generator's workers. Calls already in flight finish
// normally; later calls fail with ErrClosed.
func (g *Generator) Close() {
	if g.closed.CompareAndSwap(false, true) {
		g.pipeline.Close()
		logClosed(g.scaled.Stats())
	}
}

// Generate produces the avatar described by req.
func (g *Generator) Generate(req Request) (*Result, error) {
	if g.closed.Load() {
		return nil, ErrClosed
	}
	if req.Resolution <= 0 {
		return nil, fmt.Errorf("%w: resolution %d must be positive", ErrInvalidParameter, req.Resolution)
	}

	raw := req.Overrides
	if raw == nil {
		raw = g.opts.overrides
	}
	overrides, err := traits.ParseOverrides(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidParameter, err)
	}
	if err := overrides.Validate(g.reg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidParameter, err)
	}

	seed, seeded := g.seedFor(req)
	key := ""
	if seeded && g.results != nil {
		key = resultKey(seed, req.Resolution, overrides)
		if r, unknown, ok := g.results.get(key); ok {
			g.reportUnknown(r.Traits, unknown)
			return r, nil
		}
	}

	r, unknown, err := g.render(seed, req.Resolution, overrides)
	if err != nil {
		return nil, err
	}
	g.reportUnknown(r.Traits, unknown)
	if key != "" {
		g.results.put(key, r, unknown)
	}
	return r, nil
}

func (g *Generator) reportUnknown(set traits.Set, unknown []shape.Category) {
	for _, c := range unknown {
		logUnknownOverride(c, set.Get(c))
	}
}

// seedFor returns the request's seed and whether it was chosen by the caller.
func (g *Generator) seedFor(req Request) (uint32, bool) {
	switch {
	case req.Seed != nil:
		return prng.Seed(*req.Seed), true
	case g.opts.seed != nil:
		return prng.Seed(*g.opts.seed), true
	}
	return rand.Uint32(), false
}

func (g *Generator) render(seed uint32, size int, overrides traits.Overrides) (*Result, []shape.Category, error) {
	start := time.Now()
	rng := prng.New(int64(seed))

	resolution := traits.Resolve(g.reg, seed, overrides, rng)
	set := resolution.Set

	colors := palette.Resolve(g.paletteFor(set.Palette), rng)

	final, working, err := g.comp.Render(set, colors, rng, size)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrInvalidParameter, err)
	}

	params := g.scaled.GetOrCreate(size, func() *effects.Params {
		return effects.Scale(g.params, size)
	})
	g.pipeline.Apply(final, params, rng)

	logGenerated(set, size, time.Since(start))

	return &Result{
		Image:   final,
		Working: working,
		Traits:  set,
		Palette: colors,
	}, resolution.Unknown, nil
}

// paletteFor returns the definition named name, or the first definition
// when the name is not known. New has already reported registry names
// without a definition; unknown overrides are reported per request.
func (g *Generator) paletteFor(name string) palette.Definition {
	for _, def := range g.opts.palettes {
		if def.Name == name {
			return def
		}
	}
	return g.opts.palettes[0]
}

// unmatchedPalettes lists registry palette names with no definition.
func (g *Generator) unmatchedPalettes() []string {
	var missing []string
	for _, item := range g.reg.Get(shape.Palette) {
		found := false
		for _, def := range g.opts.palettes {
			if def.Name == item.Value {
				found = true
				break
			}
		}
		if !found {
			missing = append(missing, item.Value)
		}
	}
	return missing
}

// Generate produces one avatar at res x res pixels with a throwaway
// Generator. WithSeed and WithOverrides select the avatar.
func Generate(res int, opts ...Option) (*Result, error) {
	g, err := New(opts...)
	if err != nil {
		return nil, err
	}
	defer g.Close()
	return g.Generate(Request{Resolution: res})
}
