package crtavatar

import (
	"time"

	"github.com/gogpu/crtavatar/effects"
	"github.com/gogpu/crtavatar/palette"
	"github.com/gogpu/crtavatar/shape"
)

// Option configures a Generator, or a single call of the package-level
// Generate.
//
// Example:
//
//	// Fixed seed, forced hair style
//	res, err := crtavatar.Generate(256,
//	    crtavatar.WithSeed(42),
//	    crtavatar.WithOverrides(map[string]string{"hairStyle": "mohawk"}))
type Option func(*options)

// options holds optional Generator configuration.
type options struct {
	seed      *int64
	overrides map[string]string
	params    *effects.Params
	registry  *shape.Registry
	palettes  []palette.Definition
	workers   int
	cacheTTL  time.Duration
}

// defaultOptions returns the default generator options.
func defaultOptions() options {
	return options{
		params:  nil, // effects.DefaultParams
		workers: 1,
	}
}

// WithSeed sets the seed used when a Request carries none.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.seed = &seed
	}
}

// WithOverrides sets the trait overrides used when a Request carries none.
// Keys are category names ("hairStyle"), values are variant names or
// "random".
func WithOverrides(m map[string]string) Option {
	return func(o *options) {
		o.overrides = m
	}
}

// WithParams replaces the default effect parameters. The document is
// copied; later changes to p do not affect the Generator.
func WithParams(p *effects.Params) Option {
	return func(o *options) {
		if p != nil {
			o.params = p.Clone()
		}
	}
}

// WithRegistry replaces the built-in content catalogue.
func WithRegistry(r *shape.Registry) Option {
	return func(o *options) {
		o.registry = r
	}
}

// WithPalettes replaces the curated palette definitions used to color the
// palette names a registry resolves to.
func WithPalettes(defs []palette.Definition) Option {
	return func(o *options) {
		o.palettes = defs
	}
}

// WithWorkers runs per-row effect stages on n goroutines. The output does
// not depend on n.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithResultCache keeps results of explicitly seeded requests for ttl.
// Unseeded requests are never cached.
func WithResultCache(ttl time.Duration) Option {
	return func(o *options) {
		o.cacheTTL = ttl
	}
}
