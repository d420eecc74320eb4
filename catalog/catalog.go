// Package catalog is the built-in trait content: shape variants for every
// drawable category, the curated palettes and the pixel styles.
//
// Production deployments usually load a much larger catalogue; any content
// registered through a shape.Builder works with the engine. This one keeps
// the module usable on its own and pins the golden test fixtures.
//
// All coordinates target the 32x32 working canvas.
package catalog

import (
	"sync"

	"github.com/gogpu/crtavatar/compose"
	"github.com/gogpu/crtavatar/palette"
	"github.com/gogpu/crtavatar/shape"
)

// Register adds the built-in content to b.
func Register(b *shape.Builder) *shape.Builder {
	b.AddPalettes(palette.Curated())
	for _, v := range backgrounds {
		b.Add(shape.BgPattern, v)
	}
	for _, v := range clothing {
		b.Add(shape.Clothing, v)
	}
	for _, v := range faces {
		b.Add(shape.FaceShape, v)
	}
	for _, v := range eyes {
		b.Add(shape.EyeType, v)
	}
	for _, v := range mouths {
		b.Add(shape.MouthStyle, v)
	}
	for _, v := range hair {
		b.Add(shape.HairStyle, v)
	}
	for _, v := range accessories {
		b.Add(shape.Accessory, v)
	}
	b.Add(shape.PixelStyle, shape.Variant{Name: compose.StyleClassic, Weight: 70})
	b.Add(shape.PixelStyle, shape.Variant{Name: compose.StyleDotMatrix, Weight: 30})
	return b
}

// Load builds a registry from the built-in content.
func Load() (*shape.Registry, error) {
	return Register(shape.NewBuilder()).Build()
}

var defaultRegistry = sync.OnceValue(func() *shape.Registry {
	r, err := Load()
	if err != nil {
		panic(err)
	}
	return r
})

// Default returns the shared built-in registry, building it on first use.
func Default() *shape.Registry {
	return defaultRegistry()
}
