// Package compose draws resolved traits onto the working canvas and
// upsamples the canvas to the requested output size.
package compose

import (
	"fmt"

	"github.com/gogpu/crtavatar/palette"
	"github.com/gogpu/crtavatar/pixel"
	"github.com/gogpu/crtavatar/prng"
	"github.com/gogpu/crtavatar/shape"
	"github.com/gogpu/crtavatar/traits"
)

// CanvasSize is the width and height of the working canvas in cells.
const CanvasSize = 32

// layers is the fixed z-order, back to front. The neck is drawn between
// clothing and face and is not a trait.
var layers = []shape.Category{
	shape.BgPattern,
	shape.Clothing,
	"", // neck
	shape.FaceShape,
	shape.EyeType,
	shape.MouthStyle,
	shape.HairStyle,
	shape.Accessory,
}

// Compositor draws trait sets using a shape registry.
// It holds no per-call state and is safe for concurrent use.
type Compositor struct {
	reg *shape.Registry
}

// New creates a Compositor backed by reg.
func New(reg *shape.Registry) *Compositor {
	return &Compositor{reg: reg}
}

// Draw paints set onto a fresh CanvasSize x CanvasSize canvas in z-order.
// Variants that draw from rng advance it; unknown variant names draw nothing.
func (c *Compositor) Draw(set traits.Set, p palette.Resolved, rng *prng.RNG) *pixel.Buffer {
	canvas := pixel.MustBuffer(CanvasSize, CanvasSize)
	for _, layer := range layers {
		if layer == "" {
			drawNeck(canvas, p)
			continue
		}
		c.reg.Draw(layer, set.Get(layer), canvas, p, rng)
	}
	return canvas
}

// Render draws set and upsamples it with the strategy selected by
// set.PixelStyle. It returns the final buffer and the working canvas.
func (c *Compositor) Render(set traits.Set, p palette.Resolved, rng *prng.RNG, size int) (final, working *pixel.Buffer, err error) {
	if size <= 0 {
		return nil, nil, fmt.Errorf("compose: size %d: %w", size, pixel.ErrInvalidDimensions)
	}
	working = c.Draw(set, p, rng)
	final, err = UpsamplerFor(set.PixelStyle).Upsample(working, size)
	if err != nil {
		return nil, nil, err
	}
	return final, working, nil
}

// drawNeck paints the fixed neck between face and clothing.
func drawNeck(c *pixel.Buffer, p palette.Resolved) {
	c.FillRect(13, 22, 6, 5, p.Skin)
	c.HLine(13, 22, 6, p.SkinShadow)
}
