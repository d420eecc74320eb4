package catalog

import (
	"github.com/gogpu/crtavatar/palette"
	"github.com/gogpu/crtavatar/pixel"
	"github.com/gogpu/crtavatar/prng"
	"github.com/gogpu/crtavatar/shape"
)

// highlight lifts the background for pattern lines.
const highlight = -24

var backgrounds = []shape.Variant{
	{Name: "solid", Weight: 40, Draw: func(c *pixel.Buffer, p palette.Resolved, _ *prng.RNG) {
		c.Clear(p.Background)
	}},
	{Name: "stripes", Weight: 20, Draw: func(c *pixel.Buffer, p palette.Resolved, _ *prng.RNG) {
		c.Clear(p.Background)
		line := p.Background.Darken(highlight)
		for y := 1; y < c.Height(); y += 4 {
			c.HLine(0, y, c.Width(), line)
		}
	}},
	{Name: "grid", Weight: 15, Draw: func(c *pixel.Buffer, p palette.Resolved, _ *prng.RNG) {
		c.Clear(p.Background)
		line := p.Background.Darken(highlight)
		for i := 3; i < c.Width(); i += 8 {
			c.HLine(0, i, c.Width(), line)
			c.VLine(i, 0, c.Height(), line)
		}
	}},
	{Name: "dots", Weight: 10, Draw: func(c *pixel.Buffer, p palette.Resolved, _ *prng.RNG) {
		c.Clear(p.Background)
		dot := p.Background.Darken(highlight)
		for y := 1; y < c.Height(); y += 4 {
			for x := 1 + (y/4)%2*2; x < c.Width(); x += 4 {
				c.SetPixel(x, y, dot)
			}
		}
	}},
	{Name: "gradient", Weight: 10, Draw: func(c *pixel.Buffer, p palette.Resolved, _ *prng.RNG) {
		for y := 0; y < c.Height(); y++ {
			c.HLine(0, y, c.Width(), p.Background.Darken(-y))
		}
	}},
	// Star positions come from the generation RNG.
	{Name: "stars", Weight: 5, Draw: func(c *pixel.Buffer, p palette.Resolved, rng *prng.RNG) {
		c.Clear(p.Background)
		n := rng.Int(6, 12)
		for i := 0; i < n; i++ {
			x := rng.Int(0, c.Width()-1)
			y := rng.Int(0, c.Height()-1)
			c.SetPixel(x, y, p.Accent)
		}
	}},
}
