package catalog

import (
	"github.com/gogpu/crtavatar/palette"
	"github.com/gogpu/crtavatar/pixel"
	"github.com/gogpu/crtavatar/prng"
	"github.com/gogpu/crtavatar/shape"
)

var hair = []shape.Variant{
	{Name: "bald", Weight: 10},
	{Name: "short", Weight: 30, Draw: func(c *pixel.Buffer, p palette.Resolved, _ *prng.RNG) {
		c.FillRect(9, 5, 14, 4, p.Hair)
		c.VLine(9, 9, 3, p.Hair)
		c.VLine(22, 9, 3, p.Hair)
	}},
	{Name: "mohawk", Weight: 15, Draw: func(c *pixel.Buffer, p palette.Resolved, _ *prng.RNG) {
		c.FillRect(14, 1, 4, 8, p.Hair)
	}},
	// Spike heights come from the generation RNG, one draw per spike.
	{Name: "spiky", Weight: 15, Draw: func(c *pixel.Buffer, p palette.Resolved, rng *prng.RNG) {
		c.FillRect(9, 6, 14, 3, p.Hair)
		for x := 9; x < 23; x += 3 {
			h := rng.Int(2, 5)
			c.FillRect(x, 6-h, 2, h, p.Hair)
		}
	}},
	{Name: "long", Weight: 20, Draw: func(c *pixel.Buffer, p palette.Resolved, _ *prng.RNG) {
		c.FillRect(8, 5, 16, 4, p.Hair)
		c.FillRect(7, 8, 3, 16, p.Hair)
		c.FillRect(22, 8, 3, 16, p.Hair)
	}},
	{Name: "afro", Weight: 10, Draw: func(c *pixel.Buffer, p palette.Resolved, _ *prng.RNG) {
		c.FillEllipse(16, 5.5, 11, 6, p.Hair)
	}},
}

var accessories = []shape.Variant{
	{Name: "none", Weight: 50},
	{Name: "glasses", Weight: 15, Draw: func(c *pixel.Buffer, p palette.Resolved, _ *prng.RNG) {
		for _, x := range []int{10, 17} {
			c.HLine(x, 12, 5, p.Accent)
			c.HLine(x, 15, 5, p.Accent)
			c.VLine(x, 12, 4, p.Accent)
			c.VLine(x+4, 12, 4, p.Accent)
		}
		c.HLine(15, 13, 2, p.Accent)
	}},
	{Name: "earring", Weight: 12, Draw: func(c *pixel.Buffer, p palette.Resolved, _ *prng.RNG) {
		c.VLine(8, 18, 2, p.Accent)
	}},
	{Name: "headphones", Weight: 10, Draw: func(c *pixel.Buffer, p palette.Resolved, _ *prng.RNG) {
		c.HLine(8, 4, 16, p.Accent)
		c.VLine(7, 5, 7, p.Accent)
		c.VLine(24, 5, 7, p.Accent)
		c.FillRect(6, 12, 3, 5, p.Accent)
		c.FillRect(23, 12, 3, 5, p.Accent)
	}},
	{Name: "scar", Weight: 10, Draw: func(c *pixel.Buffer, p palette.Resolved, _ *prng.RNG) {
		for i := 0; i < 4; i++ {
			c.SetPixel(19+i, 15+i, p.SkinShadow)
		}
	}},
	{Name: "crown", Weight: 3, Draw: func(c *pixel.Buffer, p palette.Resolved, _ *prng.RNG) {
		c.FillRect(11, 2, 10, 3, p.Accent)
		for _, x := range []int{11, 15, 16, 20} {
			c.SetPixel(x, 1, p.Accent)
		}
		c.SetPixel(15, 3, p.Eyes)
		c.SetPixel(16, 3, p.Eyes)
	}},
}
