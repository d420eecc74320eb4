package catalog

import (
	"github.com/gogpu/crtavatar/palette"
	"github.com/gogpu/crtavatar/pixel"
	"github.com/gogpu/crtavatar/prng"
	"github.com/gogpu/crtavatar/shape"
)

var clothing = []shape.Variant{
	{Name: "tshirt", Weight: 40, Draw: func(c *pixel.Buffer, p palette.Resolved, _ *prng.RNG) {
		c.FillRect(6, 26, 20, 6, p.Accent)
		c.FillRect(14, 26, 4, 1, p.Skin)
	}},
	{Name: "hoodie", Weight: 25, Draw: func(c *pixel.Buffer, p palette.Resolved, _ *prng.RNG) {
		c.FillRect(5, 25, 22, 7, p.Hair)
		c.VLine(14, 27, 3, p.Accent)
		c.VLine(17, 27, 3, p.Accent)
	}},
	{Name: "suit", Weight: 15, Draw: func(c *pixel.Buffer, p palette.Resolved, _ *prng.RNG) {
		c.FillRect(6, 26, 20, 6, p.Hair)
		c.FillRect(14, 26, 4, 6, p.Accent)
		c.VLine(15, 27, 4, p.Mouth)
		c.VLine(16, 27, 4, p.Mouth)
	}},
	{Name: "tank", Weight: 12, Draw: func(c *pixel.Buffer, p palette.Resolved, _ *prng.RNG) {
		c.FillRect(6, 26, 20, 6, p.Skin)
		c.FillRect(9, 26, 14, 6, p.Accent)
	}},
	// Rivet positions come from the generation RNG.
	{Name: "armor", Weight: 8, Draw: func(c *pixel.Buffer, p palette.Resolved, rng *prng.RNG) {
		c.FillRect(5, 25, 22, 7, p.Accent)
		c.HLine(5, 25, 22, p.Eyes)
		for i := 0; i < 4; i++ {
			c.SetPixel(rng.Int(6, 25), rng.Int(27, 31), p.Eyes)
		}
	}},
}

var faces = []shape.Variant{
	{Name: "round", Weight: 35, Draw: func(c *pixel.Buffer, p palette.Resolved, _ *prng.RNG) {
		c.FillEllipse(16.5, 15.5, 7, 8.5, p.SkinShadow)
		c.FillEllipse(16, 15.5, 7, 8.5, p.Skin)
	}},
	{Name: "square", Weight: 30, Draw: func(c *pixel.Buffer, p palette.Resolved, _ *prng.RNG) {
		c.FillRect(9, 7, 14, 16, p.SkinShadow)
		c.FillRect(9, 7, 13, 15, p.Skin)
	}},
	{Name: "oval", Weight: 25, Draw: func(c *pixel.Buffer, p palette.Resolved, _ *prng.RNG) {
		c.FillEllipse(16.5, 15, 6, 9, p.SkinShadow)
		c.FillEllipse(16, 15, 6, 9, p.Skin)
	}},
	{Name: "alien", Weight: 10, Draw: func(c *pixel.Buffer, p palette.Resolved, _ *prng.RNG) {
		c.FillEllipse(16, 12.5, 8.5, 6.5, p.Skin)
		c.FillEllipse(16, 18.5, 4.5, 4.5, p.Skin)
		c.HLine(14, 22, 4, p.SkinShadow)
	}},
}

var eyes = []shape.Variant{
	{Name: "dots", Weight: 35, Draw: func(c *pixel.Buffer, p palette.Resolved, _ *prng.RNG) {
		c.FillRect(12, 13, 2, 2, p.Eyes)
		c.FillRect(18, 13, 2, 2, p.Eyes)
	}},
	{Name: "wide", Weight: 25, Draw: func(c *pixel.Buffer, p palette.Resolved, _ *prng.RNG) {
		for _, x := range []int{11, 17} {
			c.FillRect(x, 12, 4, 3, p.Eyes)
			c.FillRect(x+1, 13, 2, 1, p.Background)
		}
	}},
	{Name: "sleepy", Weight: 20, Draw: func(c *pixel.Buffer, p palette.Resolved, _ *prng.RNG) {
		c.HLine(11, 14, 4, p.Eyes)
		c.HLine(17, 14, 4, p.Eyes)
		c.HLine(11, 13, 4, p.SkinShadow)
		c.HLine(17, 13, 4, p.SkinShadow)
	}},
	{Name: "visor", Weight: 10, Draw: func(c *pixel.Buffer, p palette.Resolved, _ *prng.RNG) {
		c.FillRect(10, 12, 12, 3, p.Accent)
		c.HLine(10, 13, 12, p.Eyes)
	}},
	{Name: "cyclops", Weight: 5, Draw: func(c *pixel.Buffer, p palette.Resolved, _ *prng.RNG) {
		c.FillCircle(16, 13.5, 2.5, p.Eyes)
		c.FillRect(15, 13, 2, 1, p.Background)
	}},
	{Name: "glow", Weight: 5, Draw: func(c *pixel.Buffer, p palette.Resolved, _ *prng.RNG) {
		c.FillRect(11, 12, 4, 4, p.Accent)
		c.FillRect(17, 12, 4, 4, p.Accent)
		c.FillRect(12, 13, 2, 2, p.Eyes)
		c.FillRect(18, 13, 2, 2, p.Eyes)
	}},
}

var mouths = []shape.Variant{
	{Name: "smile", Weight: 35, Draw: func(c *pixel.Buffer, p palette.Resolved, _ *prng.RNG) {
		c.HLine(13, 19, 6, p.Mouth)
		c.SetPixel(12, 18, p.Mouth)
		c.SetPixel(19, 18, p.Mouth)
	}},
	{Name: "flat", Weight: 25, Draw: func(c *pixel.Buffer, p palette.Resolved, _ *prng.RNG) {
		c.HLine(13, 19, 6, p.Mouth)
	}},
	{Name: "open", Weight: 20, Draw: func(c *pixel.Buffer, p palette.Resolved, _ *prng.RNG) {
		c.FillRect(14, 18, 4, 3, p.Mouth)
		c.FillRect(15, 19, 2, 1, p.Background)
	}},
	{Name: "fangs", Weight: 10, Draw: func(c *pixel.Buffer, p palette.Resolved, _ *prng.RNG) {
		c.HLine(12, 19, 8, p.Mouth)
		c.SetPixel(13, 20, p.Accent)
		c.SetPixel(18, 20, p.Accent)
	}},
	{Name: "grin", Weight: 10, Draw: func(c *pixel.Buffer, p palette.Resolved, _ *prng.RNG) {
		c.FillRect(12, 18, 8, 2, p.Mouth)
		c.HLine(13, 18, 6, p.Accent)
	}},
}
