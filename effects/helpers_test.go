package effects

import (
	"github.com/gogpu/crtavatar/pixel"
	"github.com/gogpu/crtavatar/prng"
)

// Test helper functions shared across effects tests.

// apply runs p on buf with a sequential zero-value Pipeline.
func apply(buf *pixel.Buffer, p *Params, rng *prng.RNG) {
	var pl Pipeline
	pl.Apply(buf, p, rng)
}

// solidBuffer returns a w x h buffer filled with c.
func solidBuffer(w, h int, c pixel.Color) *pixel.Buffer {
	b := pixel.MustBuffer(w, h)
	b.Clear(c)
	return b
}

// randomBuffer returns a w x h opaque buffer of seeded random colors.
func randomBuffer(w, h int, seed int64) *pixel.Buffer {
	b := pixel.MustBuffer(w, h)
	r := prng.New(seed)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			b.SetPixel(x, y, pixel.RGB(uint8(r.Int(0, 255)), uint8(r.Int(0, 255)), uint8(r.Int(0, 255))))
		}
	}
	return b
}

// checkerboard returns a buffer whose cells of size cell alternate a and b.
func checkerboard(w, h, cell int, a, b pixel.Color) *pixel.Buffer {
	buf := pixel.MustBuffer(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if (x/cell+y/cell)%2 == 0 {
				buf.SetPixel(x, y, a)
			} else {
				buf.SetPixel(x, y, b)
			}
		}
	}
	return buf
}

// disabled returns DefaultParams with every stage switched off.
func disabled() *Params {
	p := DefaultParams()
	p.Pixelation.Enabled = false
	p.ColorBleed.Enabled = false
	p.RGBSeparation.Enabled = false
	p.ChromaticAberration.Enabled = false
	p.Scanlines.Enabled = false
	p.PhosphorGlow.Enabled = false
	p.Noise.Enabled = false
	p.Vignette.Enabled = false
	p.Curvature.Enabled = false
	return p
}

// only returns params with just stage s enabled.
func only(s Stage, edit func(p *Params)) *Params {
	p := disabled()
	setEnabled(p, s, true)
	if edit != nil {
		edit(p)
	}
	return p
}

func setEnabled(p *Params, s Stage, on bool) {
	switch s {
	case StagePixelation:
		p.Pixelation.Enabled = on
	case StageColorBleed:
		p.ColorBleed.Enabled = on
	case StageRGBSeparation:
		p.RGBSeparation.Enabled = on
	case StageChromaticAberration:
		p.ChromaticAberration.Enabled = on
	case StageScanlines:
		p.Scanlines.Enabled = on
	case StagePhosphorGlow:
		p.PhosphorGlow.Enabled = on
	case StageNoise:
		p.Noise.Enabled = on
	case StageVignette:
		p.Vignette.Enabled = on
	case StageCurvature:
		p.Curvature.Enabled = on
	}
}
