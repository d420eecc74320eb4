package effects

import (
	"math"

	"github.com/gogpu/crtavatar/internal/filter"
	"github.com/gogpu/crtavatar/internal/parallel"
	"github.com/gogpu/crtavatar/prng"
)

// vignetteEdge is the normalized elliptical distance of full darkening.
const vignetteEdge = 1.5

// frame is the RGBA view a stage works on.
type frame struct {
	data []uint8
	w, h int
	pool *parallel.WorkerPool
}

func (f frame) rows(n int, fn func(y0, y1 int)) {
	parallel.Rows(f.pool, n, fn)
}

func (f frame) snapshot() []uint8 {
	src := make([]uint8, len(f.data))
	copy(src, f.data)
	return src
}

func (f frame) offset(x, y int) int {
	return (y*f.w + x) * 4
}

func (f frame) pixelate(block int) {
	if block <= 1 {
		return
	}
	tilesY := (f.h + block - 1) / block
	f.rows(tilesY, func(t0, t1 int) {
		for ty := t0; ty < t1; ty++ {
			y0, y1 := ty*block, min((ty+1)*block, f.h)
			for x0 := 0; x0 < f.w; x0 += block {
				x1 := min(x0+block, f.w)
				f.averageTile(x0, y0, x1, y1)
			}
		}
	})
}

func (f frame) averageTile(x0, y0, x1, y1 int) {
	var sr, sg, sb int
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			i := f.offset(x, y)
			sr += int(f.data[i])
			sg += int(f.data[i+1])
			sb += int(f.data[i+2])
		}
	}
	n := (x1 - x0) * (y1 - y0)
	r, g, b := uint8((sr+n/2)/n), uint8((sg+n/2)/n), uint8((sb+n/2)/n)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			i := f.offset(x, y)
			f.data[i], f.data[i+1], f.data[i+2] = r, g, b
		}
	}
}

func (f frame) colorBleed(amount int) {
	if amount <= 0 {
		return
	}
	stride := f.w * 4
	f.rows(f.h, func(y0, y1 int) {
		filter.BoxBlurH(f.data[y0*stride:y1*stride], f.w, y1-y0, amount, filter.ChannelR|filter.ChannelB)
	})
}

func (f frame) rgbSeparation(off int) {
	if off <= 0 {
		return
	}
	src := f.snapshot()
	last := f.w - 1
	f.rows(f.h, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			for x := 0; x < f.w; x++ {
				i := f.offset(x, y)
				f.data[i] = src[f.offset(clampInt(x+off, 0, last), y)]
				f.data[i+2] = src[f.offset(clampInt(x-off, 0, last), y)+2]
			}
		}
	})
}

func (f frame) chromaticAberration(strength float64) {
	if strength <= 0 {
		return
	}
	src := f.snapshot()
	cx, cy := float64(f.w)/2, float64(f.h)/2
	maxDist := math.Hypot(cx, cy)
	f.rows(f.h, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			dy := float64(y) + 0.5 - cy
			for x := 0; x < f.w; x++ {
				dx := float64(x) + 0.5 - cx
				dist := math.Hypot(dx, dy)
				if dist == 0 {
					continue
				}
				shift := strength * dist / maxDist
				ux, uy := dx/dist*shift, dy/dist*shift
				i := f.offset(x, y)
				f.data[i] = src[f.sampleOffset(float64(x)+ux, float64(y)+uy)]
				f.data[i+2] = src[f.sampleOffset(float64(x)-ux, float64(y)-uy)+2]
			}
		}
	})
}

// sampleOffset rounds (x, y) to the nearest pixel inside the frame.
func (f frame) sampleOffset(x, y float64) int {
	sx := clampInt(int(math.Round(x)), 0, f.w-1)
	sy := clampInt(int(math.Round(y)), 0, f.h-1)
	return f.offset(sx, sy)
}

func (f frame) scanlines(thickness, spacing int, opacity float64) {
	if thickness <= 0 || opacity <= 0 {
		return
	}
	period := thickness + spacing
	factor := 1 - min(opacity, 1)
	f.rows(f.h, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			if y%period >= thickness {
				continue
			}
			f.scaleRow(y, func(int) float64 { return factor })
		}
	})
}

// scaleRow multiplies R, G and B of row y by factor(x).
func (f frame) scaleRow(y int, factor func(x int) float64) {
	for x := 0; x < f.w; x++ {
		k := factor(x)
		i := f.offset(x, y)
		for c := 0; c < 3; c++ {
			f.data[i+c] = clampUint8(math.Round(float64(f.data[i+c]) * k))
		}
	}
}

func (f frame) phosphorGlow(threshold float64, radius int) {
	if radius <= 0 {
		return
	}
	glow := make([]uint8, len(f.data))
	limit := threshold * 255 * 3
	for i := 0; i < len(f.data); i += 4 {
		if float64(int(f.data[i])+int(f.data[i+1])+int(f.data[i+2])) > limit {
			copy(glow[i:i+4], f.data[i:i+4])
		}
	}

	stride := f.w * 4
	f.rows(f.h, func(y0, y1 int) {
		filter.BoxBlurH(glow[y0*stride:y1*stride], f.w, y1-y0, radius, filter.ChannelRGBA)
	})
	filter.BoxBlurV(glow, f.w, f.h, radius, filter.ChannelRGBA)

	f.rows(f.h, func(y0, y1 int) {
		for i := y0 * stride; i < y1*stride; i += 4 {
			for c := 0; c < 3; c++ {
				f.data[i+c] = uint8(min(int(f.data[i+c])+(int(glow[i+c])+1)/2, 255))
			}
		}
	})
}

func (f frame) noise(amount float64, rng *prng.RNG) {
	if amount <= 0 || rng == nil {
		return
	}
	intensity := min(amount, 1) * 255
	for i := 0; i < len(f.data); i += 4 {
		d := int(math.Round((rng.Next() - 0.5) * intensity))
		for c := 0; c < 3; c++ {
			f.data[i+c] = uint8(clampInt(int(f.data[i+c])+d, 0, 255))
		}
	}
}

func (f frame) vignette(strength, radius float64) {
	if strength <= 0 || radius >= vignetteEdge {
		return
	}
	cx, cy := float64(f.w)/2, float64(f.h)/2
	span := vignetteEdge - radius
	f.rows(f.h, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			ny := (float64(y) + 0.5 - cy) / cy
			f.scaleRow(y, func(x int) float64 {
				nx := (float64(x) + 0.5 - cx) / cx
				d := math.Hypot(nx, ny)
				t := clampFloat((d-radius)/span, 0, 1)
				return clampFloat(1-strength*t, 0, 1)
			})
		}
	})
}

func (f frame) curvature(strength float64) {
	if strength == 0 {
		return
	}
	src := f.snapshot()
	cx, cy := float64(f.w)/2, float64(f.h)/2
	f.rows(f.h, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			ny := (float64(y) + 0.5 - cy) / cy
			for x := 0; x < f.w; x++ {
				nx := (float64(x) + 0.5 - cx) / cx
				k := 1 + strength*(nx*nx+ny*ny)
				sx := int(math.Round(cx + nx*k*cx - 0.5))
				sy := int(math.Round(cy + ny*k*cy - 0.5))

				i := f.offset(x, y)
				if sx < 0 || sx >= f.w || sy < 0 || sy >= f.h {
					f.data[i], f.data[i+1], f.data[i+2], f.data[i+3] = 0, 0, 0, 255
					continue
				}
				copy(f.data[i:i+4], src[f.offset(sx, sy):])
			}
		}
	})
}

// clampInt clamps an integer to [lo, hi].
func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// clampUint8 converts a rounded float to a byte, saturating.
func clampUint8(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}
