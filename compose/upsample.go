package compose

import (
	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/crtavatar/pixel"
)

// Pixel style names understood by UpsamplerFor.
const (
	StyleClassic   = "classic"
	StyleDotMatrix = "dotmatrix"
)

// dotRadius is the dot radius as a fraction of half the destination cell.
const dotRadius = 0.55

// Upsampler scales the working canvas to a size x size output buffer.
type Upsampler interface {
	Upsample(src *pixel.Buffer, size int) (*pixel.Buffer, error)
}

// UpsamplerFor selects the strategy for a pixel style. Every style other
// than StyleDotMatrix, including unknown names, uses Block.
func UpsamplerFor(style string) Upsampler {
	if style == StyleDotMatrix {
		return DotMatrix{}
	}
	return Block{}
}

// Block replicates each source cell into a block of output pixels using
// nearest-neighbor sampling. When size is an integer multiple of the source
// width every cell becomes an exact k x k block.
type Block struct{}

// Upsample implements Upsampler.
func (Block) Upsample(src *pixel.Buffer, size int) (*pixel.Buffer, error) {
	dst, err := pixel.NewBuffer(size, size)
	if err != nil {
		return nil, err
	}
	if size == src.Width() && size == src.Height() {
		dst.CopyFrom(src)
		return dst, nil
	}
	xdraw.NearestNeighbor.Scale(dst.NRGBA(), dst.Bounds(), src.NRGBA(), src.Bounds(), xdraw.Src, nil)
	return dst, nil
}

// DotMatrix paints each source cell as a filled circle on an opaque black
// field. Fully transparent cells are skipped. The pixel holding a dot's
// center is always painted, so dots survive cells too small for the circle
// to cover any pixel center.
type DotMatrix struct{}

// Upsample implements Upsampler.
func (DotMatrix) Upsample(src *pixel.Buffer, size int) (*pixel.Buffer, error) {
	dst, err := pixel.NewBuffer(size, size)
	if err != nil {
		return nil, err
	}
	dst.Clear(pixel.Black)

	cellW := float64(size) / float64(src.Width())
	cellH := float64(size) / float64(src.Height())
	r := dotRadius * min(cellW, cellH) / 2
	for y := 0; y < src.Height(); y++ {
		for x := 0; x < src.Width(); x++ {
			c := src.GetPixel(x, y)
			if c.A == 0 {
				continue
			}
			cx, cy := (float64(x)+0.5)*cellW, (float64(y)+0.5)*cellH
			dst.FillCircle(cx, cy, r, c)
			dst.SetPixel(int(cx), int(cy), c)
		}
	}
	return dst, nil
}
