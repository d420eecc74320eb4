// Package pixel provides the RGBA pixel buffer shared by the compositor and
// the effects pipeline.
//
// A Buffer stores straight (non-premultiplied) 8-bit RGBA samples in a
// contiguous row-major slice, four bytes per pixel, with no row padding.
// Stages read and write Data directly; the accessor methods are bounds
// checked and meant for drawing code and tests.
package pixel

import (
	"bytes"
	"errors"
	"image"
	"image/color"
)

// ErrInvalidDimensions is returned when width or height is non-positive.
var ErrInvalidDimensions = errors.New("pixel: invalid dimensions")

// Buffer is a width x height RGBA pixel buffer.
//
// Thread safety: Buffer is safe for concurrent reads. Writers to disjoint
// rows may run concurrently; anything else requires external synchronization.
type Buffer struct {
	width  int
	height int
	data   []uint8 // RGBA, 4 bytes per pixel
}

// NewBuffer creates a fully transparent buffer with the given dimensions.
func NewBuffer(width, height int) (*Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	return &Buffer{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}, nil
}

// MustBuffer is like NewBuffer but panics on invalid dimensions.
func MustBuffer(width, height int) *Buffer {
	b, err := NewBuffer(width, height)
	if err != nil {
		panic(err)
	}
	return b
}

// Width returns the width of the buffer.
func (b *Buffer) Width() int {
	return b.width
}

// Height returns the height of the buffer.
func (b *Buffer) Height() int {
	return b.height
}

// Data returns the raw pixel data (RGBA format).
func (b *Buffer) Data() []uint8 {
	return b.data
}

// Offset returns the index of pixel (x, y) in Data.
func (b *Buffer) Offset(x, y int) int {
	return (y*b.width + x) * 4
}

// Clone returns a deep copy of the buffer.
func (b *Buffer) Clone() *Buffer {
	data := make([]uint8, len(b.data))
	copy(data, b.data)
	return &Buffer{width: b.width, height: b.height, data: data}
}

// CopyFrom overwrites the pixels of b with those of src.
// Both buffers must have the same dimensions; otherwise nothing is copied.
func (b *Buffer) CopyFrom(src *Buffer) {
	if src.width != b.width || src.height != b.height {
		return
	}
	copy(b.data, src.data)
}

// Equal reports whether both buffers have identical dimensions and bytes.
func (b *Buffer) Equal(other *Buffer) bool {
	if b == nil || other == nil {
		return b == other
	}
	return b.width == other.width && b.height == other.height && bytes.Equal(b.data, other.data)
}

// SetPixel sets the color of a single pixel. Out-of-range coordinates are ignored.
func (b *Buffer) SetPixel(x, y int, c Color) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	i := (y*b.width + x) * 4
	b.data[i+0] = c.R
	b.data[i+1] = c.G
	b.data[i+2] = c.B
	b.data[i+3] = c.A
}

// GetPixel returns the color of a single pixel.
// Out-of-range coordinates return Transparent.
func (b *Buffer) GetPixel(x, y int) Color {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return Transparent
	}
	i := (y*b.width + x) * 4
	return Color{R: b.data[i+0], G: b.data[i+1], B: b.data[i+2], A: b.data[i+3]}
}

// Clear fills the entire buffer with a color.
func (b *Buffer) Clear(c Color) {
	for i := 0; i < len(b.data); i += 4 {
		b.data[i+0] = c.R
		b.data[i+1] = c.G
		b.data[i+2] = c.B
		b.data[i+3] = c.A
	}
}

// NRGBA returns an *image.NRGBA that shares the buffer's pixel memory.
// Writes through the returned image are visible in b and vice versa.
func (b *Buffer) NRGBA() *image.NRGBA {
	return &image.NRGBA{
		Pix:    b.data,
		Stride: b.width * 4,
		Rect:   image.Rect(0, 0, b.width, b.height),
	}
}

// At implements the image.Image interface.
func (b *Buffer) At(x, y int) color.Color {
	return b.GetPixel(x, y).NRGBA()
}

// Bounds implements the image.Image interface.
func (b *Buffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.width, b.height)
}

// ColorModel implements the image.Image interface.
func (b *Buffer) ColorModel() color.Model {
	return color.NRGBAModel
}
