package pixel

import (
	"image/png"
	"io"
	"os"
)

// EncodePNG writes the buffer to w as a PNG image.
func (b *Buffer) EncodePNG(w io.Writer) error {
	return png.Encode(w, b.NRGBA())
}

// SavePNG saves the buffer to a PNG file.
func (b *Buffer) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := b.EncodePNG(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
