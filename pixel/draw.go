package pixel

// FillRect fills the w x h rectangle whose top-left corner is (x, y).
// The rectangle is clipped to the buffer.
func (b *Buffer) FillRect(x, y, w, h int, c Color) {
	x0, y0 := max(x, 0), max(y, 0)
	x1, y1 := min(x+w, b.width), min(y+h, b.height)
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			i := (py*b.width + px) * 4
			b.data[i+0] = c.R
			b.data[i+1] = c.G
			b.data[i+2] = c.B
			b.data[i+3] = c.A
		}
	}
}

// HLine draws a horizontal run of w pixels starting at (x, y).
func (b *Buffer) HLine(x, y, w int, c Color) {
	b.FillRect(x, y, w, 1, c)
}

// VLine draws a vertical run of h pixels starting at (x, y).
func (b *Buffer) VLine(x, y, h int, c Color) {
	b.FillRect(x, y, 1, h, c)
}

// FillCircle fills every pixel whose center lies within radius r of
// (cx, cy). Coordinates are in pixel units, so the center of pixel (x, y)
// is (x+0.5, y+0.5).
func (b *Buffer) FillCircle(cx, cy, r float64, c Color) {
	if r <= 0 {
		return
	}
	x0 := max(int(cx-r), 0)
	y0 := max(int(cy-r), 0)
	x1 := min(int(cx+r)+1, b.width)
	y1 := min(int(cy+r)+1, b.height)
	r2 := r * r
	for py := y0; py < y1; py++ {
		dy := float64(py) + 0.5 - cy
		for px := x0; px < x1; px++ {
			dx := float64(px) + 0.5 - cx
			if dx*dx+dy*dy <= r2 {
				i := (py*b.width + px) * 4
				b.data[i+0] = c.R
				b.data[i+1] = c.G
				b.data[i+2] = c.B
				b.data[i+3] = c.A
			}
		}
	}
}

// FillEllipse fills every pixel whose center lies inside the axis-aligned
// ellipse centered at (cx, cy) with radii rx and ry.
func (b *Buffer) FillEllipse(cx, cy, rx, ry float64, c Color) {
	if rx <= 0 || ry <= 0 {
		return
	}
	x0 := max(int(cx-rx), 0)
	y0 := max(int(cy-ry), 0)
	x1 := min(int(cx+rx)+1, b.width)
	y1 := min(int(cy+ry)+1, b.height)
	for py := y0; py < y1; py++ {
		ny := (float64(py) + 0.5 - cy) / ry
		for px := x0; px < x1; px++ {
			nx := (float64(px) + 0.5 - cx) / rx
			if nx*nx+ny*ny <= 1 {
				b.SetPixel(px, py, c)
			}
		}
	}
}
