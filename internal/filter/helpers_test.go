package filter

// Test helper functions shared across filter tests.

// solid returns a w x h RGBA slice filled with one color.
func solid(w, h int, r, g, b, a uint8) []uint8 {
	data := make([]uint8, w*h*4)
	for i := 0; i < len(data); i += 4 {
		data[i], data[i+1], data[i+2], data[i+3] = r, g, b, a
	}
	return data
}

// at returns the four channel bytes of pixel (x, y).
func at(data []uint8, w, x, y int) [4]uint8 {
	i := (y*w + x) * 4
	return [4]uint8{data[i], data[i+1], data[i+2], data[i+3]}
}

// naiveBox computes the clamp-to-edge box average of one channel directly.
func naiveBox(line []uint8, i, r int) uint8 {
	size := 2*r + 1
	sum := 0
	for k := i - r; k <= i+r; k++ {
		sum += int(line[clampIndex(k, len(line)-1)])
	}
	return uint8((sum + size/2) / size)
}

// blur runs a horizontal then a vertical pass, as the glow stage does.
func blur(data []uint8, w, h, r int, ch Channels) {
	BoxBlurH(data, w, h, r, ch)
	BoxBlurV(data, w, h, r, ch)
}
