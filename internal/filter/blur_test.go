package filter

import (
	"bytes"
	"testing"
)

func TestBoxBlurZeroRadius(t *testing.T) {
	data := solid(4, 4, 10, 20, 30, 255)
	data[0] = 200
	orig := bytes.Clone(data)

	for _, r := range []int{0, -3} {
		blur(data, 4, 4, r, ChannelRGBA)
		if !bytes.Equal(data, orig) {
			t.Fatalf("blur(r=%d) modified data", r)
		}
	}
}

func TestBoxBlurSolidUnchanged(t *testing.T) {
	data := solid(7, 5, 90, 180, 45, 255)
	orig := bytes.Clone(data)
	blur(data, 7, 5, 3, ChannelRGBA)
	if !bytes.Equal(data, orig) {
		t.Error("blurring a solid buffer changed it")
	}
}

func TestBoxBlurHMatchesNaive(t *testing.T) {
	const w = 9
	line := []uint8{0, 255, 10, 200, 30, 0, 0, 128, 77}
	for _, r := range []int{1, 2, 4, 12} {
		data := make([]uint8, w*4)
		for x, v := range line {
			data[x*4] = v
		}
		BoxBlurH(data, w, 1, r, ChannelR)
		for x := 0; x < w; x++ {
			if got, want := data[x*4], naiveBox(line, x, r); got != want {
				t.Errorf("r=%d x=%d: got %d, want %d", r, x, got, want)
			}
		}
	}
}

func TestBoxBlurVMatchesNaive(t *testing.T) {
	const h = 6
	column := []uint8{255, 0, 0, 0, 60, 9}
	data := make([]uint8, 2*h*4)
	for y, v := range column {
		data[(y*2+1)*4+3] = v
	}
	BoxBlurV(data, 2, h, 2, ChannelA)
	for y := 0; y < h; y++ {
		if got, want := at(data, 2, 1, y)[3], naiveBox(column, y, 2); got != want {
			t.Errorf("y=%d: got %d, want %d", y, got, want)
		}
		if at(data, 2, 0, y)[3] != 0 {
			t.Errorf("y=%d: column 0 changed", y)
		}
	}
}

func TestBoxBlurChannelMask(t *testing.T) {
	data := solid(5, 1, 0, 0, 0, 255)
	data[2*4+0] = 250 // R
	data[2*4+1] = 250 // G
	data[2*4+2] = 250 // B

	BoxBlurH(data, 5, 1, 1, ChannelR|ChannelB)

	if got := at(data, 5, 1, 0); got[0] != 83 || got[2] != 83 {
		t.Errorf("masked channels = %v, want R=B=83", got)
	}
	if got := at(data, 5, 1, 0); got[1] != 0 {
		t.Errorf("G changed to %d", got[1])
	}
	if got := at(data, 5, 2, 0); got[1] != 250 {
		t.Errorf("G source changed to %d", got[1])
	}
}

func TestBoxBlurEdgeClamp(t *testing.T) {
	// A bright left edge must not leak into the right edge.
	data := solid(8, 1, 0, 0, 0, 255)
	data[0] = 255
	BoxBlurH(data, 8, 1, 2, ChannelR)
	if got := at(data, 8, 7, 0)[0]; got != 0 {
		t.Errorf("right edge = %d, want 0", got)
	}
	// (255*3 + 0*2)/5 = 153
	if got := at(data, 8, 0, 0)[0]; got != 153 {
		t.Errorf("left edge = %d, want 153", got)
	}
}

func TestBoxBlurLargeLine(t *testing.T) {
	const w = 3000
	data := solid(w, 1, 100, 100, 100, 255)
	BoxBlurH(data, w, 1, 5, ChannelRGB)
	if got := at(data, w, w-1, 0); got != [4]uint8{100, 100, 100, 255} {
		t.Errorf("last pixel = %v", got)
	}
}

func BenchmarkBoxBlurHV(b *testing.B) {
	data := solid(512, 512, 30, 60, 90, 255)
	for b.Loop() {
		blur(data, 512, 512, 4, ChannelRGBA)
	}
}
