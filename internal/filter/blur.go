package filter

import "sync"

// Channels selects which RGBA channels a filter touches.
type Channels uint8

// Channel masks.
const (
	ChannelR Channels = 1 << iota
	ChannelG
	ChannelB
	ChannelA

	ChannelRGB  = ChannelR | ChannelG | ChannelB
	ChannelRGBA = ChannelRGB | ChannelA
)

// BoxBlurH blurs each row with a (2r+1)-wide window.
func BoxBlurH(data []uint8, width, height, r int, ch Channels) {
	if r <= 0 || width <= 0 || height <= 0 {
		return
	}
	line := getLine(width)
	defer putLine(line)

	for y := 0; y < height; y++ {
		row := data[y*width*4 : (y+1)*width*4]
		for c := 0; c < 4; c++ {
			if ch&(1<<c) == 0 {
				continue
			}
			for x := 0; x < width; x++ {
				line[x] = row[x*4+c]
			}
			slide(line[:width], r, func(x int, v uint8) { row[x*4+c] = v })
		}
	}
}

// BoxBlurV blurs each column with a (2r+1)-tall window.
func BoxBlurV(data []uint8, width, height, r int, ch Channels) {
	if r <= 0 || width <= 0 || height <= 0 {
		return
	}
	line := getLine(height)
	defer putLine(line)

	stride := width * 4
	for x := 0; x < width; x++ {
		for c := 0; c < 4; c++ {
			if ch&(1<<c) == 0 {
				continue
			}
			base := x*4 + c
			for y := 0; y < height; y++ {
				line[y] = data[base+y*stride]
			}
			slide(line[:height], r, func(y int, v uint8) { data[base+y*stride] = v })
		}
	}
}

// slide runs the running-sum window over src and reports each rounded
// average through emit. src is a private copy, so emit may overwrite the
// samples src was read from.
func slide(src []uint8, r int, emit func(i int, v uint8)) {
	n := len(src)
	last := n - 1
	size := 2*r + 1

	sum := 0
	for k := -r; k <= r; k++ {
		sum += int(src[clampIndex(k, last)])
	}
	for i := 0; i < n; i++ {
		emit(i, uint8((sum+size/2)/size))
		sum += int(src[clampIndex(i+r+1, last)]) - int(src[clampIndex(i-r, last)])
	}
}

// clampIndex restricts i to [0, last].
func clampIndex(i, last int) int {
	if i < 0 {
		return 0
	}
	if i > last {
		return last
	}
	return i
}

// byteLine wraps a slice for sync.Pool to avoid allocation warnings.
type byteLine struct {
	data []uint8
}

// Scratch line pool for blur passes.
var linePool = sync.Pool{
	New: func() interface{} {
		return &byteLine{data: make([]uint8, 1024)}
	},
}

// getLine retrieves a scratch line of at least n bytes.
func getLine(n int) []uint8 {
	wrapper := linePool.Get().(*byteLine)
	if len(wrapper.data) < n {
		linePool.Put(wrapper)
		return make([]uint8, n)
	}
	return wrapper.data[:n]
}

// putLine returns a scratch line to the pool.
func putLine(line []uint8) {
	// Only pool reasonably-sized lines
	if cap(line) <= 64*1024 {
		linePool.Put(&byteLine{data: line[:cap(line)]})
	}
}
