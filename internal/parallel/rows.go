package parallel

// minBandRows keeps bands large enough that scheduling does not dominate.
const minBandRows = 8

// Rows calls fn once per contiguous band [y0, y1) covering [0, height) and
// waits for all bands to finish. A nil pool, or a height too small to split,
// runs fn on the caller as a single band. Bands never overlap, so the result
// matches a sequential pass whenever fn only writes rows inside its band.
func Rows(p *WorkerPool, height int, fn func(y0, y1 int)) {
	if height <= 0 {
		return
	}
	bands := 1
	if p != nil {
		bands = min(p.Workers(), height/minBandRows)
	}
	if bands <= 1 {
		fn(0, height)
		return
	}

	work := make([]func(), 0, bands)
	for i := range bands {
		y0 := i * height / bands
		y1 := (i + 1) * height / bands
		work = append(work, func() { fn(y0, y1) })
	}
	p.ExecuteAll(work)
}
