package effects

import "math"

// Floors applied to scaled spatial fields so a stage never degenerates to a
// no-op at small output sizes.
const (
	minBlockSize = 2
	minSpatial   = 1
)

// Scale adapts p to a target resolution and returns a new document whose
// Reference is target. Spatial fields are multiplied by target/Reference,
// rounded to the nearest integer and floored; a field authored as 0 stays 0.
// Unit-less fields are copied unchanged. When target equals p.Reference the
// result is a plain copy.
func Scale(p *Params, target int) *Params {
	out := p.Clone()
	if target == p.Reference || p.Reference <= 0 || target <= 0 {
		return out
	}

	ratio := float64(target) / float64(p.Reference)
	out.Reference = target
	out.Pixelation.BlockSize = scaleSpatial(p.Pixelation.BlockSize, ratio, minBlockSize)
	out.ColorBleed.Amount = scaleSpatial(p.ColorBleed.Amount, ratio, minSpatial)
	out.RGBSeparation.Offset = scaleSpatial(p.RGBSeparation.Offset, ratio, minSpatial)
	out.ChromaticAberration.Strength = scaleSpatial(p.ChromaticAberration.Strength, ratio, minSpatial)
	out.Scanlines.Thickness = scaleSpatial(p.Scanlines.Thickness, ratio, minSpatial)
	out.Scanlines.Spacing = scaleSpatial(p.Scanlines.Spacing, ratio, minSpatial)
	out.PhosphorGlow.Radius = scaleSpatial(p.PhosphorGlow.Radius, ratio, minSpatial)
	return out
}

func scaleSpatial(v int, ratio float64, floor int) int {
	if v <= 0 {
		return v
	}
	return max(int(math.Round(float64(v)*ratio)), floor)
}
