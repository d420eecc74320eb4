package crtavatar

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/gogpu/crtavatar/effects"
	"github.com/gogpu/crtavatar/pixel"
)

// effectsOff returns the default parameters with every stage disabled.
func effectsOff() *effects.Params {
	p := effects.DefaultParams()
	p.Pixelation.Enabled = false
	p.ColorBleed.Enabled = false
	p.RGBSeparation.Enabled = false
	p.ChromaticAberration.Enabled = false
	p.Scanlines.Enabled = false
	p.PhosphorGlow.Enabled = false
	p.Noise.Enabled = false
	p.Vignette.Enabled = false
	p.Curvature.Enabled = false
	return p
}

// digest returns the hex SHA-256 of the buffer's pixel bytes.
func digest(b *pixel.Buffer) string {
	sum := sha256.Sum256(b.Data())
	return hex.EncodeToString(sum[:])
}
