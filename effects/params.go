// Package effects implements the CRT post-processing pipeline: nine pixel
// stages applied in a fixed order, the parameter document that configures
// them, and the scaler that adapts authored parameters to an output size.
package effects

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/invopop/jsonschema"
)

// DefaultReference is the resolution DefaultParams is authored against.
const DefaultReference = 512

// ErrInvalidParams is returned when a parameter document is out of range.
var ErrInvalidParams = errors.New("effects: invalid parameters")

// Params is the effect parameter document. Spatial fields are in pixels at
// Reference resolution; see Scale.
type Params struct {
	Reference           int                 `json:"reference" jsonschema:"minimum=1,description=Resolution in pixels the spatial fields are authored against"`
	Pixelation          Pixelation          `json:"pixelation"`
	ColorBleed          ColorBleed          `json:"colorBleed"`
	RGBSeparation       RGBSeparation       `json:"rgbSeparation"`
	ChromaticAberration ChromaticAberration `json:"chromaticAberration"`
	Scanlines           Scanlines           `json:"scanlines"`
	PhosphorGlow        PhosphorGlow        `json:"phosphorGlow"`
	Noise               Noise               `json:"noise"`
	Vignette            Vignette            `json:"vignette"`
	Curvature           Curvature           `json:"curvature"`
}

// Pixelation averages blockSize x blockSize tiles.
type Pixelation struct {
	Enabled   bool `json:"enabled"`
	BlockSize int  `json:"blockSize" jsonschema:"minimum=0,description=Tile edge in pixels"`
}

// ColorBleed blurs the red and blue channels horizontally.
type ColorBleed struct {
	Enabled bool `json:"enabled"`
	Amount  int  `json:"amount" jsonschema:"minimum=0,description=Blur radius in pixels"`
}

// RGBSeparation shifts red left and blue right.
type RGBSeparation struct {
	Enabled bool `json:"enabled"`
	Offset  int  `json:"offset" jsonschema:"minimum=0,description=Channel shift in pixels"`
}

// ChromaticAberration shifts red outward and blue inward from the center.
type ChromaticAberration struct {
	Enabled  bool `json:"enabled"`
	Strength int  `json:"strength" jsonschema:"minimum=0,description=Shift in pixels at the corners"`
}

// Scanlines darkens every (thickness+spacing)-th band of rows.
type Scanlines struct {
	Enabled   bool    `json:"enabled"`
	Thickness int     `json:"thickness" jsonschema:"minimum=0,description=Dark rows per period"`
	Spacing   int     `json:"spacing" jsonschema:"minimum=0,description=Untouched rows per period"`
	Opacity   float64 `json:"opacity" jsonschema:"minimum=0,maximum=1"`
}

// PhosphorGlow blooms bright pixels.
type PhosphorGlow struct {
	Enabled   bool    `json:"enabled"`
	Threshold float64 `json:"threshold" jsonschema:"minimum=0,maximum=1,description=Mean brightness a pixel must exceed to glow"`
	Radius    int     `json:"radius" jsonschema:"minimum=0,description=Blur radius in pixels"`
}

// Noise adds a uniform per-pixel brightness offset.
type Noise struct {
	Enabled bool    `json:"enabled"`
	Amount  float64 `json:"amount" jsonschema:"minimum=0,maximum=1"`
}

// Vignette darkens toward the corners.
type Vignette struct {
	Enabled  bool    `json:"enabled"`
	Strength float64 `json:"strength" jsonschema:"minimum=0,maximum=1"`
	Radius   float64 `json:"radius" jsonschema:"minimum=0,description=Normalized distance where darkening starts"`
}

// Curvature applies barrel distortion.
type Curvature struct {
	Enabled  bool    `json:"enabled"`
	Strength float64 `json:"strength" jsonschema:"minimum=0"`
}

// DefaultParams returns the built-in look, authored at DefaultReference.
func DefaultParams() *Params {
	return &Params{
		Reference:           DefaultReference,
		Pixelation:          Pixelation{Enabled: false, BlockSize: 8},
		ColorBleed:          ColorBleed{Enabled: true, Amount: 2},
		RGBSeparation:       RGBSeparation{Enabled: true, Offset: 3},
		ChromaticAberration: ChromaticAberration{Enabled: true, Strength: 4},
		Scanlines:           Scanlines{Enabled: true, Thickness: 2, Spacing: 2, Opacity: 0.25},
		PhosphorGlow:        PhosphorGlow{Enabled: true, Threshold: 0.6, Radius: 4},
		Noise:               Noise{Enabled: true, Amount: 0.04},
		Vignette:            Vignette{Enabled: true, Strength: 0.6, Radius: 0.75},
		Curvature:           Curvature{Enabled: true, Strength: 0.08},
	}
}

// Clone returns an independent copy of p.
func (p *Params) Clone() *Params {
	c := *p
	return &c
}

// Validate reports the first out-of-range field, wrapped in ErrInvalidParams.
func (p *Params) Validate() error {
	checks := []struct {
		field string
		ok    bool
	}{
		{"reference", p.Reference > 0},
		{"pixelation.blockSize", p.Pixelation.BlockSize >= 0},
		{"colorBleed.amount", p.ColorBleed.Amount >= 0},
		{"rgbSeparation.offset", p.RGBSeparation.Offset >= 0},
		{"chromaticAberration.strength", p.ChromaticAberration.Strength >= 0},
		{"scanlines.thickness", p.Scanlines.Thickness >= 0},
		{"scanlines.spacing", p.Scanlines.Spacing >= 0},
		{"scanlines.opacity", unit(p.Scanlines.Opacity)},
		{"phosphorGlow.threshold", unit(p.PhosphorGlow.Threshold)},
		{"phosphorGlow.radius", p.PhosphorGlow.Radius >= 0},
		{"noise.amount", unit(p.Noise.Amount)},
		{"vignette.strength", unit(p.Vignette.Strength)},
		{"vignette.radius", p.Vignette.Radius >= 0},
		{"curvature.strength", p.Curvature.Strength >= 0},
	}
	for _, c := range checks {
		if !c.ok {
			return fmt.Errorf("%w: %s out of range", ErrInvalidParams, c.field)
		}
	}
	return nil
}

func unit(v float64) bool { return v >= 0 && v <= 1 }

// Load decodes a parameter document. Fields absent from the document keep
// their DefaultParams values; unknown fields are rejected.
func Load(r io.Reader) (*Params, error) {
	p := DefaultParams()
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(p); err != nil {
		return nil, fmt.Errorf("effects: decode params: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Write encodes p as indented JSON.
func (p *Params) Write(w io.Writer) error {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("effects: encode params: %w", err)
	}
	_, err = w.Write(append(data, '\n'))
	return err
}

// Schema returns the JSON schema of the parameter document.
func Schema() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		ExpandedStruct: true,
	}
	schema := reflector.Reflect(new(Params))
	schema.Title = "CRT Avatar Effect Parameters"
	schema.Description = "Per-effect settings for the CRT post-processing pipeline"
	return schema
}
