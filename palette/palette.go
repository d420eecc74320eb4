// Package palette turns curated color lists into semantic role assignments.
//
// Drawing code never indexes a palette directly. It asks for a role
// (background, skin, eyes, ...) and the resolver decides, per seed, which
// curated color plays which role.
package palette

import (
	"errors"
	"fmt"
	"sort"

	"github.com/gogpu/crtavatar/pixel"
	"github.com/gogpu/crtavatar/prng"
)

// ShadowStep is the per-channel amount SkinShadow is darkened from Skin.
const ShadowStep = 30

// ErrInvalidDefinition is returned for definitions that cannot be resolved.
var ErrInvalidDefinition = errors.New("palette: invalid definition")

// Definition is a curated, weighted list of colors.
type Definition struct {
	Name   string
	Colors []pixel.Color
	Weight int
}

// NewDefinition builds a definition from hex strings.
// At least two colors and a positive weight are required.
func NewDefinition(name string, weight int, hexes ...string) (Definition, error) {
	colors := make([]pixel.Color, len(hexes))
	for i, h := range hexes {
		c, err := pixel.ParseHex(h)
		if err != nil {
			return Definition{}, fmt.Errorf("%w: %q: %w", ErrInvalidDefinition, name, err)
		}
		colors[i] = c
	}
	def := Definition{Name: name, Colors: colors, Weight: weight}
	if err := def.Validate(); err != nil {
		return Definition{}, err
	}
	return def, nil
}

// Validate reports why d cannot be resolved: a missing name, fewer than two
// colors or a non-positive weight.
func (d Definition) Validate() error {
	switch {
	case d.Name == "":
		return fmt.Errorf("%w: empty name", ErrInvalidDefinition)
	case len(d.Colors) < 2:
		return fmt.Errorf("%w: %q has %d colors, need at least 2", ErrInvalidDefinition, d.Name, len(d.Colors))
	case d.Weight <= 0:
		return fmt.Errorf("%w: %q has weight %d", ErrInvalidDefinition, d.Name, d.Weight)
	}
	return nil
}

// Role names a semantic color slot.
type Role string

// Roles in a resolved palette.
const (
	RoleBackground Role = "background"
	RoleSkin       Role = "skin"
	RoleSkinShadow Role = "skinShadow"
	RoleEyes       Role = "eyes"
	RoleMouth      Role = "mouth"
	RoleHair       Role = "hair"
	RoleAccent     Role = "accent"
)

// Roles lists every role in a stable order.
var Roles = []Role{RoleBackground, RoleSkin, RoleSkinShadow, RoleEyes, RoleMouth, RoleHair, RoleAccent}

// Resolved binds every role to a concrete color. It is a value type;
// copies are independent.
type Resolved struct {
	Background pixel.Color `json:"background"`
	Skin       pixel.Color `json:"skin"`
	SkinShadow pixel.Color `json:"skinShadow"`
	Eyes       pixel.Color `json:"eyes"`
	Mouth      pixel.Color `json:"mouth"`
	Hair       pixel.Color `json:"hair"`
	Accent     pixel.Color `json:"accent"`
}

// Role returns the color bound to role, or Transparent for unknown roles.
func (p Resolved) Role(role Role) pixel.Color {
	switch role {
	case RoleBackground:
		return p.Background
	case RoleSkin:
		return p.Skin
	case RoleSkinShadow:
		return p.SkinShadow
	case RoleEyes:
		return p.Eyes
	case RoleMouth:
		return p.Mouth
	case RoleHair:
		return p.Hair
	case RoleAccent:
		return p.Accent
	default:
		return pixel.Transparent
	}
}

// Hex returns the role assignment as role -> "#rrggbb".
func (p Resolved) Hex() map[Role]string {
	out := make(map[Role]string, len(Roles))
	for _, r := range Roles {
		out[r] = p.Role(r).Hex()
	}
	return out
}

// Resolve derives role colors from def, consuming len(def.Colors)-2 draws
// from rng (one per Fisher-Yates step over the pool).
//
// The darkest color by luminance becomes the background. The remaining
// colors are shuffled and assigned cyclically to skin, eyes, mouth, hair
// and accent, so pools smaller than five repeat colors. SkinShadow is skin
// darkened by ShadowStep. def must pass Validate.
func Resolve(def Definition, rng *prng.RNG) Resolved {
	sorted := make([]pixel.Color, len(def.Colors))
	copy(sorted, def.Colors)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Luminance() < sorted[j].Luminance()
	})

	background := sorted[0]
	pool := sorted[1:]
	for i := len(pool) - 1; i >= 1; i-- {
		j := rng.Int(0, i)
		pool[i], pool[j] = pool[j], pool[i]
	}

	n := len(pool)
	skin := pool[0%n]
	return Resolved{
		Background: background,
		Skin:       skin,
		SkinShadow: skin.Darken(ShadowStep),
		Eyes:       pool[1%n],
		Mouth:      pool[2%n],
		Hair:       pool[3%n],
		Accent:     pool[4%n],
	}
}
