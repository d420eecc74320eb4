// Package traits resolves every trait category to a concrete variant name.
//
// Resolution walks shape.Categories in a fixed order. A category with an
// explicit override uses it without touching the RNG; every other category
// consumes exactly one weighted draw against the registry.
package traits

import (
	"errors"
	"fmt"
	"sort"

	"github.com/gogpu/crtavatar/prng"
	"github.com/gogpu/crtavatar/shape"
)

// Random is the override value that requests a weighted draw.
const Random = "random"

var (
	// ErrUnknownCategory is returned for override keys that name no category.
	ErrUnknownCategory = errors.New("traits: unknown category")

	// ErrEmptyCategory is returned when an override targets a category
	// with no registered variants.
	ErrEmptyCategory = errors.New("traits: category has no variants")
)

// Set is the resolved trait metadata of one avatar. It is the only state
// that needs to be stored to regenerate the image.
type Set struct {
	Seed       uint32 `json:"seed"`
	Palette    string `json:"palette"`
	FaceShape  string `json:"faceShape"`
	HairStyle  string `json:"hairStyle"`
	EyeType    string `json:"eyeType"`
	MouthStyle string `json:"mouthStyle"`
	Accessory  string `json:"accessory"`
	Clothing   string `json:"clothing"`
	BgPattern  string `json:"bgPattern"`
	PixelStyle string `json:"pixelStyle"`
}

// Get returns the variant name resolved for category.
func (s Set) Get(c shape.Category) string {
	switch c {
	case shape.Palette:
		return s.Palette
	case shape.FaceShape:
		return s.FaceShape
	case shape.HairStyle:
		return s.HairStyle
	case shape.EyeType:
		return s.EyeType
	case shape.MouthStyle:
		return s.MouthStyle
	case shape.Accessory:
		return s.Accessory
	case shape.Clothing:
		return s.Clothing
	case shape.BgPattern:
		return s.BgPattern
	case shape.PixelStyle:
		return s.PixelStyle
	}
	return ""
}

func (s *Set) set(c shape.Category, v string) {
	switch c {
	case shape.Palette:
		s.Palette = v
	case shape.FaceShape:
		s.FaceShape = v
	case shape.HairStyle:
		s.HairStyle = v
	case shape.EyeType:
		s.EyeType = v
	case shape.MouthStyle:
		s.MouthStyle = v
	case shape.Accessory:
		s.Accessory = v
	case shape.Clothing:
		s.Clothing = v
	case shape.BgPattern:
		s.BgPattern = v
	case shape.PixelStyle:
		s.PixelStyle = v
	}
}

// Overrides maps categories to explicitly requested variant names.
type Overrides map[shape.Category]string

// ParseOverrides converts a loosely typed map, such as decoded JSON or CLI
// flags, into Overrides. Unknown category keys are rejected.
func ParseOverrides(m map[string]string) (Overrides, error) {
	out := make(Overrides, len(m))
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		c := shape.Category(k)
		if !c.Valid() {
			return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, k)
		}
		out[c] = m[k]
	}
	return out, nil
}

// explicit reports the override for c, if one other than Random is present.
func (o Overrides) explicit(c shape.Category) (string, bool) {
	v, ok := o[c]
	if !ok || v == "" || v == Random {
		return "", false
	}
	return v, true
}

// Validate checks overrides against reg before any drawing happens.
func (o Overrides) Validate(reg *shape.Registry) error {
	for c := range o {
		if !c.Valid() {
			return fmt.Errorf("%w: %q", ErrUnknownCategory, c)
		}
		if _, ok := o.explicit(c); ok && reg.Len(c) == 0 {
			return fmt.Errorf("%w: %s", ErrEmptyCategory, c)
		}
	}
	return nil
}

// Resolution is the outcome of Resolve.
type Resolution struct {
	Set Set
	// Unknown lists categories whose override named no registered variant.
	// Those values were passed through unchanged.
	Unknown []shape.Category
}

// Resolve picks one variant per category in shape.Categories order.
// Overrides that are found are used as-is; overrides that are not found are
// passed through literally and listed in Resolution.Unknown. Categories
// without an override consume one PickWeighted draw each.
func Resolve(reg *shape.Registry, seed uint32, o Overrides, rng *prng.RNG) Resolution {
	res := Resolution{Set: Set{Seed: seed}}
	for _, c := range shape.Categories {
		if name, ok := o.explicit(c); ok {
			if _, found := reg.Lookup(c, name); !found {
				res.Unknown = append(res.Unknown, c)
			}
			res.Set.set(c, name)
			continue
		}
		res.Set.set(c, prng.PickWeighted(rng, reg.Get(c)))
	}
	return res
}
