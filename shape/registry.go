// Package shape holds the registry of named, weighted drawing capabilities
// that make up an avatar's traits.
//
// A Registry is built once from a content catalogue with a Builder and is
// read-only afterwards, so it is safe for unsynchronized concurrent reads.
// Categories that carry no drawing (palette, pixel style) are registered
// with a nil Draw; their names and weights still drive trait resolution.
package shape

import (
	"errors"
	"fmt"

	"github.com/gogpu/crtavatar/palette"
	"github.com/gogpu/crtavatar/pixel"
	"github.com/gogpu/crtavatar/prng"
)

// ErrRegistryIntegrity is returned by Build when the catalogue is unusable.
// It is a startup-time configuration error.
var ErrRegistryIntegrity = errors.New("shape: registry integrity failure")

// Category identifies one trait axis.
type Category string

// Trait categories.
const (
	Palette    Category = "palette"
	FaceShape  Category = "faceShape"
	HairStyle  Category = "hairStyle"
	EyeType    Category = "eyeType"
	MouthStyle Category = "mouthStyle"
	Accessory  Category = "accessory"
	Clothing   Category = "clothing"
	BgPattern  Category = "bgPattern"
	PixelStyle Category = "pixelStyle"
)

// Categories lists every category in trait resolution order.
var Categories = []Category{
	Palette, FaceShape, HairStyle, EyeType, MouthStyle,
	Accessory, Clothing, BgPattern, PixelStyle,
}

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	for _, k := range Categories {
		if k == c {
			return true
		}
	}
	return false
}

// DrawFunc paints a variant onto the working canvas. Implementations may
// draw from rng for intra-shape randomness; every such draw shifts the
// sequence seen by later stages.
type DrawFunc func(canvas *pixel.Buffer, p palette.Resolved, rng *prng.RNG)

// Variant is one named option within a category.
type Variant struct {
	Name   string
	Weight int
	Draw   DrawFunc
}

type key struct {
	category Category
	name     string
}

// Registry maps (category, name) to a Variant.
type Registry struct {
	lists   map[Category][]prng.WeightedItem[string]
	byKey   map[key]Variant
	ordered map[Category][]Variant
}

// Get returns the weighted name list for category in registration order.
// The returned slice must not be modified.
func (r *Registry) Get(category Category) []prng.WeightedItem[string] {
	return r.lists[category]
}

// Variants returns the variants registered under category in registration order.
func (r *Registry) Variants(category Category) []Variant {
	return append([]Variant(nil), r.ordered[category]...)
}

// Len returns the number of variants in category.
func (r *Registry) Len(category Category) int {
	return len(r.lists[category])
}

// Lookup finds a variant by exact name. ok is false when the pair is unknown.
func (r *Registry) Lookup(category Category, name string) (Variant, bool) {
	v, ok := r.byKey[key{category, name}]
	return v, ok
}

// Draw invokes the named variant. Unknown names and variants without a
// draw function are silent no-ops.
func (r *Registry) Draw(category Category, name string, canvas *pixel.Buffer, p palette.Resolved, rng *prng.RNG) {
	v, ok := r.byKey[key{category, name}]
	if !ok || v.Draw == nil {
		return
	}
	v.Draw(canvas, p, rng)
}

// Builder accumulates variants before validation.
type Builder struct {
	order    []key
	variants map[key]Variant
	dupes    []key
}

// NewBuilder creates an empty Builder.
func NewBuilder() *Builder {
	return &Builder{variants: make(map[key]Variant)}
}

// Add registers a variant under category.
func (b *Builder) Add(category Category, v Variant) *Builder {
	k := key{category, v.Name}
	if _, exists := b.variants[k]; exists {
		b.dupes = append(b.dupes, k)
		return b
	}
	b.order = append(b.order, k)
	b.variants[k] = v
	return b
}

// AddPalettes registers every definition as a Palette variant.
func (b *Builder) AddPalettes(defs []palette.Definition) *Builder {
	for _, d := range defs {
		b.Add(Palette, Variant{Name: d.Name, Weight: d.Weight})
	}
	return b
}

// Build validates the catalogue and returns the registry. Every category
// in Categories must have at least one variant, every weight must be
// positive and names must be unique within a category.
func (b *Builder) Build() (*Registry, error) {
	if len(b.dupes) > 0 {
		d := b.dupes[0]
		return nil, fmt.Errorf("%w: %s: duplicate variant %q", ErrRegistryIntegrity, d.category, d.name)
	}

	r := &Registry{
		lists:   make(map[Category][]prng.WeightedItem[string]),
		byKey:   make(map[key]Variant, len(b.variants)),
		ordered: make(map[Category][]Variant),
	}
	for _, k := range b.order {
		v := b.variants[k]
		if !k.category.Valid() {
			return nil, fmt.Errorf("%w: unknown category %q", ErrRegistryIntegrity, k.category)
		}
		if v.Name == "" {
			return nil, fmt.Errorf("%w: %s: empty variant name", ErrRegistryIntegrity, k.category)
		}
		if v.Weight <= 0 {
			return nil, fmt.Errorf("%w: %s/%s: weight %d", ErrRegistryIntegrity, k.category, v.Name, v.Weight)
		}
		r.lists[k.category] = append(r.lists[k.category], prng.WeightedItem[string]{Value: v.Name, Weight: v.Weight})
		r.ordered[k.category] = append(r.ordered[k.category], v)
		r.byKey[k] = v
	}

	for _, c := range Categories {
		if err := prng.ValidateWeights(r.lists[c]); err != nil {
			return nil, fmt.Errorf("%w: %s has no variants", ErrRegistryIntegrity, c)
		}
	}
	return r, nil
}
