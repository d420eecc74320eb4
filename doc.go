// Package crtavatar generates deterministic pixel-art avatars with a CRT
// monitor look.
//
// # Overview
//
// A seed fully determines an avatar. Generation resolves nine traits
// (palette, face, hair, eyes, mouth, accessory, clothing, background and
// pixel style) by weighted draws from a seeded Mulberry32 generator, maps
// the palette's colors to semantic roles, draws the traits onto a 32x32
// working canvas, upsamples it and runs a nine-stage effects pipeline.
// The same seed, overrides, resolution and effect parameters always give
// byte-identical pixels.
//
// # Quick Start
//
//	res, err := crtavatar.Generate(512, crtavatar.WithSeed(12345))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	res.Image.SavePNG("avatar.png")
//	fmt.Println(res.Traits.HairStyle)
//
// For repeated generation create a Generator once and reuse it; it is safe
// for concurrent use.
//
// # Architecture
//
// The library is organized into:
//   - prng: seeded generator and weighted selection
//   - shape, catalog: the variant registry and its built-in content
//   - traits, palette: trait and color-role resolution
//   - compose: z-ordered drawing and upsampling
//   - effects: parameter documents, scaling and the CRT pipeline
//
// # Draw Order
//
// Every random draw happens in one published order: trait draws, palette
// shuffle, variant-internal draws in z-order, then noise. Reordering any
// of them changes every later value.
package crtavatar
