package crtavatar

import (
	"testing"
	"time"

	"github.com/gogpu/crtavatar/catalog"
	"github.com/gogpu/crtavatar/effects"
	"github.com/gogpu/crtavatar/palette"
)

func TestDefaultOptions(t *testing.T) {
	g, err := New()
	if err != nil {
		t.Fatal(err)
	}
	defer g.Close()

	if g.reg != catalog.Default() {
		t.Error("default registry is not the built-in catalogue")
	}
	if *g.params != *effects.DefaultParams() {
		t.Error("default params differ from effects.DefaultParams")
	}
	if g.results != nil {
		t.Error("result cache enabled by default")
	}
	if len(g.opts.palettes) != len(palette.Curated()) {
		t.Error("default palettes are not the curated set")
	}
}

func TestWithParamsCopies(t *testing.T) {
	p := effects.DefaultParams()
	g, err := New(WithParams(p))
	if err != nil {
		t.Fatal(err)
	}
	defer g.Close()

	p.Noise.Amount = 1
	if g.params.Noise.Amount == 1 {
		t.Error("Generator shares the caller's params")
	}
}

func TestWithParamsDisablesEffects(t *testing.T) {
	p := effectsOff()

	res, err := Generate(32, WithSeed(7), WithParams(p))
	if err != nil {
		t.Fatal(err)
	}
	// classic style at the canvas size with no effects is the canvas itself
	if res.Traits.PixelStyle == "classic" && !res.Image.Equal(res.Working) {
		t.Error("image differs from the working canvas with every effect off")
	}
}

func TestWithPalettes(t *testing.T) {
	mono, err := palette.NewDefinition("mono", 1, "#102030", "#c0c0c0")
	if err != nil {
		t.Fatal(err)
	}
	res, err := Generate(32, WithSeed(5), WithPalettes([]palette.Definition{mono}))
	if err != nil {
		t.Fatal(err)
	}
	// The registry still resolves curated names; all of them fall back to mono.
	if res.Palette.Background.Hex() != "#102030" || res.Palette.Skin.Hex() != "#c0c0c0" {
		t.Errorf("palette = %+v", res.Palette)
	}
}

func TestWithResultCacheAndWorkers(t *testing.T) {
	g, err := New(WithResultCache(time.Second), WithWorkers(3))
	if err != nil {
		t.Fatal(err)
	}
	defer g.Close()
	if g.results == nil {
		t.Error("result cache not created")
	}
	if g.opts.workers != 3 {
		t.Errorf("workers = %d", g.opts.workers)
	}
}
