package main

import (
	"context"
	"fmt"

	"github.com/gogpu/crtavatar"
	"github.com/gogpu/crtavatar/internal/preview"
)

func runPreview(_ context.Context, e *env, args []string) error {
	fs, verbose := newFlagSet(e, "preview")
	var (
		seed      seedFlag
		overrides = overrideFlag{}
		size      = fs.Int("size", 64, "render size before fitting to the terminal")
		params    = fs.String("params", "", "effect parameter JSON document")
	)
	fs.Var(&seed, "seed", "avatar seed (default random)")
	fs.Var(overrides, "set", "force a trait, category=name (repeatable)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	setupLogging(e, *verbose)

	p, err := loadParams(*params)
	if err != nil {
		return err
	}
	g, err := crtavatar.New(crtavatar.WithParams(p))
	if err != nil {
		return err
	}
	defer g.Close()

	res, err := g.Generate(crtavatar.Request{Resolution: *size, Seed: seed.ptr(), Overrides: overrides})
	if err != nil {
		return err
	}
	t := res.Traits
	caption := fmt.Sprintf("seed %d  %s/%s/%s  (any key to exit)", t.Seed, t.Palette, t.HairStyle, t.EyeType)
	return preview.Run(res.Image, caption)
}
