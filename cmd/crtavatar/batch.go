package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/gogpu/crtavatar"
	"github.com/gogpu/crtavatar/traits"
)

// manifestName is the file listing every rendered avatar's traits.
const manifestName = "manifest.json"

func runBatch(ctx context.Context, e *env, args []string) error {
	fs, verbose := newFlagSet(e, "batch")
	var (
		overrides = overrideFlag{}
		count     = fs.Int("count", 10, "number of avatars")
		start     = fs.Int64("start-seed", 0, "first seed; seeds are consecutive")
		size      = fs.Int("size", 256, "output width and height in pixels")
		params    = fs.String("params", "", "effect parameter JSON document")
		outDir    = fs.String("out", "avatars", "output directory")
		workers   = fs.Int("workers", runtime.GOMAXPROCS(0), "concurrent renders")
		perSecond = fs.Float64("rate", 0, "maximum renders per second (0 = unlimited)")
	)
	fs.Var(overrides, "set", "force a trait, category=name (repeatable)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	setupLogging(e, *verbose)
	if *count < 0 {
		return fmt.Errorf("count %d must not be negative", *count)
	}

	p, err := loadParams(*params)
	if err != nil {
		return err
	}
	g, err := crtavatar.New(crtavatar.WithParams(p))
	if err != nil {
		return err
	}
	defer g.Close()

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	var limiter *rate.Limiter
	if *perSecond > 0 {
		limiter = rate.NewLimiter(rate.Every(time.Duration(float64(time.Second) / *perSecond)), 1)
	}

	manifest := make([]traits.Set, *count)
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(max(*workers, 1))
	for i := range *count {
		eg.Go(func() error {
			if limiter != nil {
				if err := limiter.Wait(egCtx); err != nil {
					return err
				}
			}
			if err := egCtx.Err(); err != nil {
				return err
			}

			seed := *start + int64(i)
			res, err := g.Generate(crtavatar.Request{Resolution: *size, Seed: &seed, Overrides: overrides})
			if err != nil {
				return fmt.Errorf("seed %d: %w", seed, err)
			}
			path := filepath.Join(*outDir, fmt.Sprintf("avatar-%d.png", res.Traits.Seed))
			if err := res.Image.SavePNG(path); err != nil {
				return fmt.Errorf("seed %d: %w", seed, err)
			}
			manifest[i] = res.Traits
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}

	data, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal manifest: %w", err)
	}
	if err := os.WriteFile(filepath.Join(*outDir, manifestName), append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}
	fmt.Fprintf(e.stdout, "rendered %d avatars to %s\n", *count, *outDir)
	return nil
}
