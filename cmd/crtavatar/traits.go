package main

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/gogpu/crtavatar/catalog"
	"github.com/gogpu/crtavatar/prng"
	"github.com/gogpu/crtavatar/shape"
	"github.com/gogpu/crtavatar/traits"
)

func runTraits(_ context.Context, e *env, args []string) error {
	fs, verbose := newFlagSet(e, "traits")
	if err := fs.Parse(args); err != nil {
		return err
	}
	setupLogging(e, *verbose)

	reg := catalog.Default()
	w := tabwriter.NewWriter(e.stdout, 0, 4, 2, ' ', 0)
	for _, c := range shape.Categories {
		items := reg.Get(c)
		total := prng.TotalWeight(items)
		fmt.Fprintf(w, "%s\t(%s)\t\t\n", c, traits.Label(string(c)))
		for _, it := range items {
			fmt.Fprintf(w, "  %s\t%s\t%d\t%.1f%%\n", it.Value, traits.Label(it.Value), it.Weight,
				100*float64(it.Weight)/float64(total))
		}
	}
	return w.Flush()
}
