package shape

import (
	"errors"
	"sync"
	"testing"

	"github.com/gogpu/crtavatar/palette"
	"github.com/gogpu/crtavatar/pixel"
	"github.com/gogpu/crtavatar/prng"
)

// fullBuilder registers one variant per category plus extras for FaceShape.
func fullBuilder(draw DrawFunc) *Builder {
	b := NewBuilder()
	for _, c := range Categories {
		b.Add(c, Variant{Name: "only", Weight: 1, Draw: draw})
	}
	b.Add(FaceShape, Variant{Name: "round", Weight: 3, Draw: draw})
	return b
}

func TestBuildAndLookup(t *testing.T) {
	r, err := fullBuilder(nil).Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if got := r.Len(FaceShape); got != 2 {
		t.Errorf("Len(FaceShape) = %d, want 2", got)
	}
	list := r.Get(FaceShape)
	if list[0].Value != "only" || list[1].Value != "round" || list[1].Weight != 3 {
		t.Errorf("Get(FaceShape) = %+v, want registration order", list)
	}
	if _, ok := r.Lookup(FaceShape, "round"); !ok {
		t.Error("Lookup(FaceShape, round) not found")
	}
	if _, ok := r.Lookup(HairStyle, "round"); ok {
		t.Error("Lookup must be scoped to the category")
	}
}

func TestBuildIntegrityFailures(t *testing.T) {
	tests := []struct {
		name  string
		build func() *Builder
	}{
		{"missing category", func() *Builder {
			b := NewBuilder()
			for _, c := range Categories[:len(Categories)-1] {
				b.Add(c, Variant{Name: "x", Weight: 1})
			}
			return b
		}},
		{"zero weight", func() *Builder {
			return fullBuilder(nil).Add(EyeType, Variant{Name: "bad", Weight: 0})
		}},
		{"duplicate", func() *Builder {
			return fullBuilder(nil).Add(EyeType, Variant{Name: "only", Weight: 2})
		}},
		{"unknown category", func() *Builder {
			return fullBuilder(nil).Add(Category("hat"), Variant{Name: "fez", Weight: 1})
		}},
		{"empty name", func() *Builder {
			return fullBuilder(nil).Add(EyeType, Variant{Weight: 1})
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.build().Build(); !errors.Is(err, ErrRegistryIntegrity) {
				t.Errorf("Build() error = %v, want ErrRegistryIntegrity", err)
			}
		})
	}
}

func TestDrawUnknownIsNoop(t *testing.T) {
	called := 0
	r, err := fullBuilder(func(*pixel.Buffer, palette.Resolved, *prng.RNG) { called++ }).Build()
	if err != nil {
		t.Fatal(err)
	}
	canvas := pixel.MustBuffer(4, 4)
	rng := prng.New(1)

	r.Draw(FaceShape, "missing", canvas, palette.Resolved{}, rng)
	if called != 0 {
		t.Error("unknown variant was drawn")
	}
	r.Draw(FaceShape, "round", canvas, palette.Resolved{}, rng)
	if called != 1 {
		t.Errorf("draw called %d times, want 1", called)
	}
}

func TestAddPalettes(t *testing.T) {
	b := NewBuilder().AddPalettes(palette.Curated())
	for _, c := range Categories[1:] {
		b.Add(c, Variant{Name: "x", Weight: 1})
	}
	r, err := b.Build()
	if err != nil {
		t.Fatal(err)
	}
	if r.Len(Palette) != len(palette.Curated()) {
		t.Errorf("Len(Palette) = %d, want %d", r.Len(Palette), len(palette.Curated()))
	}
}

func TestCategoryValid(t *testing.T) {
	if !PixelStyle.Valid() {
		t.Error("PixelStyle should be valid")
	}
	if Category("random").Valid() {
		t.Error("random should not be a category")
	}
}

func TestRegistryConcurrentReads(t *testing.T) {
	r, err := fullBuilder(nil).Build()
	if err != nil {
		t.Fatal(err)
	}
	var wg sync.WaitGroup
	for range 32 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				_ = r.Get(FaceShape)
				_, _ = r.Lookup(FaceShape, "round")
			}
		}()
	}
	wg.Wait()
}
