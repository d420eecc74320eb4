package traits

import (
	"errors"
	"testing"

	"github.com/gogpu/crtavatar/prng"
	"github.com/gogpu/crtavatar/shape"
)

// testRegistry registers two variants per category: "a" (weight 1) and
// "b" (weight 3).
func testRegistry(t *testing.T) *shape.Registry {
	t.Helper()
	b := shape.NewBuilder()
	for _, c := range shape.Categories {
		b.Add(c, shape.Variant{Name: "a", Weight: 1})
		b.Add(c, shape.Variant{Name: "b", Weight: 3})
	}
	r, err := b.Build()
	if err != nil {
		t.Fatal(err)
	}
	return r
}

func TestResolveDeterministic(t *testing.T) {
	reg := testRegistry(t)
	a := Resolve(reg, 7, nil, prng.New(7))
	b := Resolve(reg, 7, nil, prng.New(7))
	if a.Set != b.Set {
		t.Errorf("Resolve not deterministic: %+v vs %+v", a.Set, b.Set)
	}
	if a.Set.Seed != 7 {
		t.Errorf("Seed = %d, want 7", a.Set.Seed)
	}
}

func TestResolveConsumesOneDrawPerRandomCategory(t *testing.T) {
	reg := testRegistry(t)
	o := Overrides{shape.FaceShape: "a", shape.HairStyle: Random, shape.EyeType: ""}

	rng := prng.New(11)
	Resolve(reg, 11, o, rng)

	ref := prng.New(11)
	for i := 0; i < len(shape.Categories)-1; i++ {
		ref.Next()
	}
	if rng.State() != ref.State() {
		t.Error("expected exactly one draw per non-overridden category")
	}
}

func TestResolveMatchesManualDraws(t *testing.T) {
	reg := testRegistry(t)
	res := Resolve(reg, 3, nil, prng.New(3))

	ref := prng.New(3)
	for _, c := range shape.Categories {
		want := prng.PickWeighted(ref, reg.Get(c))
		if got := res.Set.Get(c); got != want {
			t.Errorf("%s = %q, want %q", c, got, want)
		}
	}
}

func TestResolveUnknownOverridePassesThrough(t *testing.T) {
	reg := testRegistry(t)
	o := Overrides{shape.HairStyle: "mullet", shape.EyeType: "b"}
	res := Resolve(reg, 1, o, prng.New(1))

	if res.Set.HairStyle != "mullet" {
		t.Errorf("HairStyle = %q, want literal override", res.Set.HairStyle)
	}
	if res.Set.EyeType != "b" {
		t.Errorf("EyeType = %q, want b", res.Set.EyeType)
	}
	if len(res.Unknown) != 1 || res.Unknown[0] != shape.HairStyle {
		t.Errorf("Unknown = %v, want [hairStyle]", res.Unknown)
	}
}

func TestParseOverrides(t *testing.T) {
	o, err := ParseOverrides(map[string]string{"faceShape": "round", "pixelStyle": "random"})
	if err != nil {
		t.Fatalf("ParseOverrides() error = %v", err)
	}
	if o[shape.FaceShape] != "round" {
		t.Errorf("faceShape = %q", o[shape.FaceShape])
	}

	if _, err := ParseOverrides(map[string]string{"hat": "fez"}); !errors.Is(err, ErrUnknownCategory) {
		t.Errorf("ParseOverrides(hat) error = %v, want ErrUnknownCategory", err)
	}
}

func TestValidate(t *testing.T) {
	reg := testRegistry(t)
	if err := (Overrides{shape.Clothing: "a"}).Validate(reg); err != nil {
		t.Errorf("Validate() = %v", err)
	}
	if err := (Overrides{"hat": "fez"}).Validate(reg); !errors.Is(err, ErrUnknownCategory) {
		t.Errorf("Validate() = %v, want ErrUnknownCategory", err)
	}
}

func TestSetGetRoundTrip(t *testing.T) {
	var s Set
	for _, c := range shape.Categories {
		s.set(c, string(c)+"-value")
	}
	for _, c := range shape.Categories {
		if got := s.Get(c); got != string(c)+"-value" {
			t.Errorf("Get(%s) = %q", c, got)
		}
	}
}

func TestLabel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"mohawk", "Mohawk"},
		{"spiky-hair", "Spiky Hair"},
		{"faceShape", "Face Shape"},
		{"bg_pattern", "Bg Pattern"},
		{"dotmatrix", "Dotmatrix"},
	}
	for _, tt := range tests {
		if got := Label(tt.in); got != tt.want {
			t.Errorf("Label(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
