package pixel

import "testing"

func TestParseHex(t *testing.T) {
	tests := []struct {
		name    string
		hex     string
		want    Color
		wantErr bool
	}{
		{name: "six digits", hex: "#ff8000", want: RGB(255, 128, 0)},
		{name: "uppercase", hex: "#1A2B3C", want: RGB(0x1a, 0x2b, 0x3c)},
		{name: "three digits", hex: "#fff", want: White},
		{name: "missing hash", hex: "ff8000", wantErr: true},
		{name: "garbage", hex: "#zzzzzz", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHex(tt.hex)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseHex(%q) error = %v, wantErr %v", tt.hex, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseHex(%q) = %+v, want %+v", tt.hex, got, tt.want)
			}
		})
	}
}

func TestHexRoundTrip(t *testing.T) {
	for _, hex := range []string{"#000000", "#ffffff", "#0f1e2d", "#c0ffee"} {
		c := MustParseHex(hex)
		if got := c.Hex(); got != hex {
			t.Errorf("Hex() = %q, want %q", got, hex)
		}
	}
}

func TestDarken(t *testing.T) {
	tests := []struct {
		in   Color
		step int
		want Color
	}{
		{RGB(100, 50, 20), 30, RGB(70, 20, 0)},
		{RGB(0, 0, 0), 30, RGB(0, 0, 0)},
		{RGB(250, 250, 250), -30, RGB(255, 255, 255)},
		{Color{R: 40, G: 40, B: 40, A: 7}, 30, Color{R: 10, G: 10, B: 10, A: 7}},
	}

	for _, tt := range tests {
		if got := tt.in.Darken(tt.step); got != tt.want {
			t.Errorf("%v.Darken(%d) = %v, want %v", tt.in, tt.step, got, tt.want)
		}
	}
}

func TestLuminance(t *testing.T) {
	if got := White.Luminance(); got < 254.99 || got > 255.01 {
		t.Errorf("White.Luminance() = %v, want 255", got)
	}
	if got := Black.Luminance(); got != 0 {
		t.Errorf("Black.Luminance() = %v, want 0", got)
	}
	// Green dominates perceived brightness.
	if RGB(0, 200, 0).Luminance() <= RGB(200, 0, 0).Luminance() {
		t.Error("green should be brighter than red at equal intensity")
	}
}
