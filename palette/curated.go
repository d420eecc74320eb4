package palette

// curated is the built-in palette catalogue: name, rarity weight, colors.
var curated = []struct {
	name   string
	weight int
	colors []string
}{
	{"phosphor", 30, []string{"#0b1a0b", "#1f5f2a", "#39ff14", "#a8ff9e", "#d9ffd1", "#66cc66"}},
	{"amber", 25, []string{"#140c02", "#8a4b08", "#ffb000", "#ffd27a", "#fff1cc"}},
	{"vaporwave", 15, []string{"#1a1033", "#ff71ce", "#01cdfe", "#05ffa1", "#b967ff", "#fffb96"}},
	{"gameboy", 12, []string{"#0f380f", "#306230", "#8bac0f", "#9bbc0f"}},
	{"sunset", 10, []string{"#2d1b2e", "#b0305c", "#eb564b", "#ff9166", "#ffd4a3", "#7e3a6e"}},
	{"ice", 8, []string{"#0a1628", "#1e4d7a", "#5fa8d3", "#cae9ff", "#f2fbff"}},
	{"noir", 5, []string{"#000000", "#ffffff"}},
	{"gold", 2, []string{"#1c1400", "#6b4f00", "#d4af37", "#fff4c2", "#b8860b", "#ffe066", "#8c6d1f"}},
}

var curatedDefs = buildCurated()

func buildCurated() []Definition {
	defs := make([]Definition, 0, len(curated))
	for _, c := range curated {
		def, err := NewDefinition(c.name, c.weight, c.colors...)
		if err != nil {
			panic(err)
		}
		defs = append(defs, def)
	}
	return defs
}

// Curated returns a copy of the built-in palette definitions in catalogue order.
func Curated() []Definition {
	out := make([]Definition, len(curatedDefs))
	for i, d := range curatedDefs {
		d.Colors = append(d.Colors[:0:0], d.Colors...)
		out[i] = d
	}
	return out
}

// Find returns the curated definition with the given name.
func Find(name string) (Definition, bool) {
	for _, d := range curatedDefs {
		if d.Name == name {
			d.Colors = append(d.Colors[:0:0], d.Colors...)
			return d, true
		}
	}
	return Definition{}, false
}
