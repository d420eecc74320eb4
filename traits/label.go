package traits

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Label turns a variant or category identifier into a display label:
// "spiky-hair" -> "Spiky Hair", "faceShape" -> "Face Shape".
func Label(name string) string {
	var b strings.Builder
	prevLower := false
	for _, r := range name {
		switch {
		case r == '-' || r == '_':
			b.WriteByte(' ')
			prevLower = false
			continue
		case unicode.IsUpper(r) && prevLower:
			b.WriteByte(' ')
		}
		b.WriteRune(r)
		prevLower = unicode.IsLower(r) || unicode.IsDigit(r)
	}
	// Caser is not safe for concurrent use; build one per call.
	return cases.Title(language.English).String(strings.Join(strings.Fields(b.String()), " "))
}
