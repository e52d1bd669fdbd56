package catalog

import (
	"strings"

	"github.com/ezefranca/AccessibleFonts/core/font"
)

// Variant is a concrete (family, weight, style) combination requested by
// a caller. Variants are transient lookup keys and carry no state.
type Variant struct {
	Family Family
	Weight font.Weight
	Style  font.Style
}

// NearestWeight returns the member of available closest to requested on
// the numeric CSS scale. If requested itself is a member, it is returned
// unchanged. When two members are equidistant from requested, the lighter
// one wins: available is expected in ascending order (as returned by
// AvailableWeights) and only a strictly smaller distance replaces the
// current best. An empty available set returns requested unchanged.
func NearestWeight(requested font.Weight, available []font.Weight) font.Weight {
	if len(available) == 0 {
		return requested
	}
	best := available[0]
	dist := absDelta(best, requested)
	for _, w := range available[1:] {
		if d := absDelta(w, requested); d < dist {
			best, dist = w, d
		}
	}
	return best
}

func absDelta(a, b font.Weight) int {
	d := a.Value() - b.Value()
	if d < 0 {
		return -d
	}
	return d
}

// Resolve maps a variant to one the catalog can satisfy: the weight is
// replaced by the nearest available one, and an italic request is
// downgraded to normal if the family ships no italic faces.
func Resolve(v Variant) Variant {
	v.Weight = NearestWeight(v.Weight, AvailableWeights(v.Family))
	if v.Style == font.StyleItalic && !HasItalic(v.Family) {
		v.Style = font.StyleNormal
	}
	return v
}

// ResourceFor resolves v and returns the font file whose canonical name
// indicates the resolved weight and style. The second return value is
// false if no resource matches, which cannot happen for catalog-resolved
// variants unless the family tables are inconsistent.
func ResourceFor(v Variant) (Resource, bool) {
	v = Resolve(v)
	italic := v.Style == font.StyleItalic
	for _, r := range Resources(v.Family) {
		name := strings.ToLower(r.CanonicalName)
		if strings.Contains(name, "italic") != italic {
			continue
		}
		if nameIndicatesWeight(name, v.Weight) {
			return r, true
		}
	}
	return Resource{}, false
}

// CanonicalName resolves v and returns the canonical name of the matching
// font file.
func CanonicalName(v Variant) (string, bool) {
	r, ok := ResourceFor(v)
	if !ok {
		return "", false
	}
	return r.CanonicalName, true
}

// weightKeywords are the weight indicators probed by nameIndicatesWeight.
// "light" also covers "extralight" and "ultralight", "bold" also covers
// "semibold" and "extrabold".
var weightKeywords = []string{
	"thin", "light", "medium", "semibold", "bold", "heavy", "black",
}

func hasWeightKeyword(name string) bool {
	for _, kw := range weightKeywords {
		if strings.Contains(name, kw) {
			return true
		}
	}
	return false
}

// nameIndicatesWeight classifies a lower-cased canonical font name
// against a weight. The keyword classes are mutually exclusive: "light"
// does not match names carrying "extralight" or "ultralight", and "bold"
// does not match names carrying "semibold" or "extrabold". A name without
// any weight keyword counts as regular.
func nameIndicatesWeight(name string, w font.Weight) bool {
	switch w {
	case font.WeightThin:
		return strings.Contains(name, "thin")
	case font.WeightExtraLight:
		return strings.Contains(name, "extralight") || strings.Contains(name, "ultralight")
	case font.WeightLight:
		return strings.Contains(name, "light") &&
			!strings.Contains(name, "extralight") &&
			!strings.Contains(name, "ultralight")
	case font.WeightRegular:
		if strings.Contains(name, "regular") {
			return true
		}
		return !hasWeightKeyword(name)
	case font.WeightMedium:
		return strings.Contains(name, "medium")
	case font.WeightSemiBold:
		return strings.Contains(name, "semibold")
	case font.WeightBold:
		return strings.Contains(name, "bold") &&
			!strings.Contains(name, "semibold") &&
			!strings.Contains(name, "extrabold")
	case font.WeightExtraBold:
		return strings.Contains(name, "extrabold") || strings.Contains(name, "heavy")
	case font.WeightBlack:
		return strings.Contains(name, "black")
	}
	return false
}
