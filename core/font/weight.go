package font

import (
	"strconv"

	xfont "golang.org/x/image/font"
)

// Weight is the stroke-thickness class of a typeface, on the CSS scale
// from 100 (thin) to 900 (black). Weights are totally ordered by their
// numeric value.
type Weight int

// The nine CSS font-weight classes.
const (
	WeightThin       Weight = 100
	WeightExtraLight Weight = 200
	WeightLight      Weight = 300
	WeightRegular    Weight = 400
	WeightMedium     Weight = 500
	WeightSemiBold   Weight = 600
	WeightBold       Weight = 700
	WeightExtraBold  Weight = 800
	WeightBlack      Weight = 900
)

// AllWeights returns the nine known weights in ascending numeric order.
func AllWeights() []Weight {
	return []Weight{
		WeightThin, WeightExtraLight, WeightLight,
		WeightRegular, WeightMedium, WeightSemiBold,
		WeightBold, WeightExtraBold, WeightBlack,
	}
}

// Value returns the CSS font-weight value of w.
func (w Weight) Value() int {
	return int(w)
}

func (w Weight) String() string {
	switch w {
	case WeightThin:
		return "Thin"
	case WeightExtraLight:
		return "ExtraLight"
	case WeightLight:
		return "Light"
	case WeightRegular:
		return "Regular"
	case WeightMedium:
		return "Medium"
	case WeightSemiBold:
		return "SemiBold"
	case WeightBold:
		return "Bold"
	case WeightExtraBold:
		return "ExtraBold"
	case WeightBlack:
		return "Black"
	}
	return "Weight(" + strconv.Itoa(int(w)) + ")"
}

// XFontWeight converts w to the weight scale of golang.org/x/image/font,
// where CSS weight 400 maps to 0.
func (w Weight) XFontWeight() xfont.Weight {
	return xfont.Weight(int(w)/100 - 4)
}

// Style is the slant variant of a typeface: normal or italic.
type Style int

// The two supported slant styles.
const (
	StyleNormal Style = iota
	StyleItalic
)

func (s Style) String() string {
	if s == StyleItalic {
		return "italic"
	}
	return "normal"
}

// XFontStyle converts s to the style type of golang.org/x/image/font.
func (s Style) XFontStyle() xfont.Style {
	if s == StyleItalic {
		return xfont.StyleItalic
	}
	return xfont.StyleNormal
}
