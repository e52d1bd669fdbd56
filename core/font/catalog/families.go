package catalog

import (
	"github.com/ezefranca/AccessibleFonts/core/font"
)

// Family is one of the accessibility typefaces bundled with this module.
type Family int

// The bundled font families.
const (
	Andika Family = iota
	AtkinsonHyperlegible
	ComicNeue
	Lexend
	Luciole
	OpenDyslexic
)

// Families returns all bundled families.
func Families() []Family {
	return []Family{
		Andika, AtkinsonHyperlegible, ComicNeue,
		Lexend, Luciole, OpenDyslexic,
	}
}

func (f Family) String() string {
	switch f {
	case Andika:
		return "Andika"
	case AtkinsonHyperlegible:
		return "AtkinsonHyperlegible"
	case ComicNeue:
		return "ComicNeue"
	case Lexend:
		return "Lexend"
	case Luciole:
		return "Luciole"
	case OpenDyslexic:
		return "OpenDyslexic"
	}
	return "Family(unknown)"
}

// DisplayName returns the family name as presented to users.
func (f Family) DisplayName() string {
	switch f {
	case AtkinsonHyperlegible:
		return "Atkinson Hyperlegible"
	case ComicNeue:
		return "Comic Neue"
	}
	return f.String()
}

// Folder returns the family's folder name below the bundle's Fonts/ and
// Licenses/ directories.
func (f Family) Folder() string {
	switch f {
	case AtkinsonHyperlegible:
		return "Atkinson-Hyperlegible"
	case ComicNeue:
		return "Comic-Neue"
	}
	return f.String()
}

// Resource describes one physical font file belonging to a family.
type Resource struct {
	FileName      string // file name without extension
	FileExtension string // "ttf" or "otf"
	CanonicalName string // the name the font index knows the file by
}

// FullFileName returns the complete file name of the resource.
func (r Resource) FullFileName() string {
	return r.FileName + "." + r.FileExtension
}

// Resources returns the font files a family ships, ordered by ascending
// weight, normal style before italic. The returned slice is never empty.
func Resources(f Family) []Resource {
	switch f {
	case Andika:
		return []Resource{
			{"Andika-Regular", "ttf", "Andika-Regular"},
			{"Andika-Italic", "ttf", "Andika-Italic"},
			{"Andika-Bold", "ttf", "Andika-Bold"},
			{"Andika-BoldItalic", "ttf", "Andika-BoldItalic"},
		}
	case AtkinsonHyperlegible:
		return []Resource{
			{"AtkinsonHyperlegible-Regular", "ttf", "AtkinsonHyperlegible-Regular"},
			{"AtkinsonHyperlegible-Italic", "ttf", "AtkinsonHyperlegible-Italic"},
			{"AtkinsonHyperlegible-Bold", "ttf", "AtkinsonHyperlegible-Bold"},
			{"AtkinsonHyperlegible-BoldItalic", "ttf", "AtkinsonHyperlegible-BoldItalic"},
		}
	case ComicNeue:
		return []Resource{
			{"ComicNeue-Light", "ttf", "ComicNeue-Light"},
			{"ComicNeue-LightItalic", "ttf", "ComicNeue-LightItalic"},
			{"ComicNeue-Regular", "ttf", "ComicNeue-Regular"},
			{"ComicNeue-Italic", "ttf", "ComicNeue-Italic"},
			{"ComicNeue-Bold", "ttf", "ComicNeue-Bold"},
			{"ComicNeue-BoldItalic", "ttf", "ComicNeue-BoldItalic"},
		}
	case Lexend:
		return []Resource{
			{"Lexend-Thin", "ttf", "Lexend-Thin"},
			{"Lexend-ExtraLight", "ttf", "Lexend-ExtraLight"},
			{"Lexend-Light", "ttf", "Lexend-Light"},
			{"Lexend-Regular", "ttf", "Lexend-Regular"},
			{"Lexend-Medium", "ttf", "Lexend-Medium"},
			{"Lexend-SemiBold", "ttf", "Lexend-SemiBold"},
			{"Lexend-Bold", "ttf", "Lexend-Bold"},
			{"Lexend-ExtraBold", "ttf", "Lexend-ExtraBold"},
			{"Lexend-Black", "ttf", "Lexend-Black"},
		}
	case Luciole:
		return []Resource{
			{"Luciole-Regular", "ttf", "Luciole-Regular"},
			{"Luciole-Regular-Italic", "ttf", "Luciole-Regular-Italic"},
			{"Luciole-Bold", "ttf", "Luciole-Bold"},
			{"Luciole-Bold-Italic", "ttf", "Luciole-Bold-Italic"},
		}
	case OpenDyslexic:
		return []Resource{
			{"OpenDyslexic-Regular", "otf", "OpenDyslexic-Regular"},
			{"OpenDyslexic-Italic", "otf", "OpenDyslexic-Italic"},
			{"OpenDyslexic-Bold", "otf", "OpenDyslexic-Bold"},
			{"OpenDyslexic-Bold-Italic", "otf", "OpenDyslexic-Bold-Italic"},
		}
	}
	return nil
}

// AvailableWeights returns the subset of the nine weights a family
// actually ships, in ascending order. It matches the weights implied by
// Resources exactly.
func AvailableWeights(f Family) []font.Weight {
	switch f {
	case ComicNeue:
		return []font.Weight{font.WeightLight, font.WeightRegular, font.WeightBold}
	case Lexend:
		return font.AllWeights()
	}
	return []font.Weight{font.WeightRegular, font.WeightBold}
}

// HasItalic returns true if the family ships any italic face.
func HasItalic(f Family) bool {
	return f != Lexend
}
