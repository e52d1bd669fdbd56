package font

import (
	"os"
	"sync"

	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/gomediumitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// ScalableFont is a parsed font program, held in memory and usable at
// any size.
type ScalableFont struct {
	Fontname string
	Filepath string     // file path, or "internal" for built-in fonts
	Binary   []byte     // raw data
	SFNT     *sfnt.Font // the font's container
}

// TypeCase is a scalable font prepared at a concrete point size.
type TypeCase struct {
	scalableFontParent *ScalableFont
	font               xfont.Face // Go uses 'face' and 'font' in an inverse manner
	size               float64
}

// LoadOpenTypeFont reads and parses an OpenType or TrueType font file.
func LoadOpenTypeFont(fontfile string) (*ScalableFont, error) {
	bytez, err := os.ReadFile(fontfile)
	if err != nil {
		return nil, err
	}
	f, err := ParseOpenTypeFont(bytez)
	if err != nil {
		return nil, err
	}
	f.Filepath = fontfile
	return f, nil
}

// ParseOpenTypeFont parses binary OpenType or TrueType font data.
func ParseOpenTypeFont(fbytes []byte) (f *ScalableFont, err error) {
	f = &ScalableFont{Binary: fbytes}
	f.SFNT, err = sfnt.Parse(f.Binary)
	if err != nil {
		return nil, err
	}
	f.Fontname, _ = f.SFNT.Name(nil, sfnt.NameIDFull)
	return
}

// PrepareCase scales sf to a given point size. Sizes are clamped to
// 5pt…500pt.
func (sf *ScalableFont) PrepareCase(fontsize float64) (*TypeCase, error) {
	typecase := &TypeCase{}
	typecase.scalableFontParent = sf
	if fontsize < 5.0 || fontsize > 500.0 {
		tracer().Infof("font size must be 5pt < size < 500pt, is %g (set to 10pt)", fontsize)
		fontsize = 10.0
	}
	options := &opentype.FaceOptions{
		Size: fontsize,
		DPI:  600,
	}
	f, err := opentype.NewFace(sf.SFNT, options)
	if err == nil {
		typecase.font = f
		typecase.size = fontsize
	}
	return typecase, err
}

// ScalableFontParent returns the scalable font tc was derived from.
func (tc *TypeCase) ScalableFontParent() *ScalableFont {
	return tc.scalableFontParent
}

// Face returns the drawable face of tc.
func (tc *TypeCase) Face() xfont.Face {
	return tc.font
}

// PtSize returns the point size of tc.
func (tc *TypeCase) PtSize() float64 {
	return tc.size
}

// --- Fallback fonts --------------------------------------------------------

// FallbackFont returns a built-in font to be used if everything else
// fails. It is always present. The Go fonts ship in regular, medium and
// bold weights, each with an italic companion; the returned font is the
// variant closest to the requested weight and style.
func FallbackFont(weight Weight, style Style) *ScalableFont {
	name, ttf := fallbackTTF(weight, style)
	fallbackMx.Lock()
	defer fallbackMx.Unlock()
	if f, ok := fallbackFonts[name]; ok {
		return f
	}
	f := &ScalableFont{
		Fontname: name,
		Filepath: "internal",
		Binary:   ttf,
	}
	var err error
	f.SFNT, err = sfnt.Parse(f.Binary)
	if err != nil {
		panic("cannot load built-in fallback font") // this cannot happen
	}
	fallbackFonts[name] = f
	return f
}

var fallbackMx sync.Mutex
var fallbackFonts = make(map[string]*ScalableFont)

func fallbackTTF(weight Weight, style Style) (string, []byte) {
	italic := style == StyleItalic
	switch {
	case weight.Value() <= 450:
		if italic {
			return "Go Italic", goitalic.TTF
		}
		return "Go Regular", goregular.TTF
	case weight.Value() < 650:
		if italic {
			return "Go Medium Italic", gomediumitalic.TTF
		}
		return "Go Medium", gomedium.TTF
	default:
		if italic {
			return "Go Bold Italic", gobolditalic.TTF
		}
		return "Go Bold", gobold.TTF
	}
}
