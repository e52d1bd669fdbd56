package fontregistry

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/ezefranca/AccessibleFonts/core/font"
)

// Registry is the process-wide index of fonts known to the host process,
// keyed by normalized canonical name.
type Registry struct {
	sync.Mutex
	fonts     map[string]*font.ScalableFont
	typecases map[string]*font.TypeCase
}

var globalFontRegistry *Registry

var globalRegistryCreation sync.Once

// GlobalRegistry is an application-wide singleton holding all fonts and
// typecases known to the process.
func GlobalRegistry() *Registry {
	globalRegistryCreation.Do(func() {
		globalFontRegistry = NewRegistry()
	})
	return globalFontRegistry
}

// NewRegistry creates an empty font index.
func NewRegistry() *Registry {
	return &Registry{
		fonts:     make(map[string]*font.ScalableFont),
		typecases: make(map[string]*font.TypeCase),
	}
}

// StoreFont pushes a font into the registry if it isn't contained yet.
//
// The font will be stored using normalizedName as a key. If this key is
// already associated with a font, that font will not be overridden:
// re-registering an already known name is a benign no-op.
func (fr *Registry) StoreFont(normalizedName string, f *font.ScalableFont) {
	if f == nil {
		tracer().Errorf("registry cannot store null font")
		return
	}
	fr.Lock()
	defer fr.Unlock()
	if _, ok := fr.fonts[normalizedName]; ok {
		tracer().Debugf("registry already contains font %s", normalizedName)
		return
	}
	tracer().Debugf("registry stores font %s as %s", f.Fontname, normalizedName)
	fr.fonts[normalizedName] = f
}

// HasFont returns true if a font is stored under normalizedName.
func (fr *Registry) HasFont(normalizedName string) bool {
	fr.Lock()
	defer fr.Unlock()
	_, ok := fr.fonts[normalizedName]
	return ok
}

// TypeCase returns a typecase of a given size, derived from the font
// stored under normalizedName. If a suitable typecase has already been
// cached, the cached one is returned.
//
// If no font is stored under normalizedName, TypeCase derives a typecase
// from a built-in fallback font matched by weight and style, and returns
// it together with an error message. Callers therefore always receive a
// usable typecase.
func (fr *Registry) TypeCase(normalizedName string, weight font.Weight, style font.Style,
	size float64) (*font.TypeCase, error) {
	//
	tracer().Debugf("registry searches for font %s at %.2f", normalizedName, size)
	tname := appendSize(normalizedName, size)
	fr.Lock()
	defer fr.Unlock()
	if t, ok := fr.typecases[tname]; ok {
		tracer().Debugf("registry found typecase %s", tname)
		return t, nil
	}
	if f, ok := fr.fonts[normalizedName]; ok {
		t, err := f.PrepareCase(size)
		tracer().Infof("font registry has font %s, caches at %.2f", normalizedName, size)
		fr.typecases[tname] = t
		return t, err
	}
	tracer().Infof("registry does not contain font %s", normalizedName)
	err := errors.New("font " + normalizedName + " not found in registry")
	//
	// store a typecase from the fallback font, if not present yet, and return it
	f := font.FallbackFont(weight, style)
	fname := NormalizeFontname(f.Fontname)
	tname = appendSize(fname, size)
	if t, ok := fr.typecases[tname]; ok {
		return t, err
	}
	t, _ := f.PrepareCase(size)
	tracer().Infof("font registry caches fallback font %s at %.2f", fname, size)
	if _, ok := fr.fonts[fname]; !ok {
		fr.fonts[fname] = f
	}
	fr.typecases[tname] = t
	return t, err
}

// LogFontList is a helper function to dump the list of known fonts and
// typecases in a registry to the trace-file (log-level Info).
func (fr *Registry) LogFontList() {
	fr.Lock()
	defer fr.Unlock()
	tracer().Infof("--- registered fonts ---")
	for k, v := range fr.fonts {
		tracer().Infof("font [%s] = %v", k, v.Fontname)
	}
	for k, v := range fr.typecases {
		tracer().Infof("typecase [%s] = %v", k, v.ScalableFontParent().Fontname)
	}
	tracer().Infof("------------------------")
}

// NormalizeFontname trims a font name, replaces spaces by underscores,
// drops a file extension and lower-cases the result.
func NormalizeFontname(fname string) string {
	fname = strings.TrimSpace(fname)
	fname = strings.ReplaceAll(fname, " ", "_")
	if dot := strings.LastIndex(fname, "."); dot > 0 {
		fname = fname[:dot]
	}
	return strings.ToLower(fname)
}

func appendSize(fname string, size float64) string {
	return fmt.Sprintf("%s-%.2f", fname, size)
}
