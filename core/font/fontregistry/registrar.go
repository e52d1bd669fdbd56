package fontregistry

import (
	"sync"

	"github.com/emirpasic/gods/sets/hashset"
	"github.com/ezefranca/AccessibleFonts/core/font"
	"github.com/ezefranca/AccessibleFonts/core/font/catalog"
	"github.com/ezefranca/AccessibleFonts/core/locate/resources"
)

// Registrar coordinates the one-time registration of bundled font
// families with the font index. Registration of a family locates all of
// its font files, parses them and stores them in the index under their
// canonical names. This happens lazily, at most once per family and
// process, and is safe to trigger from any number of goroutines.
//
// Per family the registrar walks a simple state machine:
//
//	not started → registering → registered
//
// There is no transition out of "registered" (except Reset, which exists
// for tests). A caller hitting a family that is mid-registration on
// another goroutine returns successfully right away, without waiting for
// the other goroutine to finish. A font requested immediately after may
// therefore still resolve to the fallback font once; the next request
// will find the registered fonts.
type Registrar struct {
	mu          sync.Mutex // guards both sets
	registered  *hashset.Set
	registering *hashset.Set
	locator     resources.Locator
	index       *Registry
}

// NewRegistrar creates a registrar using the given locator and font
// index. A nil locator selects resources.DefaultLocator, a nil index the
// global font registry.
func NewRegistrar(locator resources.Locator, index *Registry) *Registrar {
	if locator == nil {
		locator = resources.DefaultLocator()
	}
	if index == nil {
		index = GlobalRegistry()
	}
	return &Registrar{
		registered:  hashset.New(),
		registering: hashset.New(),
		locator:     locator,
		index:       index,
	}
}

var globalRegistrar *Registrar

var globalRegistrarCreation sync.Once

// GlobalRegistrar is an application-wide registrar over the global font
// registry and the default locator. Applications which want to control
// locator or index explicitly should construct their own registrar with
// NewRegistrar and pass it around instead.
func GlobalRegistrar() *Registrar {
	globalRegistrarCreation.Do(func() {
		globalRegistrar = NewRegistrar(nil, nil)
	})
	return globalRegistrar
}

// Register registers all font files of a family with the font index.
// Registering an already registered family is a no-op. If another
// goroutine is currently registering the same family, Register returns
// successfully without waiting for it.
//
// A font file that cannot be located at all is a hard error, carrying
// error code core.EMISSING. Files that are located but rejected by the
// font index (corrupt data, or a name the index already knows) do not
// fail the registration; they are traced and skipped. The family counts
// as registered after the attempt either way, so a failed attempt is not
// retried.
func (r *Registrar) Register(fam catalog.Family) error {
	if r.IsRegistered(fam) {
		return nil
	}
	r.mu.Lock()
	if r.registered.Contains(fam) {
		r.mu.Unlock()
		return nil
	}
	if r.registering.Contains(fam) {
		r.mu.Unlock()
		return nil
	}
	r.registering.Add(fam)
	r.mu.Unlock()
	// the actual work happens outside the lock
	defer func() {
		r.mu.Lock()
		r.registering.Remove(fam)
		r.registered.Add(fam)
		r.mu.Unlock()
	}()
	return r.registerResources(fam)
}

type locatedResource struct {
	res catalog.Resource
	loc resources.Location
}

// registerResources locates every font file of fam, then feeds them to
// the font index one by one.
func (r *Registrar) registerResources(fam catalog.Family) error {
	rscs := catalog.Resources(fam)
	located := make([]locatedResource, 0, len(rscs))
	for _, res := range rscs {
		loc, err := r.locator.Font(fam.Folder(), res.FullFileName())
		if err != nil {
			tracer().Infof("font file %s of family %s is missing", res.FullFileName(), fam)
			return err
		}
		located = append(located, locatedResource{res, loc})
	}
	for _, l := range located {
		if err := r.indexResource(l.res, l.loc); err != nil {
			tracer().Debugf("registration of %s failed: %v", l.res.FullFileName(), err)
		}
	}
	return nil
}

// indexResource parses a located font file and stores it in the index
// under the resource's canonical name.
func (r *Registrar) indexResource(res catalog.Resource, loc resources.Location) error {
	data, err := loc.Bytes()
	if err != nil {
		return err
	}
	f, err := font.ParseOpenTypeFont(data)
	if err != nil {
		return err
	}
	f.Fontname = res.CanonicalName
	f.Filepath = loc.Path
	r.index.StoreFont(NormalizeFontname(res.CanonicalName), f)
	return nil
}

// RegisterAll registers every bundled family. A failing family does not
// keep later families from being attempted; the first error encountered
// is returned after all attempts have run.
func (r *Registrar) RegisterAll() error {
	var first error
	for _, fam := range catalog.Families() {
		if err := r.Register(fam); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// IsRegistered returns true if a registration attempt for the family has
// completed.
func (r *Registrar) IsRegistered(fam catalog.Family) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.registered.Contains(fam)
}

// RegisteredFamilies returns a snapshot of all families with a completed
// registration attempt.
func (r *Registrar) RegisteredFamilies() []catalog.Family {
	r.mu.Lock()
	defer r.mu.Unlock()
	fams := make([]catalog.Family, 0, r.registered.Size())
	for _, v := range r.registered.Values() {
		fams = append(fams, v.(catalog.Family))
	}
	return fams
}

// EnsureRegistered registers a family, swallowing any error. It backs
// every font-creation entry point: callers always end up with a usable
// typecase, at worst a fallback one.
func (r *Registrar) EnsureRegistered(fam catalog.Family) {
	if err := r.Register(fam); err != nil {
		tracer().Debugf("cannot register family %s: %v", fam, err)
	}
}

// Reset clears all registration state, so that the next Register does
// the work again. It exists for test isolation and must not be used in
// production code: fonts already pushed to the index stay there.
func (r *Registrar) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.registered.Clear()
	r.registering.Clear()
}

// TypeCase returns a typecase for the given family, weight and style at
// a point size, registering the family's font files on first use. The
// requested variant is resolved to the nearest one the family supports.
//
// TypeCase always returns a usable typecase: if the family's fonts
// cannot be registered, or the resolved canonical name is unknown to the
// index, a built-in font matched by weight and style is substituted and
// an error describing the shortfall is returned alongside it.
func (r *Registrar) TypeCase(fam catalog.Family, weight font.Weight, style font.Style,
	size float64) (*font.TypeCase, error) {
	//
	r.EnsureRegistered(fam)
	v := catalog.Resolve(catalog.Variant{Family: fam, Weight: weight, Style: style})
	name, ok := catalog.CanonicalName(v)
	if !ok {
		// cannot happen with consistent catalog tables
		tracer().Errorf("no canonical name for variant %v/%v/%v", v.Family, v.Weight, v.Style)
		name = v.Family.String()
	}
	return r.index.TypeCase(NormalizeFontname(name), v.Weight, v.Style, size)
}
