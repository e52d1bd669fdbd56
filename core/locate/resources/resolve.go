package resources

import (
	"fmt"
	"io/fs"
	"os"
	"path"

	"github.com/ezefranca/AccessibleFonts/core"
	"github.com/flopp/go-findfont"
	"github.com/npillmayer/schuko/gconf"
)

// Bundle layout, relative to the resource root.
const (
	fontsDir      = "Fonts"
	licensesDir   = "Licenses"
	licenseSuffix = "-LICENSE.txt"
)

// ConfigRootKey is the global configuration key naming the resource root
// folder.
const ConfigRootKey = "accessiblefonts-root"

// NotFound returns an application error for a missing resource, carrying
// error code core.EMISSING.
func NotFound(res string) error {
	e := fmt.Errorf("resource missing: %v", res)
	return core.WrapError(e, core.EMISSING, fmt.Sprintf("font resource not found: %s", res))
}

// Location addresses a physical resource file. Path is relative to FS,
// or an absolute file-system path if FS is nil.
type Location struct {
	FS   fs.FS
	Path string
}

// Bytes reads the located file.
func (loc Location) Bytes() ([]byte, error) {
	if loc.FS == nil {
		return os.ReadFile(loc.Path)
	}
	return fs.ReadFile(loc.FS, loc.Path)
}

// Locator finds the physical files of bundled font families.
type Locator interface {
	// Font locates one font resource file within a family folder.
	Font(folder string, filename string) (Location, error)
	// License returns the license text of a family folder.
	License(folder string) ([]byte, error)
}

// FSLocator returns a locator over a file system laid out in the bundle
// convention.
func FSLocator(fsys fs.FS) Locator {
	return fsLocator{fsys: fsys}
}

// DirLocator returns a locator over a bundle directory on disk.
func DirLocator(root string) Locator {
	return fsLocator{fsys: os.DirFS(root)}
}

type fsLocator struct {
	fsys fs.FS
}

func (l fsLocator) Font(folder, filename string) (Location, error) {
	p := path.Join(fontsDir, folder, filename)
	if _, err := fs.Stat(l.fsys, p); err != nil {
		return Location{}, NotFound(p)
	}
	return Location{FS: l.fsys, Path: p}, nil
}

func (l fsLocator) License(folder string) ([]byte, error) {
	p := path.Join(licensesDir, folder+licenseSuffix)
	data, err := fs.ReadFile(l.fsys, p)
	if err != nil {
		return nil, NotFound(p)
	}
	return data, nil
}

// WithSystemFallback wraps a locator such that a font file missing from
// the bundle is searched for among the fonts installed on the system.
func WithSystemFallback(l Locator) Locator {
	return systemFallback{Locator: l}
}

type systemFallback struct {
	Locator
}

func (l systemFallback) Font(folder, filename string) (Location, error) {
	loc, err := l.Locator.Font(folder, filename)
	if err == nil {
		return loc, nil
	}
	fpath, ferr := findfont.Find(filename)
	if ferr != nil || fpath == "" {
		return Location{}, err
	}
	tracer().Debugf("%s found as system font at %s", filename, fpath)
	return Location{Path: fpath}, nil
}

// RootDirPath returns the resource root folder, taken as ConfigRootKey
// from the global configuration. It defaults to the current working
// directory.
func RootDirPath() string {
	root := gconf.GetString(ConfigRootKey)
	if root == "" {
		root = "."
	}
	return root
}

// DefaultLocator locates resources below the configured resource root,
// falling back to fonts installed on the system.
func DefaultLocator() Locator {
	return WithSystemFallback(DirLocator(RootDirPath()))
}
