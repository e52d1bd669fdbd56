package fontregistry

import (
	"testing"

	"github.com/ezefranca/AccessibleFonts/core/font"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestNormalizeFontname(t *testing.T) {
	for k, v := range map[string]string{
		"Lexend-Regular":          "lexend-regular",
		"OpenDyslexic-Bold.otf":   "opendyslexic-bold",
		"  Atkinson Hyperlegible": "atkinson_hyperlegible",
	} {
		if n := NormalizeFontname(k); n != v {
			t.Errorf("expected %q to normalize to %q, have %q", k, v, n)
		}
	}
}

func TestStoreFontDoesNotOverride(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "accessiblefonts.registry")
	defer teardown()
	//
	fr := NewRegistry()
	f1 := font.FallbackFont(font.WeightRegular, font.StyleNormal)
	f2 := font.FallbackFont(font.WeightBold, font.StyleNormal)
	fr.StoreFont("somefont", f1)
	fr.StoreFont("somefont", f2)
	if !fr.HasFont("somefont") {
		t.Fatalf("registry should contain stored font")
	}
	tc, err := fr.TypeCase("somefont", font.WeightRegular, font.StyleNormal, 11.0)
	if err != nil {
		t.Fatal(err)
	}
	if tc.ScalableFontParent() != f1 {
		t.Errorf("second store must not override the first font")
	}
}

func TestTypeCaseCached(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "accessiblefonts.registry")
	defer teardown()
	//
	fr := NewRegistry()
	fr.StoreFont("somefont", font.FallbackFont(font.WeightRegular, font.StyleNormal))
	t1, err := fr.TypeCase("somefont", font.WeightRegular, font.StyleNormal, 11.0)
	if err != nil {
		t.Fatal(err)
	}
	t2, err := fr.TypeCase("somefont", font.WeightRegular, font.StyleNormal, 11.0)
	if err != nil {
		t.Fatal(err)
	}
	if t1 != t2 {
		t.Errorf("expected cached typecase on second lookup")
	}
	t3, _ := fr.TypeCase("somefont", font.WeightRegular, font.StyleNormal, 12.0)
	if t3 == t1 {
		t.Errorf("different sizes must yield different typecases")
	}
}

func TestTypeCaseFallback(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "accessiblefonts.registry")
	defer teardown()
	//
	fr := NewRegistry()
	tc, err := fr.TypeCase("no-such-font", font.WeightBold, font.StyleItalic, 11.0)
	if err == nil {
		t.Errorf("expected an error for an unknown font name")
	}
	if tc == nil {
		t.Fatalf("typecase is nil, should be a fallback")
	}
	if tc.ScalableFontParent().Fontname != "Go Bold Italic" {
		t.Errorf("expected bold italic fallback, have %s", tc.ScalableFontParent().Fontname)
	}
}
