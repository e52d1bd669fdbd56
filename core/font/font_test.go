package font

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

type ws struct {
	w Weight
	s Style
}

func TestFallbackFontSelection(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "accessiblefonts.font")
	defer teardown()
	//
	for k, v := range map[string]ws{
		"Go Regular":       {WeightRegular, StyleNormal},
		"Go Italic":        {WeightThin, StyleItalic},
		"Go Medium":        {WeightMedium, StyleNormal},
		"Go Medium Italic": {WeightSemiBold, StyleItalic},
		"Go Bold":          {WeightBlack, StyleNormal},
		"Go Bold Italic":   {WeightBold, StyleItalic},
	} {
		f := FallbackFont(v.w, v.s)
		if f == nil || f.SFNT == nil {
			t.Fatalf("fallback font for %v/%v did not load", v.w, v.s)
		}
		if f.Fontname != k {
			t.Errorf("expected fallback %q for %v/%v, have %q", k, v.w, v.s, f.Fontname)
		}
	}
}

func TestFallbackFontCached(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "accessiblefonts.font")
	defer teardown()
	//
	f1 := FallbackFont(WeightRegular, StyleNormal)
	f2 := FallbackFont(WeightLight, StyleNormal)
	if f1 != f2 {
		t.Errorf("fallback fonts for nearby weights should be the identical instance")
	}
}

func TestPrepareCase(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "accessiblefonts.font")
	defer teardown()
	//
	f := FallbackFont(WeightRegular, StyleNormal)
	tc, err := f.PrepareCase(12.0)
	if err != nil {
		t.Fatal(err)
	}
	if tc.PtSize() != 12.0 {
		t.Errorf("expected 12pt typecase, have %.2f", tc.PtSize())
	}
	if tc.ScalableFontParent() != f {
		t.Errorf("typecase should remember its scalable font parent")
	}
	if tc.Face() == nil {
		t.Errorf("typecase should carry a drawable face")
	}
}

func TestPrepareCaseClampsSize(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "accessiblefonts.font")
	defer teardown()
	//
	f := FallbackFont(WeightRegular, StyleNormal)
	tc, err := f.PrepareCase(1000.0)
	if err != nil {
		t.Fatal(err)
	}
	if tc.PtSize() != 10.0 {
		t.Errorf("out-of-range size should clamp to 10pt, have %.2f", tc.PtSize())
	}
}
