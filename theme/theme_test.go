package theme

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/gg"
)

func mustDefault(t *testing.T) *Theme {
	t.Helper()
	th, err := Default()
	if err != nil {
		t.Fatalf("Default() error: %v", err)
	}
	return th
}

func TestDefault(t *testing.T) {
	th := mustDefault(t)

	if th.TitleFace() == nil || th.SubtitleFace() == nil {
		t.Fatal("Default() should provide title and subtitle faces")
	}
	if got := th.TitleFace().Size(); got != DefaultTitleSize {
		t.Errorf("title face size = %v, want %v", got, DefaultTitleSize)
	}
	if got := th.SubtitleFace().Size(); got != DefaultSubtitleSize {
		t.Errorf("subtitle face size = %v, want %v", got, DefaultSubtitleSize)
	}
	if th.AccentOpacity != 0.8 {
		t.Errorf("AccentOpacity = %v, want 0.8", th.AccentOpacity)
	}
	if th.Shadow.A != 0.25 {
		t.Errorf("Shadow alpha = %v, want 0.25", th.Shadow.A)
	}
}

func TestBasicHasNoFaces(t *testing.T) {
	th := Basic()
	if th.TitleFace() != nil || th.SubtitleFace() != nil {
		t.Error("Basic() should not load fonts")
	}
	if th.Accent != mustDefault(t).Accent {
		t.Error("Basic() and Default() disagree on the accent color")
	}

	th.SetTitleSize(25)
	if th.TitleSize() != 25 || th.TitleFace() != nil {
		t.Error("size change without a font should only record the size")
	}
}

func TestSizeSetters(t *testing.T) {
	th := mustDefault(t)
	th.SetTitleSize(30)
	th.SetSubtitleSize(-1)

	if got := th.TitleFace().Size(); got != 30 {
		t.Errorf("title face size = %v, want 30", got)
	}
	if got := th.SubtitleSize(); got != DefaultSubtitleSize {
		t.Errorf("negative size should be ignored, got %v", got)
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want gg.RGBA
		err  bool
	}{
		{"#FFFFFF", gg.White, false},
		{"000", gg.Black, false},
		{"#00000080", gg.RGBA2(0, 0, 0, 128.0/255), false},
		{"#12345", gg.RGBA{}, true},
		{"#GGGGGG", gg.RGBA{}, true},
		{"", gg.RGBA{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if tt.err {
				if !errors.Is(err, ErrInvalidColor) {
					t.Fatalf("ParseColor(%q) error = %v, want ErrInvalidColor", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseColor(%q) error: %v", tt.in, err)
			}
			if math.Abs(got.R-tt.want.R) > 1e-3 || math.Abs(got.A-tt.want.A) > 1e-3 {
				t.Errorf("ParseColor(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestApply(t *testing.T) {
	th := mustDefault(t)
	doc := []byte(`
accent: "#FF0000"
accent_opacity: 0.5
title_size: 24
icon_size: 30
`)
	if err := th.Apply(doc); err != nil {
		t.Fatalf("Apply() error: %v", err)
	}
	if th.Accent.R != 1 || th.Accent.G != 0 {
		t.Errorf("Accent = %+v, want red", th.Accent)
	}
	if th.AccentOpacity != 0.5 {
		t.Errorf("AccentOpacity = %v, want 0.5", th.AccentOpacity)
	}
	if th.TitleFace().Size() != 24 {
		t.Errorf("title face size = %v, want 24", th.TitleFace().Size())
	}
	if th.IconSize != 30 {
		t.Errorf("IconSize = %v, want 30", th.IconSize)
	}
	if th.Paper != gg.White {
		t.Errorf("unset keys should keep defaults, Paper = %+v", th.Paper)
	}
}

func TestApplyErrorsLeaveThemeUnchanged(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"bad color", `primary: "#XYZ"`},
		{"opacity out of range", `accent_opacity: 2`},
		{"missing font", `title_font: /nonexistent/font.ttf`},
		{"bad yaml", `accent: [`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			th := mustDefault(t)
			before := th.Primary
			if err := th.Apply([]byte(`primary: "#FF0000"` + "\n" + tt.doc)); err == nil {
				t.Fatal("Apply() should fail")
			}
			if th.Primary != before {
				t.Errorf("theme modified by failed Apply: Primary = %+v", th.Primary)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.yaml")
	if err := os.WriteFile(path, []byte("surface: \"#EEEEEE\"\nsubtitle_size: 12\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	th, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if math.Abs(th.Surface.R-0xEE/255.0) > 1e-3 {
		t.Errorf("Surface = %+v", th.Surface)
	}
	if th.SubtitleFace().Size() != 12 {
		t.Errorf("subtitle size = %v, want 12", th.SubtitleFace().Size())
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() of a missing file should fail")
	}
}
