// Package theme holds the colors, fonts and sizes used by folderview
// components.
//
// [Default] returns the built-in look: a purple folder with white paper and
// the Go fonts. Theme files written in YAML override any subset of it:
//
//	accent: "#AF52DE"
//	secondary: "#3C3C4399"
//	title_size: 22
//	title_font: /usr/share/fonts/Inter-SemiBold.ttf
package theme

import (
	"errors"
	"fmt"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomedium"
)

// Default sizes, in points.
const (
	DefaultTitleSize    = 20
	DefaultSubtitleSize = 17
	DefaultIconSize     = 22
)

// ErrInvalidColor is returned when a color string is not a hex color.
var ErrInvalidColor = errors.New("theme: invalid color")

// Theme is the look shared by the folder components.
//
// Faces are derived from the font sources and sizes; use SetTitleFont,
// SetSubtitleFont and the size setters instead of assigning faces directly.
type Theme struct {
	// Accent fills the folder and its footer.
	Accent gg.RGBA
	// Surface is painted below the translucent accent in the folder band.
	Surface gg.RGBA
	// Paper is the sheet peeking out of the folder.
	Paper gg.RGBA
	// Ink draws the faint lines on the paper.
	Ink gg.RGBA
	// Primary and Secondary are the title and subtitle text colors.
	Primary   gg.RGBA
	Secondary gg.RGBA
	// Shadow is the color of drop shadows.
	Shadow gg.RGBA

	// AccentOpacity is the opacity of the accent over Surface in the folder band.
	AccentOpacity float64
	// IconSize is the point size of the "more" icon.
	IconSize float64

	titleSource    *text.FontSource
	subtitleSource *text.FontSource
	titleSize      float64
	subtitleSize   float64
	titleFace      text.Face
	subtitleFace   text.Face
}

// Default returns the built-in theme. It fails only if the bundled fonts
// cannot be parsed.
func Default() (*Theme, error) {
	title, err := text.NewFontSource(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("theme: load title font: %w", err)
	}
	subtitle, err := text.NewFontSource(gomedium.TTF)
	if err != nil {
		return nil, fmt.Errorf("theme: load subtitle font: %w", err)
	}

	th := Basic()
	th.titleSource = title
	th.subtitleSource = subtitle
	th.refreshFaces()
	return th, nil
}

// Basic returns the built-in colors and sizes with no fonts. Text drawn
// with it is measured as empty and not painted.
func Basic() *Theme {
	return &Theme{
		Accent:        gg.Hex("#AF52DE"),
		Surface:       gg.White,
		Paper:         gg.White,
		Ink:           gg.Black,
		Primary:       gg.Black,
		Secondary:     gg.RGBA2(60.0/255, 60.0/255, 67.0/255, 0.6),
		Shadow:        gg.RGBA2(0, 0, 0, 0.25),
		AccentOpacity: 0.8,
		IconSize:      DefaultIconSize,
		titleSize:     DefaultTitleSize,
		subtitleSize:  DefaultSubtitleSize,
	}
}

// TitleFace returns the face used for titles.
func (t *Theme) TitleFace() text.Face { return t.titleFace }

// SubtitleFace returns the face used for subtitles.
func (t *Theme) SubtitleFace() text.Face { return t.subtitleFace }

// TitleSize returns the title point size.
func (t *Theme) TitleSize() float64 { return t.titleSize }

// SubtitleSize returns the subtitle point size.
func (t *Theme) SubtitleSize() float64 { return t.subtitleSize }

// SetTitleFont replaces the title font. A nil source keeps the current one.
func (t *Theme) SetTitleFont(src *text.FontSource) {
	if src != nil {
		t.titleSource = src
		t.refreshFaces()
	}
}

// SetSubtitleFont replaces the subtitle font. A nil source keeps the current one.
func (t *Theme) SetSubtitleFont(src *text.FontSource) {
	if src != nil {
		t.subtitleSource = src
		t.refreshFaces()
	}
}

// SetTitleSize changes the title point size. Non-positive sizes are ignored.
func (t *Theme) SetTitleSize(size float64) {
	if size > 0 {
		t.titleSize = size
		t.refreshFaces()
	}
}

// SetSubtitleSize changes the subtitle point size. Non-positive sizes are ignored.
func (t *Theme) SetSubtitleSize(size float64) {
	if size > 0 {
		t.subtitleSize = size
		t.refreshFaces()
	}
}

func (t *Theme) refreshFaces() {
	if t.titleSource != nil {
		t.titleFace = t.titleSource.Face(t.titleSize)
	}
	if t.subtitleSource != nil {
		t.subtitleFace = t.subtitleSource.Face(t.subtitleSize)
	}
}

// ParseColor parses "#RGB", "#RGBA", "#RRGGBB" or "#RRGGBBAA"; the leading
// '#' is optional.
func ParseColor(s string) (gg.RGBA, error) {
	hex := s
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}
	switch len(hex) {
	case 3, 4, 6, 8:
	default:
		return gg.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	for _, c := range hex {
		if !isHexDigit(c) {
			return gg.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
		}
	}
	return gg.Hex(hex), nil
}

func isHexDigit(c rune) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}
