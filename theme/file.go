package theme

import (
	"fmt"
	"os"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"gopkg.in/yaml.v3"
)

// file is the YAML representation of a theme. Nil fields keep the base value.
type file struct {
	Accent        *string  `yaml:"accent"`
	Surface       *string  `yaml:"surface"`
	Paper         *string  `yaml:"paper"`
	Ink           *string  `yaml:"ink"`
	Primary       *string  `yaml:"primary"`
	Secondary     *string  `yaml:"secondary"`
	Shadow        *string  `yaml:"shadow"`
	AccentOpacity *float64 `yaml:"accent_opacity"`
	TitleSize     *float64 `yaml:"title_size"`
	SubtitleSize  *float64 `yaml:"subtitle_size"`
	IconSize      *float64 `yaml:"icon_size"`
	TitleFont     string   `yaml:"title_font"`
	SubtitleFont  string   `yaml:"subtitle_font"`
}

// Load reads a YAML theme file and applies it on top of the default theme.
func Load(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("theme: read %s: %w", path, err)
	}
	base, err := Default()
	if err != nil {
		return nil, err
	}
	if err := base.Apply(data); err != nil {
		return nil, fmt.Errorf("theme: %s: %w", path, err)
	}
	return base, nil
}

// Apply overrides t with the settings in a YAML document. On error t is
// left unchanged.
func (t *Theme) Apply(data []byte) error {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("theme: parse: %w", err)
	}

	next := *t
	colors := []struct {
		src *string
		dst *gg.RGBA
	}{
		{f.Accent, &next.Accent},
		{f.Surface, &next.Surface},
		{f.Paper, &next.Paper},
		{f.Ink, &next.Ink},
		{f.Primary, &next.Primary},
		{f.Secondary, &next.Secondary},
		{f.Shadow, &next.Shadow},
	}
	for _, c := range colors {
		if c.src == nil {
			continue
		}
		col, err := ParseColor(*c.src)
		if err != nil {
			return err
		}
		*c.dst = col
	}

	if f.AccentOpacity != nil {
		if *f.AccentOpacity < 0 || *f.AccentOpacity > 1 {
			return fmt.Errorf("theme: accent_opacity %g outside [0, 1]", *f.AccentOpacity)
		}
		next.AccentOpacity = *f.AccentOpacity
	}
	if f.IconSize != nil && *f.IconSize > 0 {
		next.IconSize = *f.IconSize
	}
	if f.TitleSize != nil && *f.TitleSize > 0 {
		next.titleSize = *f.TitleSize
	}
	if f.SubtitleSize != nil && *f.SubtitleSize > 0 {
		next.subtitleSize = *f.SubtitleSize
	}
	if f.TitleFont != "" {
		src, err := text.NewFontSourceFromFile(f.TitleFont)
		if err != nil {
			return fmt.Errorf("theme: title_font: %w", err)
		}
		next.titleSource = src
	}
	if f.SubtitleFont != "" {
		src, err := text.NewFontSourceFromFile(f.SubtitleFont)
		if err != nil {
			return fmt.Errorf("theme: subtitle_font: %w", err)
		}
		next.subtitleSource = src
	}

	next.refreshFaces()
	*t = next
	return nil
}
