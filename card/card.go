// Package card provides the folder components: a [PaperStack] sheet and
// the composed [FolderCard].
//
// Both are [view.View] values and render through [view.Snapshot],
// [view.Record] or any [canvas.Canvas]:
//
//	dc, err := view.Snapshot(card.NewFolderCard(card.WithTitle("Taxes")), view.WithPadding(16))
//	if err != nil {
//		return err
//	}
//	return dc.SavePNG("folder.png")
package card

import (
	"sync"

	"github.com/gogpu/folderview"
	"github.com/gogpu/folderview/theme"
)

var defaultTheme = sync.OnceValue(func() *theme.Theme {
	th, err := theme.Default()
	if err != nil {
		folderview.Logger().Warn("card: bundled fonts unavailable, text disabled", "err", err)
		return theme.Basic()
	}
	return th
})

// DefaultTheme returns a copy of the theme components use when none is
// given. The bundled fonts are parsed once per process.
func DefaultTheme() *theme.Theme {
	th := *defaultTheme()
	return &th
}

// themeOr returns th, or a copy of the default theme when th is nil.
func themeOr(th *theme.Theme) *theme.Theme {
	if th != nil {
		return th
	}
	return DefaultTheme()
}

// Option configures a FolderCard.
type Option func(*options)

type options struct {
	title      string
	subtitle   string
	theme      *theme.Theme
	paperWidth float64
}

func defaultOptions() options {
	return options{
		title:      DefaultTitle,
		subtitle:   DefaultSubtitle,
		paperWidth: DefaultPaperWidth,
	}
}

// WithTitle sets the card title.
func WithTitle(s string) Option {
	return func(o *options) {
		o.title = s
	}
}

// WithSubtitle sets the line below the title, typically an item count.
func WithSubtitle(s string) Option {
	return func(o *options) {
		o.subtitle = s
	}
}

// WithTheme draws the card with th instead of the default theme.
func WithTheme(th *theme.Theme) Option {
	return func(o *options) {
		o.theme = th
	}
}

// WithPaperWidth sets the width of the sheet peeking out of the folder.
// Non-positive widths keep the default.
func WithPaperWidth(w float64) Option {
	return func(o *options) {
		if w > 0 {
			o.paperWidth = w
		}
	}
}
