package card

import (
	"math"

	"github.com/gogpu/gg"

	"github.com/gogpu/folderview/canvas"
	"github.com/gogpu/folderview/shape"
	"github.com/gogpu/folderview/theme"
	"github.com/gogpu/folderview/view"
)

// Folder card metrics.
const (
	CardWidth        = 250
	CardCornerRadius = 25
	BandHeight       = 70

	DefaultTitle    = "Personal"
	DefaultSubtitle = "123"

	// paperPeek is the height of the paper frame inside the band; the rest
	// of the sheet hangs below it and is clipped away.
	paperPeek = 45
	// paperTilt turns the paper counterclockwise about its top-trailing corner.
	paperTilt = -3 * math.Pi / 180

	footerPadding    = 16
	footerSpacing    = 20
	footerShadowBlur = 10
	headerSpacing    = 8
	headerMinSpacing = 8
	textSpacing      = 2
)

// FolderCard is a folder: a tabbed band with a sheet of paper peeking out,
// above a footer showing a title, a subtitle and a "more" icon. The card
// is always CardWidth wide and clipped to a rounded rectangle.
type FolderCard struct {
	opts options
}

// NewFolderCard returns a card configured by opts.
func NewFolderCard(opts ...Option) FolderCard {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return FolderCard{opts: o}
}

// Title returns the card title.
func (c FolderCard) Title() string { return c.opts.title }

// Subtitle returns the line below the title.
func (c FolderCard) Subtitle() string { return c.opts.subtitle }

// Theme returns the theme the card draws with. Without WithTheme it is a
// fresh copy of DefaultTheme, so changes to it do not affect any card.
func (c FolderCard) Theme() *theme.Theme { return themeOr(c.opts.theme) }

// Outline returns the shape clipping the folder band.
func (c FolderCard) Outline() shape.Folder {
	return shape.NewFolder(CardCornerRadius)
}

func (c FolderCard) band(th *theme.Theme) view.View {
	fill := view.Modify(view.Overlay(view.Center,
		view.Fill(shape.Rectangle{}, th.Surface),
		view.Modify(view.Fill(shape.Rectangle{}, th.Accent)).Opacity(th.AccentOpacity),
	)).Clip(c.Outline())

	paper := view.Modify(PaperStack{Width: c.opts.paperWidth, Theme: th}).
		Frame(0, paperPeek, view.N).
		Rotation(paperTilt, view.NE)

	return view.Modify(view.Overlay(view.S, fill, paper)).
		Frame(0, BandHeight, view.Center).
		Clipped()
}

func (c FolderCard) footer(th *theme.Theme) view.View {
	labels := view.VStack(view.Start, textSpacing,
		view.Label(c.opts.title, th.TitleFace(), th.Primary),
		view.Label(c.opts.subtitle, th.SubtitleFace(), th.Secondary),
	)
	header := view.HStack(view.Baseline, headerSpacing,
		labels,
		view.Spacer{MinLength: headerMinSpacing},
		view.Ellipsis{Size: th.IconSize, Color: th.Primary},
	)

	return view.Modify(view.VStack(view.Middle, footerSpacing, header)).
		Padding(footerPadding).
		BackgroundColor(th.Accent).
		Shadow(canvas.Shadow{Color: th.Shadow, Radius: footerShadowBlur}, shape.Rectangle{})
}

func (c FolderCard) body() view.View {
	th := c.Theme()
	return view.Modify(view.VStack(view.Middle, 0, c.band(th), c.footer(th))).
		Frame(CardWidth, 0, view.Center).
		Clip(shape.RoundedRect{Radius: CardCornerRadius})
}

// Measure returns CardWidth by the height of the band and the footer.
func (c FolderCard) Measure(proposed view.Size) view.Size {
	return c.body().Measure(proposed)
}

// Draw draws the card in frame.
func (c FolderCard) Draw(d *view.Drawer, frame gg.Rect) {
	c.body().Draw(d, frame)
}

// BandFrame returns the frame of the folder band when the card fills frame.
func (c FolderCard) BandFrame(frame gg.Rect) gg.Rect {
	return shape.R(frame.Min.X, frame.Min.Y, frame.Width(), BandHeight)
}

// FooterFrame returns the frame of the footer when the card fills frame.
func (c FolderCard) FooterFrame(frame gg.Rect) gg.Rect {
	return gg.Rect{Min: gg.Pt(frame.Min.X, frame.Min.Y+BandHeight), Max: frame.Max}
}
