// Package preview holds the development scenes rendered by the
// folderpreview command.
package preview

import (
	"errors"
	"fmt"
	"sort"

	"github.com/gogpu/folderview/card"
	"github.com/gogpu/folderview/shape"
	"github.com/gogpu/folderview/theme"
	"github.com/gogpu/folderview/view"
)

// DefaultPadding surrounds every scene.
const DefaultPadding = 16

// Outline scene parameters.
const (
	OutlineWidth        = 200
	OutlineHeight       = 100
	OutlineCornerRadius = 20
	// OutlineLineWidth is wide enough to make misplaced segments obvious.
	OutlineLineWidth = 4
)

// ErrUnknownScene is returned by Lookup for names that are not registered.
var ErrUnknownScene = errors.New("preview: unknown scene")

// Scene builds one preview.
type Scene struct {
	Name        string
	Description string
	Build       func(th *theme.Theme) view.View
}

var scenes = map[string]Scene{
	"card": {
		Name:        "card",
		Description: "the complete folder card",
		Build: func(th *theme.Theme) view.View {
			return card.NewFolderCard(card.WithTheme(th))
		},
	},
	"paper": {
		Name:        "paper",
		Description: "the paper stack on its own",
		Build: func(th *theme.Theme) view.View {
			return card.PaperStack{Theme: th}
		},
	},
	"outline": {
		Name:        "outline",
		Description: "the folder outline stroked at 200x100",
		Build: func(th *theme.Theme) view.View {
			return view.Modify(view.Stroke(OutlineShape(), th.Primary, OutlineLineWidth)).
				Frame(OutlineWidth, OutlineHeight, view.Center)
		},
	},
}

// Names returns the registered scene names in order.
func Names() []string {
	names := make([]string, 0, len(scenes))
	for name := range scenes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the scene called name.
func Lookup(name string) (Scene, error) {
	s, ok := scenes[name]
	if !ok {
		return Scene{}, fmt.Errorf("%w: %q", ErrUnknownScene, name)
	}
	return s, nil
}

// OutlineShape is the folder shape shown by the outline scene.
func OutlineShape() shape.Folder {
	return shape.NewFolder(OutlineCornerRadius)
}

// OutlineGeometry returns the outline scene's path in a 200x100 frame at
// the origin.
func OutlineGeometry() shape.Geometry {
	return OutlineShape().Geometry(shape.R(0, 0, OutlineWidth, OutlineHeight))
}
