package main

import (
	"fmt"
	"io"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/recording"
	"github.com/spf13/cobra"

	"github.com/gogpu/folderview/internal/preview"
	"github.com/gogpu/folderview/view"
)

func newDumpCmd(cfg *config) *cobra.Command {
	var playback string
	cmd := &cobra.Command{
		Use:   "dump <scene>",
		Short: "Print the drawing commands recorded for a scene",
		Long: `Records a scene and prints one line per drawing command, with the
fill color and bounds of every filled path.

With --playback the recording is also replayed onto gg's raster
backend and saved, which shows the recorded shapes without clipping
or text.`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: preview.Names(),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := cfg.build(args[0])
			if err != nil {
				return err
			}
			r, err := view.Record(v, view.WithPadding(cfg.padding))
			if err != nil {
				return err
			}
			if err := writeDump(cmd.OutOrStdout(), r); err != nil {
				return err
			}
			if playback == "" {
				return nil
			}
			b, err := view.Playback(r)
			if err != nil {
				return err
			}
			if err := b.SavePNG(playback); err != nil {
				return fmt.Errorf("save %s: %w", playback, err)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&playback, "playback", "", "replay the recording to this PNG file")
	return cmd
}

func writeDump(w io.Writer, r *recording.Recording) error {
	res := r.Resources()
	if _, err := fmt.Fprintf(w, "# %dx%d, %d commands\n", r.Width(), r.Height(), len(r.Commands())); err != nil {
		return err
	}
	for i, cmd := range r.Commands() {
		var detail string
		switch c := cmd.(type) {
		case recording.FillPathCommand:
			detail = fmt.Sprintf("%s %s", brush(res.GetBrush(c.Brush)), bounds(res.GetPath(c.Path).BoundingBox()))
		case recording.StrokePathCommand:
			detail = fmt.Sprintf("%s %s", brush(res.GetBrush(c.Brush)), bounds(res.GetPath(c.Path).BoundingBox()))
		case recording.SetClipCommand:
			detail = bounds(res.GetPath(c.Path).BoundingBox())
		case recording.DrawTextCommand:
			detail = fmt.Sprintf("%q at (%.2f, %.2f)", c.Text, c.X, c.Y)
		}
		if _, err := fmt.Fprintf(w, "%4d %-14s %s\n", i, cmd.Type(), detail); err != nil {
			return err
		}
	}
	return nil
}

func brush(b recording.Brush) string {
	if s, ok := b.(recording.SolidBrush); ok {
		c := s.Color
		return fmt.Sprintf("rgba(%.3f, %.3f, %.3f, %.3f)", c.R, c.G, c.B, c.A)
	}
	return fmt.Sprintf("%T", b)
}

func bounds(r gg.Rect) string {
	return fmt.Sprintf("[%.2f,%.2f %.2f,%.2f]", r.Min.X, r.Min.Y, r.Max.X, r.Max.Y)
}
