// Command folderpreview renders the folderview components for inspection.
//
// Usage:
//
//	folderpreview card --out card.png
//	folderpreview paper --padding 32 --theme blue.yaml
//	folderpreview outline --svg
//	folderpreview dump card
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/gogpu/folderview"
	"github.com/gogpu/folderview/card"
	"github.com/gogpu/folderview/internal/preview"
	"github.com/gogpu/folderview/theme"
	"github.com/gogpu/folderview/view"
)

// config holds the persistent flags shared by every subcommand.
type config struct {
	padding   float64
	themePath string
	logLevel  string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cfg := &config{}
	root := &cobra.Command{
		Use:   "folderpreview",
		Short: "Render folderview components to PNG, SVG path data or command dumps",
		Long: `folderpreview renders the development previews of the folderview
components: the complete folder card, the paper stack and the folder outline.

Examples:
  folderpreview card --out card.png
  folderpreview outline --svg
  folderpreview dump paper`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return setupLogging(cmd, cfg.logLevel)
		},
	}

	pf := root.PersistentFlags()
	pf.Float64Var(&cfg.padding, "padding", preview.DefaultPadding, "empty space around the scene")
	pf.StringVar(&cfg.themePath, "theme", "", "YAML theme file overriding the default look")
	pf.StringVar(&cfg.logLevel, "log-level", "warn", "library log level: debug, info, warn or error")

	for _, name := range preview.Names() {
		root.AddCommand(newSceneCmd(cfg, name))
	}
	root.AddCommand(newDumpCmd(cfg))
	return root
}

func setupLogging(cmd *cobra.Command, level string) error {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", level, err)
	}
	h := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: lvl})
	folderview.SetLogger(slog.New(h))
	return nil
}

func (c *config) theme() (*theme.Theme, error) {
	if c.themePath == "" {
		return card.DefaultTheme(), nil
	}
	th, err := theme.Load(c.themePath)
	if err != nil {
		return nil, fmt.Errorf("load theme: %w", err)
	}
	return th, nil
}

func (c *config) build(name string) (view.View, error) {
	s, err := preview.Lookup(name)
	if err != nil {
		return nil, err
	}
	th, err := c.theme()
	if err != nil {
		return nil, err
	}
	return s.Build(th), nil
}

func newSceneCmd(cfg *config, name string) *cobra.Command {
	var (
		out string
		svg bool
	)
	s, _ := preview.Lookup(name)
	cmd := &cobra.Command{
		Use:   name,
		Short: "Render " + s.Description + " to PNG",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if svg {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), preview.OutlineGeometry().SVG())
				return err
			}
			v, err := cfg.build(name)
			if err != nil {
				return err
			}
			path := out
			if path == "" {
				path = name + ".png"
			}
			return snapshot(cmd, v, cfg.padding, path)
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "output PNG file (default <scene>.png)")
	if name == "outline" {
		cmd.Flags().BoolVar(&svg, "svg", false, "print the outline as SVG path data instead")
	}
	return cmd
}

func snapshot(cmd *cobra.Command, v view.View, padding float64, out string) error {
	dc, err := view.Snapshot(v, view.WithPadding(padding))
	if err != nil {
		return err
	}
	if err := dc.SavePNG(out); err != nil {
		return fmt.Errorf("save %s: %w", out, err)
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%dx%d)\n", out, dc.Width(), dc.Height())
	return err
}
