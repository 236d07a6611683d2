package main

import (
	"fmt"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/nntour/geom"
	"github.com/katalvlaran/nntour/internal/config"
	"github.com/katalvlaran/nntour/report"
	"github.com/katalvlaran/nntour/tsp"
)

func newSolveCmd(a *app) *cobra.Command {
	var (
		hideMatrix bool
		raw        bool
	)
	def := config.Default()

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Generate cities and print the nearest-neighbour tour",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := a.cfg
			seed := cfg.EffectiveSeed(time.Now)
			a.log.Info("generating cities", "cities", cfg.Cities, "seed", seed)

			pts, err := geom.RandomPoints(cfg.Cities, geom.NewRand(seed))
			if err != nil {
				return err
			}
			rep, err := report.Build(pts, tsp.Options{Start: cfg.Start})
			if err != nil {
				return err
			}
			a.log.Info("tour built", "start", cfg.Start, "length", rep.Length)

			opts := report.RenderOptions{Places: cfg.Places, HideMatrix: hideMatrix}
			out := cmd.OutOrStdout()
			switch cfg.Format {
			case config.FormatJSON:
				return rep.WriteJSON(out)
			case config.FormatMarkdown:
				md, err := rep.Markdown(opts)
				if err != nil {
					return err
				}
				if !raw {
					if md, err = renderMarkdown(md); err != nil {
						return err
					}
				}
				_, err = fmt.Fprint(out, md)
				return err
			default:
				return rep.WriteText(out, opts)
			}
		},
	}

	f := cmd.Flags()
	f.String("format", def.Format, "output format: text, json, markdown")
	f.Int("places", def.Places, "decimals shown for distances")
	f.BoolVar(&hideMatrix, "hide-matrix", false, "omit the distance matrix")
	f.BoolVar(&raw, "raw", false, "print markdown source instead of rendering it")

	return cmd
}

// renderMarkdown styles markdown for the terminal.
func renderMarkdown(md string) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(0),
	)
	if err != nil {
		return "", err
	}

	return r.Render(md)
}
