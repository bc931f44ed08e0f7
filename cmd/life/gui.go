//go:build ebiten

package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"lifeboard/internal/app"
	"lifeboard/internal/sim"
	"lifeboard/internal/ui"
)

func newGUICmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "gui",
		Short: "Open the interactive board window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := opts.resolve(cmd)
			if err != nil {
				return err
			}

			session := sim.NewSession(cfg, logger)
			game := app.New(session, cfg.Scale, logger)
			w, h := app.WindowSize(session.Size(), cfg.Scale, ui.PanelWidth)

			ebiten.SetWindowTitle("Conway's Game of Life")
			ebiten.SetTPS(cfg.TPS)
			ebiten.SetWindowSize(w, h)

			logger.Info("window opened", "rows", cfg.Rows, "cols", cfg.Cols, "delay", cfg.Delay)
			if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
				return errors.Wrap(err, "[gui] failed to run window")
			}
			logger.Info("window closed", "generation", session.Generation())
			return nil
		},
	}
}
