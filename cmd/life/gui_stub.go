//go:build !ebiten

package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newGUICmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "gui",
		Short: "Open the interactive board window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, _, err := opts.resolve(cmd); err != nil {
				return err
			}
			return errors.New("the window requires a build with -tags ebiten")
		},
	}
}
