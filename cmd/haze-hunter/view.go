package main

import (
	"haze-hunter/internal/gui"
	"haze-hunter/internal/imageio"
	"haze-hunter/internal/pipeline"

	"github.com/spf13/cobra"
)

func newViewCommand(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "view <input>",
		Short: "Open an interactive preview with adjustable parameters",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, flags)
			if err != nil {
				return err
			}

			extractor, err := pipeline.ExtractorFor(cfg.Backend)
			if err != nil {
				return err
			}

			source, err := imageio.Load(args[0])
			if err != nil {
				return err
			}

			return gui.Run(source, cfg.Dehaze, extractor, newLogger(cfg))
		},
	}
}
