package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"haze-hunter/internal/imageio"
	"haze-hunter/internal/pipeline"
	"haze-hunter/internal/timing"

	"github.com/spf13/cobra"
)

var stageLabels = map[string]string{
	pipeline.StageDarkChannel:      "Calculating dark channel",
	pipeline.StageAtmosphericLight: "Calculating atmospheric",
	pipeline.StageTransmission:     "Calculating transmission map",
	pipeline.StageReconstruct:      "Reconstructing",
	pipeline.StageMetrics:          "Measuring contrast",
}

func newRunCommand(flags *globalFlags) *cobra.Command {
	var transmissionPath, outputPath string

	cmd := &cobra.Command{
		Use:   "run <input>",
		Short: "Dehaze an image and write the transmission map and the result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, flags)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("transmission") {
				cfg.Output.Transmission = transmissionPath
			}
			if cmd.Flags().Changed("output") {
				cfg.Output.Radiance = outputPath
			}

			extractor, err := pipeline.ExtractorFor(cfg.Backend)
			if err != nil {
				return err
			}

			log := newLogger(cfg)
			coordinator, err := pipeline.NewCoordinator(cfg.Dehaze,
				pipeline.WithLogger(log),
				pipeline.WithExtractor(extractor),
			)
			if err != nil {
				return err
			}

			return runDehaze(cmd.Context(), cmd.OutOrStdout(), coordinator, args[0], cfg.Output.Transmission, cfg.Output.Radiance)
		},
	}

	cmd.Flags().StringVar(&transmissionPath, "transmission", "", "transmission map output path")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "dehazed image output path")
	return cmd
}

func runDehaze(ctx context.Context, out io.Writer, coordinator *pipeline.Coordinator, inputPath, transmissionPath, outputPath string) error {
	tracker := timing.NewTracker()
	timed := func(label string, fn func() error) error {
		fmt.Fprintf(out, "%s... ", label)
		tctx := tracker.StartTiming(ctx, label)
		err := fn()
		d := tracker.EndTiming(tctx)
		if err != nil {
			fmt.Fprintln(out, "failed")
			return err
		}
		fmt.Fprintln(out, formatDuration(d))
		return nil
	}

	var input *imageio.Image
	err := timed("Loading image", func() (err error) {
		input, err = imageio.Load(inputPath)
		return err
	})
	if err != nil {
		return err
	}

	result, err := coordinator.Run(ctx, input.Grid)
	if err != nil {
		return err
	}
	for _, r := range result.Timings {
		fmt.Fprintf(out, "%s... %s\n", stageLabels[r.Operation], formatDuration(r.Duration))
	}
	fmt.Fprintf(out, "Using atmospheric value: %s\n", result.Atmosphere)

	err = timed("Outputting transmission map image", func() error {
		return imageio.Save(transmissionPath, result.TransmissionImage())
	})
	if err != nil {
		return err
	}

	return timed("Outputting reconstruction", func() error {
		return imageio.Save(outputPath, result.RadianceImage())
	})
}

func formatDuration(d time.Duration) string {
	return d.Round(time.Microsecond).String()
}
