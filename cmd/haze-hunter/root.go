package main

import (
	"os"

	"haze-hunter/internal/config"
	"haze-hunter/internal/logger"

	"github.com/spf13/cobra"
)

const AppVersion = "1.0.0"

type globalFlags struct {
	configPath  string
	logLevel    string
	logFormat   string
	backend     string
	patchSize   int
	omega       float64
	t0          float64
	topFraction float64
}

func newRootCommand() *cobra.Command {
	flags := &globalFlags{}

	root := &cobra.Command{
		Use:           "haze-hunter",
		Short:         "Remove haze from a photograph with the dark channel prior",
		Version:       AppVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	defaults := config.Default()
	pf := root.PersistentFlags()
	pf.StringVarP(&flags.configPath, "config", "c", "", "YAML configuration file")
	pf.StringVar(&flags.logLevel, "log-level", defaults.Log.Level, "debug, info, warn or error")
	pf.StringVar(&flags.logFormat, "log-format", defaults.Log.Format, "console or json")
	pf.StringVar(&flags.backend, "backend", defaults.Backend, "dark channel backend: native or opencv")
	pf.IntVar(&flags.patchSize, "patch", defaults.Dehaze.PatchSize, "dark channel patch edge length")
	pf.Float64Var(&flags.omega, "omega", defaults.Dehaze.Omega, "fraction of haze removed")
	pf.Float64Var(&flags.t0, "t0", defaults.Dehaze.T0, "minimum transmission")
	pf.Float64Var(&flags.topFraction, "top-fraction", defaults.Dehaze.TopFraction, "fraction of darkest-channel pixels considered for the atmospheric light")

	root.AddCommand(newRunCommand(flags), newViewCommand(flags))
	return root
}

// resolveConfig layers defaults, the config file, the environment and the
// flags the user set explicitly, in that order.
func resolveConfig(cmd *cobra.Command, flags *globalFlags) (config.Config, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return config.Config{}, err
	}
	cfg.ApplyEnv(os.Getenv)

	changed := cmd.Flags().Changed
	if changed("log-level") {
		cfg.Log.Level = flags.logLevel
	}
	if changed("log-format") {
		cfg.Log.Format = flags.logFormat
	}
	if changed("backend") {
		cfg.Backend = flags.backend
	}
	if changed("patch") {
		cfg.Dehaze.PatchSize = flags.patchSize
	}
	if changed("omega") {
		cfg.Dehaze.Omega = flags.omega
	}
	if changed("t0") {
		cfg.Dehaze.T0 = flags.t0
	}
	if changed("top-fraction") {
		cfg.Dehaze.TopFraction = flags.topFraction
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func newLogger(cfg config.Config) *logger.ZerologAdapter {
	// Validate has already accepted the level.
	level, _ := logger.ParseLevel(cfg.Log.Level)
	if cfg.Log.Format == config.FormatJSON {
		return logger.NewZerolog(os.Stderr, level)
	}
	return logger.NewConsoleLogger(os.Stderr, level)
}
