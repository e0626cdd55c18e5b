package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"haze-hunter/internal/dehaze"
	"haze-hunter/internal/logger"

	"gopkg.in/yaml.v3"
)

const (
	BackendNative = "native"
	BackendOpenCV = "opencv"

	FormatConsole = "console"
	FormatJSON    = "json"
)

// Config is the complete runtime configuration. Zero-valued sections in a
// YAML file keep their defaults.
type Config struct {
	Dehaze  dehaze.Parameters `yaml:"dehaze"`
	Backend string            `yaml:"backend"`
	Log     LogConfig         `yaml:"log"`
	Output  OutputConfig      `yaml:"output"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// OutputConfig names the files the CLI writes.
type OutputConfig struct {
	Transmission string `yaml:"transmission"`
	Radiance     string `yaml:"radiance"`
}

func Default() Config {
	return Config{
		Dehaze:  dehaze.DefaultParameters(),
		Backend: BackendNative,
		Log: LogConfig{
			Level:  "info",
			Format: FormatConsole,
		},
		Output: OutputConfig{
			Transmission: "transmission_map.png",
			Radiance:     "output.png",
		},
	}
}

// Load overlays the YAML file at path onto Default. An empty path returns
// the defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML onto Default. Unknown keys are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}

// ApplyEnv honours LOG_LEVEL, and DEBUG=1 when LOG_LEVEL is unset.
func (c *Config) ApplyEnv(getenv func(string) string) {
	if level := getenv("LOG_LEVEL"); level != "" {
		c.Log.Level = level
		return
	}
	if getenv("DEBUG") == "1" {
		c.Log.Level = "debug"
	}
}

func (c Config) Validate() error {
	if err := c.Dehaze.Validate(); err != nil {
		return err
	}

	switch c.Backend {
	case BackendNative, BackendOpenCV:
	default:
		return fmt.Errorf("unknown backend: %q", c.Backend)
	}

	if _, err := logger.ParseLevel(c.Log.Level); err != nil {
		return err
	}

	switch c.Log.Format {
	case FormatConsole, FormatJSON:
	default:
		return fmt.Errorf("unknown log format: %q", c.Log.Format)
	}

	return nil
}

// Marshal renders the configuration as YAML.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
