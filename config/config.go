// Package config loads the bluenoise command's run configuration: embedded
// YAML defaults, an optional YAML file on top, then command-line flags.
package config

import (
	_ "embed"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Sentinel errors for configuration validation.
var (
	// ErrInvalidConfig indicates a value outside its allowed range.
	ErrInvalidConfig = errors.New("config: invalid value")
	// ErrUnknownFormat indicates an output format other than text or csv.
	ErrUnknownFormat = errors.New("config: unknown output format")
)

// Output formats.
const (
	FormatText = "text"
	FormatCSV  = "csv"
)

// Config holds every knob of a bluenoise run.
type Config struct {
	Sampler SamplerConfig `yaml:"sampler"`
	Output  OutputConfig  `yaml:"output"`
	Log     LogConfig     `yaml:"log"`
}

// SamplerConfig maps onto poisson.New arguments and options.
type SamplerConfig struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	MinDistance float64 `yaml:"min_distance"`
	Samples     uint    `yaml:"samples"` // candidate budget k
	Seed        uint64  `yaml:"seed"`    // 0 = poisson.DefaultSeed
}

// OutputConfig controls what is printed.
type OutputConfig struct {
	Count  int    `yaml:"count"`  // points per frame, 0 = until exhausted
	Frames int    `yaml:"frames"` // number of independent tiles
	Format string `yaml:"format"` // text | csv
	Stats  bool   `yaml:"stats"`  // log spacing summary per frame
}

// LogConfig controls the command's slog handler.
type LogConfig struct {
	Level string `yaml:"level"` // debug | info | warn | error
}

// Default returns the embedded defaults.
func Default() *Config {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		panic(fmt.Sprintf("config: parsing embedded defaults: %v", err))
	}

	return cfg
}

// Parse decodes data over the embedded defaults; keys absent from data keep
// their default values.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Load reads a YAML file and merges it over the defaults. An empty path
// returns the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	return Parse(data)
}

// Bind attaches the configuration to fs; each flag defaults to the current
// field value, so only flags given on the command line change c.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.Float64Var(&c.Sampler.Width, "width", c.Sampler.Width, "domain width")
	fs.Float64Var(&c.Sampler.Height, "height", c.Sampler.Height, "domain height")
	fs.Float64Var(&c.Sampler.MinDistance, "min-distance", c.Sampler.MinDistance, "minimum distance between points")
	fs.UintVar(&c.Sampler.Samples, "samples", c.Sampler.Samples, "candidates per active point")
	fs.Uint64Var(&c.Sampler.Seed, "seed", c.Sampler.Seed, "random seed (0 = library default)")
	fs.IntVar(&c.Output.Count, "count", c.Output.Count, "points per frame (0 = until exhausted)")
	fs.IntVar(&c.Output.Frames, "frames", c.Output.Frames, "number of independent tiles")
	fs.StringVar(&c.Output.Format, "format", c.Output.Format, "output format: text or csv")
	fs.BoolVar(&c.Output.Stats, "stats", c.Output.Stats, "log spacing statistics per frame")
	fs.StringVar(&c.Log.Level, "log-level", c.Log.Level, "log level: debug, info, warn, error")
}

// FromArgs resolves defaults, the optional -config file and flags, in that
// order of increasing precedence, and validates the result. Usage and parse
// errors go to errOut; flag.ErrHelp is returned unchanged for -h.
func FromArgs(name string, args []string, errOut io.Writer) (*Config, error) {
	cfg := Default()
	fs, path := newFlagSet(name, cfg, errOut)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if *path != "" {
		fileCfg, err := Load(*path)
		if err != nil {
			return nil, err
		}
		// Re-parse with file values as flag defaults: explicit flags still win.
		fs, _ = newFlagSet(name, fileCfg, errOut)
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
		cfg = fileCfg
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func newFlagSet(name string, cfg *Config, errOut io.Writer) (*flag.FlagSet, *string) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(errOut)
	path := fs.String("config", "", "YAML config file")
	cfg.Bind(fs)

	return fs, path
}

// Validate checks ranges. Domain and distance must be finite and > 0,
// samples must fit in uint32, count ≥ 0, frames ≥ 1, and the format and log
// level must be known.
func (c *Config) Validate() error {
	checks := []struct {
		name string
		v    float64
	}{
		{"sampler.width", c.Sampler.Width},
		{"sampler.height", c.Sampler.Height},
		{"sampler.min_distance", c.Sampler.MinDistance},
	}
	for _, ch := range checks {
		if !(ch.v > 0) || math.IsInf(ch.v, 1) {
			return fmt.Errorf("%s=%v must be finite and > 0: %w", ch.name, ch.v, ErrInvalidConfig)
		}
	}
	if c.Sampler.Samples > math.MaxUint32 {
		return fmt.Errorf("sampler.samples=%d exceeds %d: %w", c.Sampler.Samples, uint64(math.MaxUint32), ErrInvalidConfig)
	}
	if c.Output.Count < 0 {
		return fmt.Errorf("output.count=%d must be ≥ 0: %w", c.Output.Count, ErrInvalidConfig)
	}
	if c.Output.Frames < 1 {
		return fmt.Errorf("output.frames=%d must be ≥ 1: %w", c.Output.Frames, ErrInvalidConfig)
	}
	switch c.Output.Format {
	case FormatText, FormatCSV:
	default:
		return fmt.Errorf("output.format=%q: %w", c.Output.Format, ErrUnknownFormat)
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}

	return nil
}

// LogLevel parses Log.Level into a slog.Level.
func (c *Config) LogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return 0, fmt.Errorf("log.level=%q: %w", c.Log.Level, ErrInvalidConfig)
	}

	return lvl, nil
}

// LogValue implements slog.LogValuer for structured logging.
func (c *Config) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Float64("width", c.Sampler.Width),
		slog.Float64("height", c.Sampler.Height),
		slog.Float64("min_distance", c.Sampler.MinDistance),
		slog.Uint64("samples", uint64(c.Sampler.Samples)),
		slog.Uint64("seed", c.Sampler.Seed),
		slog.Int("count", c.Output.Count),
		slog.Int("frames", c.Output.Frames),
		slog.String("format", c.Output.Format),
	)
}
