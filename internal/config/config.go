package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	defaultInput     = "dataset.json"
	defaultOutput    = "dataset2.json"
	defaultLogLevel  = "info"
	defaultLogFormat = "text"

	configPathEnv = "REGION_ENRICHER_CONFIG"
	inputEnv      = "REGION_ENRICHER_INPUT"
	outputEnv     = "REGION_ENRICHER_OUTPUT"
	logLevelEnv   = "REGION_ENRICHER_LOG_LEVEL"
)

// ErrHelp is returned when usage was requested with -h or -help.
var ErrHelp = flag.ErrHelp

// Config holds all settings of a single enrichment run.
type Config struct {
	Dataset DatasetConfig `yaml:"dataset"`
	Logging LoggingConfig `yaml:"logging"`
}

// DatasetConfig names the input and output files.
type DatasetConfig struct {
	Input  string `yaml:"input"`
	Output string `yaml:"output"`
}

// LoggingConfig controls the slog handler.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type flagValues struct {
	configPath string
	input      string
	output     string
	logLevel   string
	logFormat  string
}

// Load builds the configuration from defaults, an optional YAML file,
// environment overrides and finally command-line flags. Usage output goes
// to stderr.
func Load(args []string, stderr io.Writer) (Config, error) {
	fs := flag.NewFlagSet("regionenricher", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var fv flagValues
	fs.StringVar(&fv.configPath, "config", "", "path to a YAML config file (env "+configPathEnv+")")
	fs.StringVar(&fv.input, "input", "", "input dataset path (default "+defaultInput+")")
	fs.StringVar(&fv.output, "output", "", "output dataset path (default "+defaultOutput+")")
	fs.StringVar(&fv.logLevel, "log-level", "", "log level: debug, info, warn, error")
	fs.StringVar(&fv.logFormat, "log-format", "", "log format: text or json")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if fs.NArg() > 0 {
		return Config{}, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	cfg := defaultConfig()

	path := fv.configPath
	if path == "" {
		path = os.Getenv(configPathEnv)
	}
	if path != "" {
		fileCfg, err := readFile(path)
		if err != nil {
			return Config{}, err
		}
		cfg = mergeConfig(cfg, fileCfg)
	}

	cfg.applyEnvOverrides()
	cfg = mergeConfig(cfg, fv.toConfig())

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func readFile(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: cannot read %s: %w", path, err)
	}

	var fileCfg Config
	if err := yaml.Unmarshal(raw, &fileCfg); err != nil {
		return Config{}, fmt.Errorf("config: cannot parse %s: %w", path, err)
	}

	return fileCfg, nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(inputEnv); v != "" {
		c.Dataset.Input = v
	}

	if v := os.Getenv(outputEnv); v != "" {
		c.Dataset.Output = v
	}

	if v := os.Getenv(logLevelEnv); v != "" {
		c.Logging.Level = v
	}
}

func (c Config) validate() error {
	if samePath(c.Dataset.Input, c.Dataset.Output) {
		return errors.New("config: input and output must be different files")
	}

	switch c.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("config: unknown log format %q", c.Logging.Format)
	}

	return nil
}

func samePath(a, b string) bool {
	return absPath(a) == absPath(b)
}

func absPath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}
	return abs
}

func (f flagValues) toConfig() Config {
	return Config{
		Dataset: DatasetConfig{Input: f.input, Output: f.output},
		Logging: LoggingConfig{Level: f.logLevel, Format: f.logFormat},
	}
}

func mergeConfig(base, override Config) Config {
	if override.Dataset.Input != "" {
		base.Dataset.Input = override.Dataset.Input
	}
	if override.Dataset.Output != "" {
		base.Dataset.Output = override.Dataset.Output
	}

	if override.Logging.Level != "" {
		base.Logging.Level = override.Logging.Level
	}
	if override.Logging.Format != "" {
		base.Logging.Format = override.Logging.Format
	}

	return base
}

func defaultConfig() Config {
	return Config{
		Dataset: DatasetConfig{Input: defaultInput, Output: defaultOutput},
		Logging: LoggingConfig{Level: defaultLogLevel, Format: defaultLogFormat},
	}
}
