// Package config parses and validates the redflags command-line configuration.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"strings"

	apperrors "github.com/agbru/redflags/internal/errors"
)

// EnvPrefix is prepended to every environment variable override.
const EnvPrefix = "REDFLAGS_"

// Default values applied when neither flags, environment nor file set them.
const (
	DefaultIndicator = "i171"
	DefaultThreshold = 0.05
	DefaultFormat    = FormatText
	DefaultLogLevel  = "warn"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// StdinInput is the input path that selects standard input.
const StdinInput = "-"

// AppConfig aggregates the application's configuration parameters.
type AppConfig struct {
	// Indicator is the ID of the indicator to evaluate.
	Indicator string
	// Threshold is the fraction passed to the indicator (0.05 = 5%).
	Threshold float64
	// Input is the release file path, or "-" for stdin.
	Input string
	// Format selects "text" or "json" output.
	Format string
	// OutputFile, when set, receives the JSON report.
	OutputFile string
	// Quiet prints only true, false or null.
	Quiet bool
	// NoColor disables coloured output.
	NoColor bool
	// LogLevel is the minimum level written to stderr.
	LogLevel string
	// MetricsFile, when set, receives Prometheus metrics in text format.
	MetricsFile string
	// ConfigFile is the optional YAML configuration file.
	ConfigFile string
}

// Validate checks the semantic validity of the configuration.
//
// Returns:
//   - error: A ConfigError describing the first invalid value, or nil.
func (c AppConfig) Validate(availableIndicators []string) error {
	if math.IsNaN(c.Threshold) || math.IsInf(c.Threshold, 0) {
		return apperrors.NewConfigError("threshold must be a finite number, got %v", c.Threshold)
	}
	if c.Threshold < 0 {
		return apperrors.NewConfigError("threshold must not be negative, got %v", c.Threshold)
	}
	switch c.Format {
	case FormatText, FormatJSON:
	default:
		return apperrors.NewConfigError("unknown format %q (want %s or %s)", c.Format, FormatText, FormatJSON)
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error", "disabled":
	default:
		return apperrors.NewConfigError("unknown log level %q", c.LogLevel)
	}
	if len(availableIndicators) > 0 && !contains(availableIndicators, c.Indicator) {
		return apperrors.NewConfigError("unknown indicator %q. Available: %s", c.Indicator, strings.Join(availableIndicators, ", "))
	}
	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// ParseConfig parses command-line arguments, applies the YAML configuration
// file and environment overrides for flags not set explicitly, and validates
// the result.
//
// Resolution order (highest priority first): CLI flags, REDFLAGS_*
// environment variables, the YAML configuration file, defaults.
//
// Parameters:
//   - programName: The program name used in usage output.
//   - args: The command-line arguments, without the program name.
//   - errorWriter: Destination for flag parse errors and usage.
//   - availableIndicators: IDs accepted for --indicator.
//
// Returns:
//   - AppConfig: The resolved configuration.
//   - error: flag.ErrHelp when help was requested, or a ConfigError.
func ParseConfig(programName string, args []string, errorWriter io.Writer, availableIndicators []string) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errorWriter)
	fs.Usage = func() {
		fmt.Fprintf(errorWriter, "Usage: %s [flags] [release.json | -]\n\n", programName)
		fmt.Fprintf(errorWriter, "Evaluates a red-flag indicator over one OCDS release.\n\nFlags:\n")
		fs.PrintDefaults()
	}

	cfg := AppConfig{}
	fs.StringVar(&cfg.Indicator, "indicator", DefaultIndicator, fmt.Sprintf("Indicator to evaluate (%s).", strings.Join(availableIndicators, ", ")))
	fs.Float64Var(&cfg.Threshold, "threshold", DefaultThreshold, "Indicator threshold as a fraction (0.05 = 5%).")
	fs.StringVar(&cfg.Format, "format", DefaultFormat, "Output format: text or json.")
	fs.StringVar(&cfg.OutputFile, "output", "", "Write the JSON report to this file.")
	fs.StringVar(&cfg.OutputFile, "o", "", "Write the JSON report to this file (shorthand).")
	fs.BoolVar(&cfg.Quiet, "quiet", false, "Print only true, false or null.")
	fs.BoolVar(&cfg.Quiet, "q", false, "Print only true, false or null (shorthand).")
	fs.BoolVar(&cfg.NoColor, "no-color", false, "Disable coloured output (also honoured: NO_COLOR).")
	fs.StringVar(&cfg.LogLevel, "log-level", DefaultLogLevel, "Log level: debug, info, warn, error or disabled.")
	fs.StringVar(&cfg.MetricsFile, "metrics-file", "", "Write Prometheus metrics in text format to this file.")
	fs.StringVar(&cfg.ConfigFile, "config", "", "YAML configuration file.")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return AppConfig{}, err
		}
		return AppConfig{}, apperrors.ConfigError{Message: err.Error()}
	}

	switch fs.NArg() {
	case 0:
		cfg.Input = StdinInput
	case 1:
		cfg.Input = fs.Arg(0)
	default:
		return AppConfig{}, apperrors.NewConfigError("expected at most one release file, got %d", fs.NArg())
	}

	if !isFlagSet(fs, "config") {
		cfg.ConfigFile = getEnvString("CONFIG", cfg.ConfigFile)
	}
	if cfg.ConfigFile != "" {
		file, err := LoadFile(cfg.ConfigFile)
		if err != nil {
			return AppConfig{}, err
		}
		file.apply(&cfg, fs)
	}

	applyEnvOverrides(&cfg, fs)

	if err := cfg.Validate(availableIndicators); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}
