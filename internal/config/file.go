package config

import (
	"errors"
	"flag"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	apperrors "github.com/agbru/redflags/internal/errors"
)

// File is the YAML configuration file layout.
//
//	indicator: i171
//	format: json
//	log_level: info
//	metrics_file: /var/lib/node_exporter/redflags.prom
//	indicators:
//	  i171:
//	    threshold: 0.05
type File struct {
	Indicator   string                     `yaml:"indicator"`
	Format      string                     `yaml:"format"`
	LogLevel    string                     `yaml:"log_level"`
	MetricsFile string                     `yaml:"metrics_file"`
	Indicators  map[string]IndicatorConfig `yaml:"indicators"`
}

// IndicatorConfig holds per-indicator settings.
type IndicatorConfig struct {
	// Threshold is a pointer so that an explicit 0 is distinguishable from unset.
	Threshold *float64 `yaml:"threshold"`
}

// LoadFile reads and parses a YAML configuration file.
// Unknown keys are rejected. An empty file yields the zero File.
func LoadFile(path string) (File, error) {
	f, err := os.Open(path)
	if err != nil {
		return File{}, apperrors.NewConfigError("opening config file: %v", err)
	}
	defer f.Close()

	var file File
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return File{}, apperrors.NewConfigError("parsing config file %s: %v", path, err)
	}
	return file, nil
}

// apply copies file values into cfg for every flag not set on the command line.
// The threshold is looked up for the indicator selected after the file's own
// indicator value has been applied.
func (f File) apply(cfg *AppConfig, fs *flag.FlagSet) {
	if f.Indicator != "" && !isFlagSet(fs, "indicator") {
		cfg.Indicator = f.Indicator
	}
	if f.Format != "" && !isFlagSet(fs, "format") {
		cfg.Format = f.Format
	}
	if f.LogLevel != "" && !isFlagSet(fs, "log-level") {
		cfg.LogLevel = f.LogLevel
	}
	if f.MetricsFile != "" && !isFlagSet(fs, "metrics-file") {
		cfg.MetricsFile = f.MetricsFile
	}
	if ic, ok := f.Indicators[cfg.Indicator]; ok && ic.Threshold != nil && !isFlagSet(fs, "threshold") {
		cfg.Threshold = *ic.Threshold
	}
}
