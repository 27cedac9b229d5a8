package app

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Input formats accepted by Config.InputFormat.
const (
	FormatAuto = "auto"
	FormatText = "text"
	FormatHCL  = "hcl"
)

// DefaultWorkers bounds concurrent conversions when a file holds several
// automata.
const DefaultWorkers = 4

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	InputPath   string
	InputFormat string // auto, text or hcl
	Workers     int    // concurrent conversions for multi-automaton files

	LogFormat string
	LogLevel  string
}

// NewConfig validates cfg and fills in defaults.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.InputPath == "" {
		return nil, errors.New("InputPath is a required configuration field and cannot be empty")
	}

	switch cfg.InputFormat {
	case "":
		cfg.InputFormat = FormatAuto
	case FormatAuto, FormatText, FormatHCL:
	default:
		return nil, fmt.Errorf("invalid input format %q: must be 'auto', 'text' or 'hcl'", cfg.InputFormat)
	}

	switch {
	case cfg.Workers == 0:
		cfg.Workers = DefaultWorkers
	case cfg.Workers < 0:
		return nil, fmt.Errorf("invalid worker count %d: must be positive", cfg.Workers)
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = "warn"
	}
	if _, err := ParseLogLevel(cfg.LogLevel); err != nil {
		return nil, err
	}

	switch cfg.LogFormat {
	case "":
		cfg.LogFormat = "text"
	case "text", "json":
	default:
		return nil, fmt.Errorf("invalid log format %q: must be 'text' or 'json'", cfg.LogFormat)
	}

	return &cfg, nil
}

// Format resolves FormatAuto from the input file extension: .hcl files are
// HCL, everything else is the text format.
func (c *Config) Format() string {
	if c.InputFormat != FormatAuto && c.InputFormat != "" {
		return c.InputFormat
	}
	if strings.EqualFold(filepath.Ext(c.InputPath), ".hcl") {
		return FormatHCL
	}
	return FormatText
}
