package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/roach88/mcsampling/internal/ir"
)

// Format identifies a configuration file format.
type Format string

const (
	FormatYAML   Format = "yaml"
	FormatCUE    Format = "cue"
	FormatLegacy Format = "legacy"
)

// DetectFormat chooses a format from the file extension.
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".cue":
		return FormatCUE, nil
	case ".in":
		return FormatLegacy, nil
	default:
		return "", &ValidationError{
			Code:    ErrCodeUnknownFormat,
			Message: fmt.Sprintf("unsupported config extension %q (want .yaml, .yml, .cue or .in)", filepath.Ext(path)),
		}
	}
}

// Load reads, parses and validates a configuration file.
// A returned config is safe to sample.
func Load(path string) (ir.SimulationConfig, error) {
	cfg, err := Parse(path)
	if err != nil {
		return ir.SimulationConfig{}, err
	}
	if err := Validate(cfg); err != nil {
		return ir.SimulationConfig{}, err
	}
	return cfg, nil
}

// Parse reads and parses a configuration file in the format implied by its
// extension. Iteration and bin limits are not checked, except by the CUE
// schema.
func Parse(path string) (ir.SimulationConfig, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return ir.SimulationConfig{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return ir.SimulationConfig{}, fmt.Errorf("failed to read config file: %w", err)
	}

	switch format {
	case FormatCUE:
		return ParseCUE(data, path)
	case FormatLegacy:
		return ParseLegacy(bytes.NewReader(data))
	default:
		return ParseYAML(data)
	}
}

// ParseYAML decodes a YAML configuration, rejecting unknown keys.
// The result is not validated.
func ParseYAML(data []byte) (ir.SimulationConfig, error) {
	var f File
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&f); err != nil {
		return ir.SimulationConfig{}, &ValidationError{
			Code:    ErrCodeParseFailed,
			Message: "failed to parse YAML",
			Err:     err,
		}
	}
	return f.SimulationConfig(), nil
}

// MarshalYAML encodes cfg in the YAML file layout.
func MarshalYAML(cfg ir.SimulationConfig) ([]byte, error) {
	return yaml.Marshal(FromSimulationConfig(cfg))
}
