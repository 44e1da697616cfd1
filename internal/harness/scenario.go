package harness

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/roach88/mcsampling/internal/config"
	"github.com/roach88/mcsampling/internal/ir"
)

// Scenario defines a sampling test scenario.
// A scenario runs one seeded simulation and asserts on the resulting
// trajectory and density.
type Scenario struct {
	// Name uniquely identifies this scenario. Also used as the run ID.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Seed fixes the random source so the run is reproducible.
	Seed int64 `yaml:"seed"`

	// Config is the inline simulation configuration.
	// Exactly one of Config and ConfigFile must be set.
	Config *config.File `yaml:"config,omitempty"`

	// ConfigFile is a path to a configuration file in any supported format.
	// Relative paths are resolved against the scenario's base path.
	ConfigFile string `yaml:"config_file,omitempty"`

	// ExpectError is the validation error code the run must fail with.
	// When set, no assertions are allowed.
	ExpectError string `yaml:"expect_error,omitempty"`

	// Assertions validate the run output.
	// Supported types: trajectory_length, density_length, bin_width,
	// acceptance_between, density_peak_near, normalization_at_most,
	// first_sample
	Assertions []Assertion `yaml:"assertions,omitempty"`
}

// Assertion validates one property of a run. Which fields are required
// depends on Type.
type Assertion struct {
	Type string `yaml:"type"`

	// Count is the expected length (trajectory_length, density_length).
	Count *int `yaml:"count,omitempty"`

	// Value is the expected bin width (bin_width), peak center
	// (density_peak_near) or mass bound (normalization_at_most).
	Value *float64 `yaml:"value,omitempty"`

	// Min and Max bound the acceptance ratio (acceptance_between), inclusive.
	Min *float64 `yaml:"min,omitempty"`
	Max *float64 `yaml:"max,omitempty"`

	// Tolerance is the allowed absolute deviation for bin_width and
	// density_peak_near. Zero means DefaultTolerance.
	Tolerance float64 `yaml:"tolerance,omitempty"`

	// Position and Energy are the expected first sample (first_sample).
	// Compared exactly.
	Position *float64 `yaml:"position,omitempty"`
	Energy   *float64 `yaml:"energy,omitempty"`
}

// Assertion type constants.
const (
	AssertTrajectoryLength    = "trajectory_length"
	AssertDensityLength       = "density_length"
	AssertBinWidth            = "bin_width"
	AssertAcceptanceBetween   = "acceptance_between"
	AssertDensityPeakNear     = "density_peak_near"
	AssertNormalizationAtMost = "normalization_at_most"
	AssertFirstSample         = "first_sample"
)

// DefaultTolerance is used when an assertion leaves Tolerance unset.
const DefaultTolerance = 1e-9

// LoadScenario reads and parses a scenario YAML file.
// Relative config_file paths are resolved against the scenario's directory.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	return LoadScenarioWithBasePath(path, filepath.Dir(path))
}

// LoadScenarioWithBasePath reads and parses a scenario YAML file,
// resolving config_file relative to the provided base path.
func LoadScenarioWithBasePath(path, basePath string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	// Strict field validation catches typos like "assertion:" vs "assertions:"
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if scenario.ConfigFile != "" && !filepath.IsAbs(scenario.ConfigFile) && basePath != "" {
		scenario.ConfigFile = filepath.Join(basePath, scenario.ConfigFile)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}

// SimulationConfig returns the scenario's configuration, loading ConfigFile
// if needed. Range validation is left to the engine so that expect_error
// scenarios can exercise it.
func (s *Scenario) SimulationConfig() (ir.SimulationConfig, error) {
	if s.Config != nil {
		return s.Config.SimulationConfig(), nil
	}
	return config.Parse(s.ConfigFile)
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	if s.Description == "" {
		return fmt.Errorf("description is required")
	}

	switch {
	case s.Config == nil && s.ConfigFile == "":
		return fmt.Errorf("one of config or config_file is required")
	case s.Config != nil && s.ConfigFile != "":
		return fmt.Errorf("config and config_file are mutually exclusive")
	}

	if s.ConfigFile != "" {
		if _, err := os.Stat(s.ConfigFile); os.IsNotExist(err) {
			return fmt.Errorf("config file not found: %s", s.ConfigFile)
		}
	}

	if s.ExpectError != "" {
		if len(s.Assertions) > 0 {
			return fmt.Errorf("assertions are not allowed with expect_error")
		}
		return nil
	}

	if len(s.Assertions) == 0 {
		return fmt.Errorf("assertions list is required and must be non-empty")
	}

	for i := range s.Assertions {
		if err := validateAssertion(i, &s.Assertions[i]); err != nil {
			return err
		}
	}

	return nil
}

// validateAssertion validates a single assertion based on its type.
func validateAssertion(index int, a *Assertion) error {
	if a.Type == "" {
		return fmt.Errorf("assertions[%d]: type is required", index)
	}
	if a.Tolerance < 0 {
		return fmt.Errorf("assertions[%d]: tolerance must be non-negative", index)
	}

	switch a.Type {
	case AssertTrajectoryLength, AssertDensityLength:
		if a.Count == nil {
			return fmt.Errorf("assertions[%d]: count is required for %s", index, a.Type)
		}
		if *a.Count < 0 {
			return fmt.Errorf("assertions[%d]: count must be non-negative for %s", index, a.Type)
		}
	case AssertBinWidth, AssertDensityPeakNear, AssertNormalizationAtMost:
		if a.Value == nil {
			return fmt.Errorf("assertions[%d]: value is required for %s", index, a.Type)
		}
	case AssertAcceptanceBetween:
		if a.Min == nil || a.Max == nil {
			return fmt.Errorf("assertions[%d]: min and max are required for %s", index, a.Type)
		}
		if *a.Min > *a.Max {
			return fmt.Errorf("assertions[%d]: min must not exceed max", index)
		}
	case AssertFirstSample:
		if a.Position == nil && a.Energy == nil {
			return fmt.Errorf("assertions[%d]: position or energy is required for %s", index, a.Type)
		}
	default:
		return fmt.Errorf("assertions[%d]: unknown assertion type %q", index, a.Type)
	}

	return nil
}
