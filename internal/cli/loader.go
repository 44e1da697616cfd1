package cli

import (
	"errors"
	"io/fs"

	"github.com/roach88/mcsampling/internal/config"
	"github.com/roach88/mcsampling/internal/ir"
)

// loadConfig loads and validates a configuration file and maps failures to
// exit codes: a missing file or unknown extension is a command error, a file
// that parses to an unusable configuration is a failure.
func loadConfig(path string) (ir.SimulationConfig, config.Format, error) {
	format, err := config.DetectFormat(path)
	if err != nil {
		return ir.SimulationConfig{}, "", WrapExitError(ExitCommandError, "unsupported config file", err)
	}

	cfg, err := config.Load(path)
	switch {
	case err == nil:
		return cfg, format, nil
	case errors.Is(err, fs.ErrNotExist):
		return ir.SimulationConfig{}, format, WrapExitError(ExitCommandError, "config file not found", err)
	case config.IsValidationError(err):
		return ir.SimulationConfig{}, format, WrapExitError(ExitFailure, "invalid config", err)
	default:
		return ir.SimulationConfig{}, format, WrapExitError(ExitCommandError, "failed to load config", err)
	}
}

// errorCode picks the code reported for err in CLI output: the config
// validation code when there is one, fallback otherwise.
func errorCode(err error, fallback string) string {
	if code := config.ErrorCode(err); code != "" {
		return code
	}
	return fallback
}
