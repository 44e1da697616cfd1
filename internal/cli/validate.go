package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/mcsampling/internal/config"
	"github.com/roach88/mcsampling/internal/ir"
	"github.com/roach88/mcsampling/internal/report"
)

// ValidationResult holds validation results.
type ValidationResult struct {
	Valid  bool                 `json:"valid"`
	Format string               `json:"format,omitempty"`
	Config *ir.SimulationConfig `json:"config,omitempty"`
	Hash   string               `json:"config_hash,omitempty"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	var emitYAML bool

	cmd := &cobra.Command{
		Use:   "validate <config>",
		Short: "Validate a configuration without sampling",
		Long: `Parse and validate a configuration file without running the simulation.

Checks the file syntax, the CUE schema for .cue files, and the iteration
and bin limits. Prints the parameter banner for a valid configuration.
With --emit-yaml, prints the configuration as YAML instead, which converts
a legacy .in or .cue file to the YAML format.

Exit codes:
  0 - Configuration valid
  1 - Configuration invalid
  2 - Command error (missing file, unsupported extension)`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true, // Don't print usage on errors
		SilenceErrors: true, // Don't print errors - we handle our own error output
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args[0], emitYAML, cmd)
		},
	}

	cmd.Flags().BoolVar(&emitYAML, "emit-yaml", false, "print the configuration as YAML")

	return cmd
}

func runValidate(opts *RootOptions, path string, emitYAML bool, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd.OutOrStdout(), cmd.ErrOrStderr())

	cfg, format, err := loadConfig(path)
	if err != nil {
		if formatter.IsJSON() {
			_ = formatter.encode(CLIResponse{
				Status: "error",
				Data:   ValidationResult{Valid: false, Format: string(format)},
				Error:  &CLIError{Code: errorCode(err, ErrCodeConfig), Message: err.Error()},
			})
			return err
		}
		fmt.Fprintln(formatter.Writer, "✗ Validation failed")
		fmt.Fprintf(formatter.Writer, "  %s\n", err)
		return err
	}
	formatter.VerboseLog("Parsed %s as %s", path, format)

	hash, err := ir.ConfigHash(cfg)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to hash config", err)
	}

	if formatter.IsJSON() {
		return formatter.Success(ValidationResult{
			Valid:  true,
			Format: string(format),
			Config: &cfg,
			Hash:   hash,
		})
	}

	if emitYAML {
		data, err := config.MarshalYAML(cfg)
		if err != nil {
			return WrapExitError(ExitCommandError, "failed to encode config", err)
		}
		_, err = formatter.Writer.Write(data)
		return err
	}

	fmt.Fprintf(formatter.Writer, "✓ Config valid (%s)\n", format)
	formatter.VerboseLog("Config hash: %s", hash)
	return report.EchoParameters(formatter.Writer, cfg)
}
