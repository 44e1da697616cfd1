package cli

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

// writeConfig writes a YAML config with the given sizes into dir.
func writeConfig(t *testing.T, dir string, iterations, bins int) string {
	t.Helper()
	path := filepath.Join(dir, "mc_sampling.yaml")
	content := fmt.Sprintf(`monte_carlo:
  iterations: %d
  max_displacement: 0.5
  initial_position: 0.0
physics:
  mass: 1.0
  frequency: 1.0
  beta: 1.0
histogram:
  domain: 10.0
  bins: %d
`, iterations, bins)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// execute runs cmd with args and returns stdout.
func execute(cmd *cobra.Command, args ...string) (string, error) {
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}
