package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/roach88/mcsampling/internal/ir"
)

// WriteFiles writes configuration.out, histogram.out and both gnuplot scripts
// into dir, creating it if needed. It returns the written paths in that order.
func WriteFiles(dir string, cfg ir.SimulationConfig, tr *ir.Trajectory, d *ir.Density) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	outputs := []struct {
		name  string
		write func(io.Writer) error
	}{
		{ConfigurationFile, func(w io.Writer) error { return WriteConfiguration(w, tr) }},
		{HistogramFile, func(w io.Writer) error { return WriteHistogram(w, d) }},
		{HistogramScriptFile, func(w io.Writer) error {
			_, err := io.WriteString(w, HistogramScript(cfg, d))
			return err
		}},
		{ConfigScriptFile, func(w io.Writer) error {
			_, err := io.WriteString(w, ConfigurationScript())
			return err
		}},
	}

	paths := make([]string, 0, len(outputs))
	for _, out := range outputs {
		path := filepath.Join(dir, out.name)
		if err := writeFile(path, out.write); err != nil {
			return nil, fmt.Errorf("write %s: %w", out.name, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func writeFile(path string, write func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return write(f)
}
