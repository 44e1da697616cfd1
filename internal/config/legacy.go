package config

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/roach88/mcsampling/internal/ir"
)

// legacyLines is the number of non-blank lines in a legacy parameter file:
// three section headers and eight values.
const legacyLines = 11

// ParseLegacy reads the legacy line-oriented parameter file:
//
//	# MC parameters
//	1000     Number of MC iterations
//	0.5      Maximum MC displacement
//	0.0      Initial configuration
//	# Physical parameters
//	1.0      Mass
//	1.0      Frequency
//	1.0      Inverse temperature
//	# Histogram parameters
//	10.0     Histogram domain
//	50       Number of bins
//
// Header lines are skipped whatever their content; on value lines only the
// first field is read and the rest is a comment. The result is not validated.
func ParseLegacy(r io.Reader) (ir.SimulationConfig, error) {
	var lines []string
	var numbers []int
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
		numbers = append(numbers, lineNo)
	}
	if err := scanner.Err(); err != nil {
		return ir.SimulationConfig{}, fmt.Errorf("read legacy config: %w", err)
	}
	if len(lines) < legacyLines {
		return ir.SimulationConfig{}, &ValidationError{
			Code:    ErrCodeParseFailed,
			Message: fmt.Sprintf("legacy config has %d lines, want %d", len(lines), legacyLines),
		}
	}

	var cfg ir.SimulationConfig
	var err error
	field := func(idx int) string {
		return strings.Fields(lines[idx])[0]
	}
	parseInt := func(idx int, name string) int {
		if err != nil {
			return 0
		}
		var v int
		v, err = strconv.Atoi(field(idx))
		if err != nil {
			err = legacyError(numbers[idx], name, err)
		}
		return v
	}
	parseFloat := func(idx int, name string) float64 {
		if err != nil {
			return 0
		}
		var v float64
		v, err = strconv.ParseFloat(field(idx), 64)
		if err != nil {
			err = legacyError(numbers[idx], name, err)
		}
		return v
	}

	// lines 0, 4 and 8 are section headers
	cfg.Iterations = parseInt(1, "iterations")
	cfg.MaxDisplacement = parseFloat(2, "max_displacement")
	cfg.InitialPosition = parseFloat(3, "initial_position")
	cfg.Mass = parseFloat(5, "mass")
	cfg.Frequency = parseFloat(6, "frequency")
	cfg.Beta = parseFloat(7, "beta")
	cfg.Domain = parseFloat(9, "domain")
	cfg.Bins = parseInt(10, "bins")
	if err != nil {
		return ir.SimulationConfig{}, err
	}
	return cfg, nil
}

func legacyError(line int, field string, err error) error {
	return &ValidationError{
		Code:    ErrCodeParseFailed,
		Field:   field,
		Message: fmt.Sprintf("line %d", line),
		Err:     err,
	}
}
