package store

import (
	"strings"

	"github.com/roach88/mcsampling/internal/ir"
)

// RunFilter selects runs for ListRuns. Zero-valued fields match every run.
type RunFilter struct {
	// Label matches after NFC normalization.
	Label      string
	ConfigHash string
	Seed       *int64
}

// equals is a single "column = ?" predicate.
type equals struct {
	column string
	value  any
}

func (f RunFilter) predicates() []equals {
	var preds []equals
	if label := ir.NormalizeLabel(f.Label); label != "" {
		preds = append(preds, equals{column: "label", value: label})
	}
	if f.ConfigHash != "" {
		preds = append(preds, equals{column: "config_hash", value: f.ConfigHash})
	}
	if f.Seed != nil {
		preds = append(preds, equals{column: "seed", value: *f.Seed})
	}
	return preds
}

// compile returns the filter as a parameterized query over runs.
// Values are never interpolated and every query carries a stable order key.
func (f RunFilter) compile() (string, []any) {
	var b strings.Builder
	b.WriteString(`SELECT ` + runColumns + ` FROM runs`)

	preds := f.predicates()
	params := make([]any, 0, len(preds))
	for i, p := range preds {
		if i == 0 {
			b.WriteString(" WHERE ")
		} else {
			b.WriteString(" AND ")
		}
		b.WriteString(p.column + " = ?")
		params = append(params, p.value)
	}

	b.WriteString(` ORDER BY seq ASC, id ASC COLLATE BINARY`)
	return b.String(), params
}
