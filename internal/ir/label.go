package ir

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// NormalizeLabel trims a user supplied run label and converts it to NFC so
// that composed and decomposed spellings select the same stored runs.
func NormalizeLabel(label string) string {
	return norm.NFC.String(strings.TrimSpace(label))
}
