package ir

// Version constants for stored runs.
const (
	// SchemaVersion is the version of the stored run layout.
	SchemaVersion = "1"

	// EngineVersion is the mcsampling engine version.
	EngineVersion = "0.1.0"
)
