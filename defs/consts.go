package defs

// Common labels for logging
const (
	LabelComponent = "component"
	LabelTarget    = "target"
	LabelRemote    = "remote"
)
