package base

import (
	"time"
)

// LogRecord is one log entry handed to the transport, with the message already rendered to text
//
// Records live for a single send call and are never retained by the handler
type LogRecord struct {
	Message   string    // rendered log message
	Severity  string    // severity name, e.g. "warning"; see syslogprotocol.SeverityNames
	Facility  string    // optional facility name overriding the handler default
	Program   string    // optional program identifier overriding the handler default
	PID       string    // optional process ID for the RFC 5424 PROCID field
	Timestamp time.Time // zero value makes the encoder read the clock once per call
}

// EncodedMessage is a finished wire frame ready for one transport send
type EncodedMessage struct {
	Data          []byte
	NulTerminated bool // whether Data ends with the 0x00 frame delimiter expected by some syslog daemons
}
