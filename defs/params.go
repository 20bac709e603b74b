package defs

import (
	"time"
)

const (
	// SyslogUDPPort is the IANA-assigned syslog port for UDP transports
	SyslogUDPPort = 514

	// SyslogTCPPort is the default port for syslog over stream transports (RFC 6587)
	SyslogTCPPort = 514

	// LinuxLogSocketPath is the well-known datagram socket of the local syslog daemon on Linux,
	// also used by Cygwin-class environments when a syslog relay is installed
	LinuxLogSocketPath = "/dev/log"

	// MacOSLogSocketPath is the Apple system log socket used before macOS 10.12
	MacOSLogSocketPath = "/var/run/syslog"
)

var (
	// ConnectionTimeout is for establishing stream connections during target resolution
	//
	// Sends carry no timeout of their own; timeout policy after resolution belongs to the transport
	ConnectionTimeout = 60 * time.Second

	// DefaultMaxMessageBytes caps the length of the message field in encoded frames
	//
	// Longer messages are truncated at a UTF-8 boundary, never rejected
	DefaultMaxMessageBytes = 1 * 1024 * 1024
)
