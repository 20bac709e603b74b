package base

// TransportKind identifies the concrete mechanism carrying log records to the system log
type TransportKind int

// All supported transport kinds. Unix paths with an unspecified network try
// UnixDatagram first and fall back to UnixStream, like the classic libc
// openlog behavior.
const (
	TransportUnixDatagram TransportKind = iota
	TransportUnixStream
	TransportUDP
	TransportTCP
	TransportNativeAPI
)

var transportKindNames = []string{"unixgram", "unix", "udp", "tcp", "native"}

func (kind TransportKind) String() string {
	if kind < 0 || int(kind) >= len(transportKindNames) {
		return "unknown"
	}
	return transportKindNames[kind]
}

// Network returns the net package network name for socket kinds, or empty for the native API
func (kind TransportKind) Network() string {
	if kind == TransportNativeAPI {
		return ""
	}
	return kind.String()
}

// WireFormat selects how a log record is rendered for the chosen transport
type WireFormat int

const (
	// WireFormatDefault lets the resolver pick: RFC 3164 for explicit socket
	// addresses, or whatever the winning local candidate prescribes
	WireFormatDefault WireFormat = iota
	// WireFormatRFC3164 is the legacy BSD syslog format (RFC 3164)
	WireFormatRFC3164
	// WireFormatRFC5424 is the modern syslog format with APP-NAME/PROCID/MSGID headers (RFC 5424)
	WireFormatRFC5424
	// WireFormatPri frames the message as "<PRI>" + text with no further headers
	WireFormatPri
	// WireFormatUser sends the message text as-is; appendNul is ignored
	WireFormatUser
	// WireFormatNative passes severity, program and message as typed fields
	// to a native logging API; no byte frame is assembled
	WireFormatNative
)

var wireFormatNames = []string{"", "rfc3164", "rfc5424", "pri", "user", "native"}

func (format WireFormat) String() string {
	if format < 0 || int(format) >= len(wireFormatNames) {
		return "unknown"
	}
	return wireFormatNames[format]
}

// ParseWireFormat maps a configured format name to a WireFormat; empty means WireFormatDefault
func ParseWireFormat(name string) (WireFormat, error) {
	switch name {
	case "":
		return WireFormatDefault, nil
	case "rfc3164":
		return WireFormatRFC3164, nil
	case "rfc5424":
		return WireFormatRFC5424, nil
	case "pri":
		return WireFormatPri, nil
	case "user":
		return WireFormatUser, nil
	default:
		return WireFormatDefault, NewInvalidConfigurationError("unsupported format: '%s'", name)
	}
}
