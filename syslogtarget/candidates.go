package syslogtarget

import (
	"strconv"

	"github.com/relex/syslog-client/base"
	"github.com/relex/syslog-client/defs"
)

// candidate is one transport descriptor in a platform's ordered fallback chain
type candidate struct {
	kind    base.TransportKind
	address string          // socket path or host:port, empty for the native API
	format  base.WireFormat // format prescribed by the candidate, overridable for socket kinds
	remark  string          // known limitation, logged when the candidate wins
}

func (cand candidate) describe() string {
	if cand.kind == base.TransportNativeAPI {
		return "native API"
	}
	return cand.kind.String() + ":" + cand.address
}

// localCandidates returns the ordered fallback chain for address "local".
// Turning the per-OS branching into one table keeps the dispatch testable.
func localCandidates(class PlatformClass) []candidate {
	loopback := "localhost:" + strconv.Itoa(defs.SyslogUDPPort)
	udpLoopback := candidate{kind: base.TransportUDP, address: loopback, format: base.WireFormatRFC5424}

	switch class {
	case PlatformLinux:
		return []candidate{
			{kind: base.TransportUnixDatagram, address: defs.LinuxLogSocketPath, format: base.WireFormatRFC5424},
			udpLoopback,
		}
	case PlatformMacOSUnified:
		return []candidate{
			{kind: base.TransportNativeAPI, format: base.WireFormatNative},
		}
	case PlatformMacOSSyslog:
		return []candidate{
			{kind: base.TransportUnixDatagram, address: defs.MacOSLogSocketPath, format: base.WireFormatUser},
		}
	case PlatformWindows:
		return []candidate{
			{kind: base.TransportNativeAPI, format: base.WireFormatNative},
		}
	case PlatformCygwin:
		return []candidate{
			{
				kind:    base.TransportUnixDatagram,
				address: defs.LinuxLogSocketPath,
				format:  base.WireFormatRFC5424,
				remark:  "delivery depends on an installed syslog relay; the socket may open with no daemon consuming it",
			},
		}
	default: // PlatformUnix and PlatformOther
		return []candidate{udpLoopback}
	}
}
