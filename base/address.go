package base

import (
	"fmt"
	"net"
	"strconv"
	"strings"
)

// AddressSpecKind identifies the variant of a configured destination
type AddressSpecKind int

const (
	// AddressLocal targets the local system log, resolved per platform
	AddressLocal AddressSpecKind = iota
	// AddressUnixSocket targets a unix domain socket at a filesystem path
	AddressUnixSocket
	// AddressNetworkEndpoint targets a remote or local syslog daemon over UDP or TCP
	AddressNetworkEndpoint
)

// AddressSpec is the parsed, immutable form of the configured "address" value
type AddressSpec struct {
	Kind    AddressSpecKind
	Path    string // unix socket path, for AddressUnixSocket
	Host    string // for AddressNetworkEndpoint
	Port    int    // for AddressNetworkEndpoint
	Network string // "udp"/"tcp" for endpoints, "unixgram"/"unix" for paths, empty selects automatically
}

// ParseAddressSpec parses the configured address string: "local", an absolute
// filesystem path, or host:port. The network restricts the socket type and
// may be empty to select automatically.
func ParseAddressSpec(address string, network string) (AddressSpec, error) {
	switch {
	case address == "local":
		if network != "" {
			return AddressSpec{}, NewInvalidConfigurationError("network '%s' cannot be combined with address 'local'", network)
		}
		return AddressSpec{Kind: AddressLocal}, nil

	case strings.HasPrefix(address, "/"):
		switch network {
		case "", "unixgram", "unix":
			return AddressSpec{Kind: AddressUnixSocket, Path: address, Network: network}, nil
		default:
			return AddressSpec{}, NewInvalidConfigurationError("network '%s' is not valid for unix socket path '%s'", network, address)
		}

	default:
		host, portString, err := net.SplitHostPort(address)
		if err != nil {
			return AddressSpec{}, NewInvalidConfigurationError("malformed address '%s': %s", address, err.Error())
		}
		port, err := strconv.Atoi(portString)
		if err != nil || port <= 0 || port > 65535 {
			return AddressSpec{}, NewInvalidConfigurationError("malformed port in address '%s'", address)
		}
		switch network {
		case "", "udp", "tcp":
			return AddressSpec{Kind: AddressNetworkEndpoint, Host: host, Port: port, Network: network}, nil
		default:
			return AddressSpec{}, NewInvalidConfigurationError("network '%s' is not valid for endpoint '%s'", network, address)
		}
	}
}

func (spec AddressSpec) String() string {
	switch spec.Kind {
	case AddressLocal:
		return "local"
	case AddressUnixSocket:
		return spec.Path
	default:
		return fmt.Sprintf("%s:%d", spec.Host, spec.Port)
	}
}
