package syslogtarget

import (
	"net"
	"strconv"

	"github.com/relex/gotils/logger"
	"github.com/relex/syslog-client/base"
	"github.com/relex/syslog-client/defs"
)

// Resolver maps an AddressSpec to one live Target, opening the socket or
// native session eagerly. Resolution runs once during configuration, before
// any concurrent send traffic; it never retries on its own.
type Resolver struct {
	logger     logger.Logger
	dial       func(network string, address string) (net.Conn, error) // overridden in tests
	openNative func(program string) (NativeEmitter, error)            // overridden in tests
}

// NewResolver creates a Resolver using the real network and native logging APIs
func NewResolver(parentLogger logger.Logger) *Resolver {
	return &Resolver{
		logger:     parentLogger.WithField(defs.LabelComponent, "TargetResolver"),
		dial:       dialTransport,
		openNative: openNativeEmitter,
	}
}

func dialTransport(network string, address string) (net.Conn, error) {
	if network == "tcp" {
		return net.DialTimeout(network, address, defs.ConnectionTimeout)
	}
	return net.Dial(network, address)
}

// Resolve opens a Target for the given spec. The format applies to socket
// transports and may be WireFormatDefault: explicit specs then fall back to
// RFC 3164, "local" candidates carry their own format. program names the
// event source or logging subsystem for native targets.
func (resolver *Resolver) Resolve(spec base.AddressSpec, platform Platform, format base.WireFormat, program string) (*Target, error) {
	if format == base.WireFormatNative {
		return nil, base.NewInvalidConfigurationError("the native format cannot be requested explicitly")
	}
	switch spec.Kind {
	case base.AddressLocal:
		return resolver.resolveLocal(platform, format, program)
	case base.AddressUnixSocket:
		return resolver.resolveUnixSocket(spec, format)
	case base.AddressNetworkEndpoint:
		return resolver.resolveEndpoint(spec, format)
	default:
		return nil, base.NewInvalidConfigurationError("unsupported address spec: %s", spec)
	}
}

func (resolver *Resolver) resolveLocal(platform Platform, format base.WireFormat, program string) (*Target, error) {
	attempts := make([]base.TargetAttempt, 0, 2)
	for _, cand := range localCandidates(platform.Class) {
		target, err := resolver.openCandidate(cand, format, program)
		if err != nil {
			resolver.logger.Warnf("local target %s failed: %s", cand.describe(), err.Error())
			attempts = append(attempts, base.TargetAttempt{Candidate: cand.describe(), Err: err})
			continue
		}
		if cand.remark != "" {
			resolver.logger.Infof("resolved local target %s on %s: %s", cand.describe(), platform.Description, cand.remark)
		} else {
			resolver.logger.Infof("resolved local target %s on %s", cand.describe(), platform.Description)
		}
		return target, nil
	}
	return nil, &base.TargetUnreachableError{Attempts: attempts}
}

func (resolver *Resolver) openCandidate(cand candidate, override base.WireFormat, program string) (*Target, error) {
	if cand.kind == base.TransportNativeAPI {
		// format overrides are ignored for native targets, which carry typed fields
		emitter, err := resolver.openNative(program)
		if err != nil {
			return nil, err
		}
		return newNativeTarget(cand.describe(), emitter), nil
	}
	format := cand.format
	if override != base.WireFormatDefault {
		format = override
	}
	conn, err := resolver.dial(cand.kind.Network(), cand.address)
	if err != nil {
		return nil, err
	}
	return newSocketTarget(cand.kind, format, cand.describe(), conn), nil
}

// resolveUnixSocket connects to an explicit unix socket path; with no network
// configured it tries the datagram socket first and falls back to stream
func (resolver *Resolver) resolveUnixSocket(spec base.AddressSpec, format base.WireFormat) (*Target, error) {
	var kinds []base.TransportKind
	switch spec.Network {
	case "unixgram":
		kinds = []base.TransportKind{base.TransportUnixDatagram}
	case "unix":
		kinds = []base.TransportKind{base.TransportUnixStream}
	default:
		kinds = []base.TransportKind{base.TransportUnixDatagram, base.TransportUnixStream}
	}

	attempts := make([]base.TargetAttempt, 0, len(kinds))
	for _, kind := range kinds {
		desc := kind.String() + ":" + spec.Path
		conn, err := resolver.dial(kind.Network(), spec.Path)
		if err != nil {
			resolver.logger.Warnf("unix socket target %s failed: %s", desc, err.Error())
			attempts = append(attempts, base.TargetAttempt{Candidate: desc, Err: err})
			continue
		}
		return newSocketTarget(kind, socketFormat(format), desc, conn), nil
	}
	return nil, &base.TargetUnreachableError{Attempts: attempts}
}

func (resolver *Resolver) resolveEndpoint(spec base.AddressSpec, format base.WireFormat) (*Target, error) {
	kind := base.TransportUDP
	if spec.Network == "tcp" {
		kind = base.TransportTCP
	}
	address := net.JoinHostPort(spec.Host, strconv.Itoa(spec.Port))
	desc := kind.String() + ":" + address

	conn, err := resolver.dial(kind.Network(), address)
	if err != nil {
		resolver.logger.Warnf("endpoint target %s failed: %s", desc, err.Error())
		return nil, &base.TargetUnreachableError{Attempts: []base.TargetAttempt{{Candidate: desc, Err: err}}}
	}
	resolver.logger.WithField(defs.LabelRemote, address).Infof("resolved endpoint target %s", desc)
	return newSocketTarget(kind, socketFormat(format), desc, conn), nil
}

// socketFormat applies the RFC 3164 default for explicit socket specs
func socketFormat(format base.WireFormat) base.WireFormat {
	if format == base.WireFormatDefault {
		return base.WireFormatRFC3164
	}
	return format
}
