package syslogtarget

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net"
	"testing"
	"time"

	"github.com/relex/gotils/logger"
	"github.com/relex/syslog-client/base"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAddr string

func (addr fakeAddr) Network() string { return "fake" }
func (addr fakeAddr) String() string  { return string(addr) }

// fakeConn records written frames for assertions
type fakeConn struct {
	network    string
	address    string
	buf        bytes.Buffer
	closeCount int
}

func (conn *fakeConn) Read([]byte) (int, error)         { return 0, io.EOF }
func (conn *fakeConn) Write(p []byte) (int, error)      { return conn.buf.Write(p) }
func (conn *fakeConn) Close() error                     { conn.closeCount++; return nil }
func (conn *fakeConn) LocalAddr() net.Addr              { return fakeAddr("local") }
func (conn *fakeConn) RemoteAddr() net.Addr             { return fakeAddr(conn.network + ":" + conn.address) }
func (conn *fakeConn) SetDeadline(time.Time) error      { return nil }
func (conn *fakeConn) SetReadDeadline(time.Time) error  { return nil }
func (conn *fakeConn) SetWriteDeadline(time.Time) error { return nil }

// newTestResolver returns a resolver whose dialer only accepts the listed
// "network:address" candidates, recording every attempt in order
func newTestResolver(accepted ...string) (*Resolver, *[]string, *fakeConn) {
	dialed := &[]string{}
	conn := &fakeConn{}
	resolver := NewResolver(logger.Root())
	resolver.dial = func(network string, address string) (net.Conn, error) {
		desc := network + ":" + address
		*dialed = append(*dialed, desc)
		for _, ok := range accepted {
			if desc == ok {
				conn.network = network
				conn.address = address
				return conn, nil
			}
		}
		return nil, fmt.Errorf("connection refused: %s", desc)
	}
	resolver.openNative = func(string) (NativeEmitter, error) {
		return nil, errors.New("no native API in tests")
	}
	return resolver, dialed, conn
}

func TestResolveLocalLinux(t *testing.T) {
	resolver, dialed, _ := newTestResolver("unixgram:/dev/log")
	target, err := resolver.Resolve(base.AddressSpec{Kind: base.AddressLocal},
		Platform{Class: PlatformLinux, Description: "linux"}, base.WireFormatDefault, "myapp")
	require.NoError(t, err)
	defer target.Close()

	assert.Equal(t, []string{"unixgram:/dev/log"}, *dialed)
	assert.Equal(t, base.TransportUnixDatagram, target.Kind())
	assert.Equal(t, base.WireFormatRFC5424, target.WireFormat())
}

func TestResolveLocalLinuxFallsBackToUDP(t *testing.T) {
	resolver, dialed, _ := newTestResolver("udp:localhost:514")
	target, err := resolver.Resolve(base.AddressSpec{Kind: base.AddressLocal},
		Platform{Class: PlatformLinux, Description: "linux"}, base.WireFormatDefault, "myapp")
	require.NoError(t, err)
	defer target.Close()

	assert.Equal(t, []string{"unixgram:/dev/log", "udp:localhost:514"}, *dialed)
	assert.Equal(t, base.TransportUDP, target.Kind())
	assert.Equal(t, base.WireFormatRFC5424, target.WireFormat())
}

func TestResolveLocalAllCandidatesFail(t *testing.T) {
	resolver, dialed, _ := newTestResolver() // nothing accepted
	target, err := resolver.Resolve(base.AddressSpec{Kind: base.AddressLocal},
		Platform{Class: PlatformLinux, Description: "linux"}, base.WireFormatDefault, "myapp")
	assert.Nil(t, target, "no partially-usable target may be returned")

	var unreachable *base.TargetUnreachableError
	require.ErrorAs(t, err, &unreachable)
	require.Len(t, unreachable.Attempts, 2)
	assert.Equal(t, "unixgram:/dev/log", unreachable.Attempts[0].Candidate)
	assert.Equal(t, "udp:localhost:514", unreachable.Attempts[1].Candidate)
	assert.Equal(t, []string{"unixgram:/dev/log", "udp:localhost:514"}, *dialed)
	assert.Contains(t, err.Error(), "no syslog target reachable")
}

func TestResolveLocalNative(t *testing.T) {
	emitted := []string{}
	resolver, _, _ := newTestResolver()
	resolver.openNative = func(program string) (NativeEmitter, error) {
		return &fakeEmitter{program: program, lines: &emitted}, nil
	}

	for _, class := range []PlatformClass{PlatformMacOSUnified, PlatformWindows} {
		target, err := resolver.Resolve(base.AddressSpec{Kind: base.AddressLocal},
			Platform{Class: class, Description: class.String()}, base.WireFormatDefault, "myapp")
		require.NoError(t, err, class.String())
		assert.Equal(t, base.TransportNativeAPI, target.Kind())
		assert.Equal(t, base.WireFormatNative, target.WireFormat())
		assert.NoError(t, target.Emit(4, "myapp", "disk full"))
		assert.NoError(t, target.Close())
	}
	assert.Equal(t, []string{"myapp/4/disk full", "myapp/4/disk full"}, emitted)
}

func TestResolveExplicitUnixSocketFallsBackToStream(t *testing.T) {
	resolver, dialed, _ := newTestResolver("unix:/var/run/custom.sock")
	spec := base.AddressSpec{Kind: base.AddressUnixSocket, Path: "/var/run/custom.sock"}
	target, err := resolver.Resolve(spec, Platform{Class: PlatformLinux}, base.WireFormatDefault, "myapp")
	require.NoError(t, err)
	defer target.Close()

	assert.Equal(t, []string{"unixgram:/var/run/custom.sock", "unix:/var/run/custom.sock"}, *dialed)
	assert.Equal(t, base.TransportUnixStream, target.Kind())
	assert.Equal(t, base.WireFormatRFC3164, target.WireFormat(), "explicit specs default to RFC 3164")
}

func TestResolveExplicitUnixSocketHonorsNetwork(t *testing.T) {
	resolver, dialed, _ := newTestResolver()
	spec := base.AddressSpec{Kind: base.AddressUnixSocket, Path: "/dev/log", Network: "unixgram"}
	_, err := resolver.Resolve(spec, Platform{Class: PlatformLinux}, base.WireFormatDefault, "myapp")

	var unreachable *base.TargetUnreachableError
	require.ErrorAs(t, err, &unreachable)
	assert.Len(t, unreachable.Attempts, 1, "no stream fallback when the network is pinned")
	assert.Equal(t, []string{"unixgram:/dev/log"}, *dialed)
}

func TestResolveEndpoint(t *testing.T) {
	resolver, dialed, _ := newTestResolver("tcp:graylog.example.com:6514")
	spec := base.AddressSpec{Kind: base.AddressNetworkEndpoint, Host: "graylog.example.com", Port: 6514, Network: "tcp"}
	target, err := resolver.Resolve(spec, Platform{Class: PlatformLinux}, base.WireFormatRFC5424, "myapp")
	require.NoError(t, err)
	defer target.Close()

	assert.Equal(t, []string{"tcp:graylog.example.com:6514"}, *dialed)
	assert.Equal(t, base.TransportTCP, target.Kind())
	assert.Equal(t, base.WireFormatRFC5424, target.WireFormat())
}

func TestResolveRejectsNativeFormatOverride(t *testing.T) {
	resolver, _, _ := newTestResolver()
	_, err := resolver.Resolve(base.AddressSpec{Kind: base.AddressLocal},
		Platform{Class: PlatformLinux}, base.WireFormatNative, "myapp")
	var confErr *base.InvalidConfigurationError
	assert.ErrorAs(t, err, &confErr)
}

func TestTargetSendAndClose(t *testing.T) {
	resolver, _, conn := newTestResolver("udp:localhost:514")
	target, err := resolver.Resolve(base.AddressSpec{Kind: base.AddressLocal},
		Platform{Class: PlatformUnix, Description: "freebsd"}, base.WireFormatDefault, "myapp")
	require.NoError(t, err)

	require.NoError(t, target.Send(base.EncodedMessage{Data: []byte("<14>hello\x00"), NulTerminated: true}))
	assert.Equal(t, "<14>hello\x00", conn.buf.String())

	assert.NoError(t, target.Close())
	assert.NoError(t, target.Close(), "close is idempotent")
	assert.Equal(t, 1, conn.closeCount, "the handle is released exactly once")

	err = target.Send(base.EncodedMessage{Data: []byte("late")})
	var sendErr *base.TransportSendError
	require.ErrorAs(t, err, &sendErr)
	assert.Equal(t, base.TransportUDP, sendErr.Kind)
}

type fakeEmitter struct {
	program string
	lines   *[]string
	closed  bool
}

func (emitter *fakeEmitter) Emit(severity int, program string, message string) error {
	*emitter.lines = append(*emitter.lines, fmt.Sprintf("%s/%d/%s", program, severity, message))
	return nil
}

func (emitter *fakeEmitter) Close() error {
	emitter.closed = true
	return nil
}
