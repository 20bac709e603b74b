package syslogtarget

import (
	"errors"
	"io"
	"net"
	"sync/atomic"

	"github.com/relex/syslog-client/base"
	"github.com/relex/syslog-client/util"
)

var errTargetClosed = errors.New("target is closed")

// Target is a resolved, live syslog destination. The connection handle is
// owned exclusively by the Target and released exactly once by Close.
//
// Send and Emit are as safe for concurrent use as the underlying transport
// primitive; the Target adds no locking of its own. Datagram sockets are safe
// to share, callers on stream or native targets serialize externally.
type Target struct {
	kind      base.TransportKind
	format    base.WireFormat
	desc      string
	conn      net.Conn      // nil for native targets
	emitter   NativeEmitter // nil for socket targets
	closed    int32
	closeErr  error
	closeOnce util.RunOnce
}

func newSocketTarget(kind base.TransportKind, format base.WireFormat, desc string, conn net.Conn) *Target {
	target := &Target{
		kind:   kind,
		format: format,
		desc:   desc,
		conn:   conn,
	}
	target.closeOnce = util.NewRunOnce(func() {
		target.closeErr = conn.Close()
	})
	return target
}

func newNativeTarget(desc string, emitter NativeEmitter) *Target {
	target := &Target{
		kind:    base.TransportNativeAPI,
		format:  base.WireFormatNative,
		desc:    desc,
		emitter: emitter,
	}
	target.closeOnce = util.NewRunOnce(func() {
		target.closeErr = emitter.Close()
	})
	return target
}

// Kind returns the transport kind carrying this target's records
func (target *Target) Kind() base.TransportKind {
	return target.kind
}

// WireFormat returns the format records must be encoded in for this target
func (target *Target) WireFormat() base.WireFormat {
	return target.format
}

// Describe returns the winning candidate's description for diagnostics
func (target *Target) Describe() string {
	return target.desc
}

// Send writes one encoded frame to the socket; failures come back as
// TransportSendError and leave the target usable for further sends
func (target *Target) Send(message base.EncodedMessage) error {
	if atomic.LoadInt32(&target.closed) != 0 {
		return &base.TransportSendError{Kind: target.kind, Err: errTargetClosed}
	}
	if target.conn == nil {
		return &base.TransportSendError{Kind: target.kind, Err: errors.New("native target carries typed fields, use Emit")}
	}
	if err := writeAll(target.conn, message.Data); err != nil {
		return &base.TransportSendError{Kind: target.kind, Err: err}
	}
	return nil
}

// Emit passes one record's typed fields to the native logging API
func (target *Target) Emit(severity int, program string, message string) error {
	if atomic.LoadInt32(&target.closed) != 0 {
		return &base.TransportSendError{Kind: target.kind, Err: errTargetClosed}
	}
	if target.emitter == nil {
		return &base.TransportSendError{Kind: target.kind, Err: errors.New("socket target carries encoded frames, use Send")}
	}
	if err := target.emitter.Emit(severity, program, message); err != nil {
		return &base.TransportSendError{Kind: target.kind, Err: err}
	}
	return nil
}

// Close releases the connection handle exactly once; sends after Close are rejected
func (target *Target) Close() error {
	atomic.StoreInt32(&target.closed, 1)
	target.closeOnce()
	return target.closeErr
}

func writeAll(conn io.Writer, data []byte) error {
	for {
		n, err := conn.Write(data)
		if err != nil {
			return err
		}
		data = data[n:]
		if len(data) == 0 {
			return nil
		}
	}
}
