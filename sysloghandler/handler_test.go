package sysloghandler

import (
	"net"
	"testing"
	"time"

	"github.com/relex/gotils/logger"
	"github.com/relex/gotils/promexporter/promreg"
	"github.com/relex/syslog-client/base"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandlerSendsOverUDP(t *testing.T) {
	server, err := net.ListenPacket("udp", "127.0.0.1:0")
	require.NoError(t, err)
	defer server.Close()

	cfg := NewConfig()
	cfg.Address = server.LocalAddr().String()
	cfg.Network = "udp"
	cfg.Format = "rfc3164"
	cfg.Facility = "local0"
	cfg.Hostname = "myhost"
	cfg.Program = "myapp"

	mfactory := promreg.NewMetricFactory("testhandler_", nil, nil)
	handler, err := NewHandler(logger.Root(), cfg, mfactory)
	require.NoError(t, err)
	defer handler.Close()

	assert.Equal(t, base.TransportUDP, handler.Target().Kind())
	assert.Equal(t, base.WireFormatRFC3164, handler.Target().WireFormat())

	require.NoError(t, handler.Send(&base.LogRecord{Severity: "warning", Message: "disk full"}))

	require.NoError(t, server.SetReadDeadline(time.Now().Add(5*time.Second)))
	buffer := make([]byte, 4096)
	n, _, err := server.ReadFrom(buffer)
	require.NoError(t, err)
	frame := string(buffer[:n])
	assert.Regexp(t, `^<132>[A-Z][a-z]{2} [ \d]\d \d{2}:\d{2}:\d{2} myhost myapp: disk full\x00$`, frame)

	assert.EqualValues(t, 1, mfactory.AddOrGetPrefix("handler_", nil, nil).
		AddOrGetCounter("sent_records_total", "Numbers of delivered records", nil, nil).Get())
}

func TestHandlerRejectsBadRecord(t *testing.T) {
	server, err := net.ListenPacket("udp", "127.0.0.1:0")
	require.NoError(t, err)
	defer server.Close()

	cfg := NewConfig()
	cfg.Address = server.LocalAddr().String()

	mfactory := promreg.NewMetricFactory("testhandler_", nil, nil)
	handler, err := NewHandler(logger.Root(), cfg, mfactory)
	require.NoError(t, err)
	defer handler.Close()

	err = handler.Send(&base.LogRecord{Severity: "catastrophic", Message: "nope"})
	var confErr *base.InvalidConfigurationError
	require.ErrorAs(t, err, &confErr)

	assert.EqualValues(t, 1, mfactory.AddOrGetPrefix("handler_", nil, nil).
		AddOrGetCounter("encode_errors_total", "Numbers of records rejected during encoding", nil, nil).Get())
}

func TestHandlerSendAfterClose(t *testing.T) {
	server, err := net.ListenPacket("udp", "127.0.0.1:0")
	require.NoError(t, err)
	defer server.Close()

	cfg := NewConfig()
	cfg.Address = server.LocalAddr().String()

	handler, err := NewHandler(logger.Root(), cfg, promreg.NewMetricFactory("testhandler_", nil, nil))
	require.NoError(t, err)
	require.NoError(t, handler.Close())
	require.NoError(t, handler.Close(), "close is idempotent")

	err = handler.Send(&base.LogRecord{Severity: "info", Message: "late"})
	var sendErr *base.TransportSendError
	assert.ErrorAs(t, err, &sendErr)
}

func TestHandlerFailsEagerlyOnUnreachableTarget(t *testing.T) {
	cfg := NewConfig()
	cfg.Address = "/nonexistent/syslog.sock"

	handler, err := NewHandler(logger.Root(), cfg, promreg.NewMetricFactory("testhandler_", nil, nil))
	assert.Nil(t, handler)
	var unreachable *base.TargetUnreachableError
	assert.ErrorAs(t, err, &unreachable)
}
