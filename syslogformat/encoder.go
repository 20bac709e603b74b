// Package syslogformat renders log records into syslog wire frames: RFC 3164,
// RFC 5424, and the simpler "pri" and "user" framings, plus the typed-field
// resolution used by native logging APIs.
package syslogformat

import (
	"bytes"
	"strconv"
	"time"

	"github.com/relex/syslog-client/base"
	"github.com/relex/syslog-client/defs"
	"github.com/relex/syslog-client/syslogprotocol"
	"github.com/relex/syslog-client/util"
)

// rfc5424Timestamp keeps microsecond precision with a numeric UTC offset, e.g. 2022-08-25T10:30:00.000000+03:00
const rfc5424Timestamp = "2006-01-02T15:04:05.000000Z07:00"

// nilValue is the RFC 5424 placeholder for absent header fields
const nilValue = "-"

// Encoder renders LogRecords for one resolved target
//
// Encoding has no side effects and is a pure function of its inputs: with a
// fixed clock, identical records yield byte-identical frames
type Encoder struct {
	format          base.WireFormat
	hostname        string
	program         string
	facility        int // default facility code for records without an override
	appendNul       bool
	maxMessageBytes int
	now             func() time.Time // clock, read once per call for records without a timestamp
}

// NewEncoder creates an Encoder for the given wire format. hostname comes from
// the caller's environment and is never computed here. maxMessageBytes <= 0
// selects defs.DefaultMaxMessageBytes.
func NewEncoder(format base.WireFormat, hostname string, program string, defaultFacility string,
	appendNul bool, maxMessageBytes int,
) (*Encoder, error) {
	facility, err := syslogprotocol.FacilityCode(defaultFacility)
	if err != nil {
		return nil, err
	}
	if maxMessageBytes <= 0 {
		maxMessageBytes = defs.DefaultMaxMessageBytes
	}
	return &Encoder{
		format:          format,
		hostname:        hostname,
		program:         program,
		facility:        facility,
		appendNul:       appendNul,
		maxMessageBytes: maxMessageBytes,
		now:             time.Now,
	}, nil
}

// Encode renders one record into the frame for a socket-based transport
func (enc *Encoder) Encode(record *base.LogRecord) (base.EncodedMessage, error) {
	severity, facility, message, err := enc.resolveRecord(record)
	if err != nil {
		return base.EncodedMessage{}, err
	}

	buf := bytes.Buffer{}
	buf.Grow(len(message) + 64)

	switch enc.format {
	case base.WireFormatUser:
		buf.WriteString(message)
		// appendNul is ignored for the user format
		return base.EncodedMessage{Data: buf.Bytes()}, nil

	case base.WireFormatPri:
		writePri(&buf, facility, severity)
		buf.WriteString(message)

	case base.WireFormatRFC3164:
		writePri(&buf, facility, severity)
		buf.WriteString(enc.timestamp(record).Format(time.Stamp))
		buf.WriteByte(' ')
		buf.WriteString(enc.hostname)
		buf.WriteByte(' ')
		// RFC 3164 has no APP-NAME field; the program prefix is simply omitted when absent
		if program := enc.programOf(record); program != "" {
			buf.WriteString(program)
			buf.WriteString(": ")
		}
		buf.WriteString(message)

	case base.WireFormatRFC5424:
		writePri(&buf, facility, severity)
		buf.WriteString("1 ")
		buf.WriteString(enc.timestamp(record).Format(rfc5424Timestamp))
		buf.WriteByte(' ')
		buf.WriteString(orNil(enc.hostname))
		buf.WriteByte(' ')
		buf.WriteString(orNil(enc.programOf(record))) // APP-NAME
		buf.WriteByte(' ')
		buf.WriteString(orNil(record.PID)) // PROCID
		buf.WriteByte(' ')
		buf.WriteString(nilValue) // MSGID
		buf.WriteByte(' ')
		buf.WriteString(nilValue) // STRUCTURED-DATA
		buf.WriteByte(' ')
		buf.WriteString(message)

	default:
		return base.EncodedMessage{}, &base.EncodingError{
			Reason: "format '" + enc.format.String() + "' produces no encoded frame",
		}
	}

	if !enc.appendNul {
		return base.EncodedMessage{Data: buf.Bytes()}, nil
	}
	buf.WriteByte(0)
	return base.EncodedMessage{Data: buf.Bytes(), NulTerminated: true}, nil
}

// EncodeNative resolves the typed fields passed to a native logging API; no frame is assembled
func (enc *Encoder) EncodeNative(record *base.LogRecord) (severity int, program string, message string, err error) {
	severity, _, message, err = enc.resolveRecord(record)
	program = enc.programOf(record)
	return severity, program, message, err
}

// resolveRecord validates names against the protocol tables and truncates the
// message; an unrecognized name is an error, never a silent default
func (enc *Encoder) resolveRecord(record *base.LogRecord) (severity int, facility int, message string, err error) {
	severity, err = syslogprotocol.SeverityCode(record.Severity)
	if err != nil {
		return 0, 0, "", err
	}
	facility = enc.facility
	if record.Facility != "" {
		facility, err = syslogprotocol.FacilityCode(record.Facility)
		if err != nil {
			return 0, 0, "", err
		}
	}
	message = util.TruncateUTF8(record.Message, enc.maxMessageBytes)
	return severity, facility, message, nil
}

func (enc *Encoder) timestamp(record *base.LogRecord) time.Time {
	if record.Timestamp.IsZero() {
		return enc.now()
	}
	return record.Timestamp
}

func (enc *Encoder) programOf(record *base.LogRecord) string {
	if record.Program != "" {
		return record.Program
	}
	return enc.program
}

func writePri(buf *bytes.Buffer, facility int, severity int) {
	buf.WriteByte('<')
	buf.WriteString(strconv.Itoa(syslogprotocol.PRI(facility, severity)))
	buf.WriteByte('>')
}

func orNil(value string) string {
	if value == "" {
		return nilValue
	}
	return value
}
