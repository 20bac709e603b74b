package base

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// InvalidConfigurationError reports an unusable address spec, an unsupported
// format/transport combination, or an unrecognized facility or severity name.
// It is never silently defaulted away.
type InvalidConfigurationError struct {
	Reason string
}

// NewInvalidConfigurationError creates an InvalidConfigurationError with a formatted reason
func NewInvalidConfigurationError(format string, args ...interface{}) *InvalidConfigurationError {
	return &InvalidConfigurationError{Reason: fmt.Sprintf(format, args...)}
}

func (err *InvalidConfigurationError) Error() string {
	return "invalid configuration: " + err.Reason
}

// EncodingError reports a malformed log record detected during encoding
type EncodingError struct {
	Reason string
}

func (err *EncodingError) Error() string {
	return "encoding error: " + err.Reason
}

// TargetAttempt records one failed candidate from the resolution fallback chain
type TargetAttempt struct {
	Candidate string // candidate description, e.g. "unixgram:/dev/log"
	Err       error  // the underlying open failure, OS error included
}

// TargetUnreachableError reports that every candidate in the fallback chain
// failed to open; Attempts keeps the per-candidate failures for diagnosis
type TargetUnreachableError struct {
	Attempts []TargetAttempt
}

func (err *TargetUnreachableError) Error() string {
	descriptions := lo.Map(err.Attempts, func(attempt TargetAttempt, _ int) string {
		return fmt.Sprintf("%s: %s", attempt.Candidate, attempt.Err.Error())
	})
	return "no syslog target reachable: " + strings.Join(descriptions, "; ")
}

// TransportSendError wraps a send or emit failure from the underlying transport.
// The target stays usable; retry or escalation is the caller's decision.
type TransportSendError struct {
	Kind TransportKind
	Err  error
}

func (err *TransportSendError) Error() string {
	return fmt.Sprintf("send failed on %s transport: %s", err.Kind, err.Err.Error())
}

func (err *TransportSendError) Unwrap() error {
	return err.Err
}
