//go:build windows

package syslogtarget

import (
	"strings"

	"golang.org/x/sys/windows"
	"golang.org/x/sys/windows/svc/eventlog"
)

// Fixed event IDs, one per mapped event log level
const (
	eventIDInfo    = 1
	eventIDError   = 2
	eventIDWarning = 3
)

type eventLogEmitter struct {
	log *eventlog.Log
}

// openNativeEmitter registers the event source and opens the Windows event log.
// "registry key already exists" and ERROR_ACCESS_DENIED are tolerated so that
// pre-registered sources work without administrative permissions.
func openNativeEmitter(program string) (NativeEmitter, error) {
	err := eventlog.InstallAsEventCreate(program, eventlog.Info|eventlog.Warning|eventlog.Error)
	if err != nil && !strings.Contains(err.Error(), "registry key already exists") && err != windows.ERROR_ACCESS_DENIED {
		return nil, err
	}
	elog, err := eventlog.Open(program)
	if err != nil {
		return nil, err
	}
	return &eventLogEmitter{log: elog}, nil
}

// Emit maps syslog severities onto the three event log levels: err and above
// become errors, warning stays a warning, everything else is informational.
// The program field is fixed at open time by the event source registration.
func (emitter *eventLogEmitter) Emit(severity int, _ string, message string) error {
	switch {
	case severity <= 3:
		return emitter.log.Error(eventIDError, message)
	case severity == 4:
		return emitter.log.Warning(eventIDWarning, message)
	default:
		return emitter.log.Info(eventIDInfo, message)
	}
}

func (emitter *eventLogEmitter) Close() error {
	return emitter.log.Close()
}
