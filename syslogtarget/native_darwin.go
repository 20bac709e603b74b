//go:build darwin

package syslogtarget

/*
#include <os/log.h>
#include <stdlib.h>

static void syslogclient_os_log(os_log_t log, uint8_t type, const char *message) {
	os_log_with_type(log, (os_log_type_t)type, "%{public}s", message);
}
*/
import "C"

import (
	"unsafe"
)

type osLogEmitter struct {
	log C.os_log_t
}

// openNativeEmitter creates a unified logging handle with the program name as
// the subsystem. os_log_create never fails; it degrades to the default log.
func openNativeEmitter(program string) (NativeEmitter, error) {
	subsystem := C.CString(program)
	category := C.CString("default")
	defer C.free(unsafe.Pointer(subsystem))
	defer C.free(unsafe.Pointer(category))
	return &osLogEmitter{log: C.os_log_create(subsystem, category)}, nil
}

// Emit maps syslog severities onto unified logging types; warning maps to the
// default type because os_log has no warning level of its own
func (emitter *osLogEmitter) Emit(severity int, _ string, message string) error {
	var logType C.uint8_t
	switch severity {
	case 7:
		logType = C.OS_LOG_TYPE_DEBUG
	case 6, 5:
		logType = C.OS_LOG_TYPE_INFO
	case 4:
		logType = C.OS_LOG_TYPE_DEFAULT
	case 3, 2:
		logType = C.OS_LOG_TYPE_ERROR
	default:
		logType = C.OS_LOG_TYPE_FAULT
	}
	cmessage := C.CString(message)
	defer C.free(unsafe.Pointer(cmessage))
	C.syslogclient_os_log(emitter.log, logType, cmessage)
	return nil
}

// Close is a no-op: os_log handles are not released on supported macOS versions
func (emitter *osLogEmitter) Close() error {
	return nil
}
