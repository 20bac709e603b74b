package syslogtarget

// NativeEmitter is the capability contract of an OS-native logging API: it
// takes severity, program and message as typed fields instead of an encoded
// frame. Implementations are selected by build tags.
type NativeEmitter interface {
	Emit(severity int, program string, message string) error
	Close() error
}
