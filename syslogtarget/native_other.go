//go:build !windows && !darwin

package syslogtarget

import (
	"errors"
)

func openNativeEmitter(string) (NativeEmitter, error) {
	return nil, errors.New("native system logging is not available on this platform")
}
