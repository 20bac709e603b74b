//go:build darwin

package syslogtarget

import (
	"golang.org/x/sys/unix"
)

func macOSProductVersion() string {
	version, err := unix.Sysctl("kern.osproductversion")
	if err != nil {
		return ""
	}
	return version
}
