//go:build !darwin

package syslogtarget

func macOSProductVersion() string {
	return ""
}
