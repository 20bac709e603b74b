// Package syslogtarget resolves where and how log records are delivered: it
// maps an address spec plus the running platform to one live target, opening
// the socket or native logging session eagerly so that configuration errors
// surface at setup time instead of dropping the first record.
package syslogtarget

import (
	"os"
	"runtime"
	"strconv"
	"strings"
)

// PlatformClass buckets operating systems by how the local system log is reached
type PlatformClass int

const (
	// PlatformLinux has a syslog daemon listening on a well-known datagram socket
	PlatformLinux PlatformClass = iota
	// PlatformUnix is any other POSIX system without a known local log socket
	PlatformUnix
	// PlatformMacOSUnified is macOS 10.12 or newer, using the unified logging system
	PlatformMacOSUnified
	// PlatformMacOSSyslog is macOS before 10.12, using the Apple system log socket
	PlatformMacOSSyslog
	// PlatformWindows uses the Windows event log
	PlatformWindows
	// PlatformCygwin is a Cygwin-class environment on Windows with an optional syslog relay
	PlatformCygwin
	// PlatformOther is everything else; loopback UDP is the only guess left
	PlatformOther
)

var platformClassNames = []string{"linux", "unix", "macos-unified", "macos-syslog", "windows", "cygwin", "other"}

func (class PlatformClass) String() string {
	if class < 0 || int(class) >= len(platformClassNames) {
		return "unknown"
	}
	return platformClassNames[class]
}

// Platform identifies the running operating system for target resolution
type Platform struct {
	Class       PlatformClass
	Description string // OS name and version, for diagnostics
}

// DetectPlatform classifies the running platform
func DetectPlatform() Platform {
	switch runtime.GOOS {
	case "linux":
		return Platform{Class: PlatformLinux, Description: "linux"}

	case "darwin":
		version := macOSProductVersion()
		if macOSVersionAtLeast(version, 10, 12) {
			return Platform{Class: PlatformMacOSUnified, Description: "macos " + version}
		}
		return Platform{Class: PlatformMacOSSyslog, Description: "macos " + version}

	case "windows":
		// Go binaries report GOOS=windows inside Cygwin or MSYS; environment
		// markers are the only available signal for a Cygwin-class setup
		if isCygwinEnvironment() {
			return Platform{Class: PlatformCygwin, Description: "windows (cygwin-class)"}
		}
		return Platform{Class: PlatformWindows, Description: "windows"}

	case "aix", "dragonfly", "freebsd", "illumos", "netbsd", "openbsd", "solaris":
		return Platform{Class: PlatformUnix, Description: runtime.GOOS}

	default:
		return Platform{Class: PlatformOther, Description: runtime.GOOS}
	}
}

func isCygwinEnvironment() bool {
	if strings.HasPrefix(os.Getenv("OSTYPE"), "cygwin") {
		return true
	}
	return os.Getenv("MSYSTEM") != ""
}

// macOSVersionAtLeast parses a product version like "10.11" or "12.6.1".
// An unparsable version counts as recent: Go itself requires macOS 10.13+.
func macOSVersionAtLeast(version string, major int, minor int) bool {
	parts := strings.Split(version, ".")
	if len(parts) < 2 {
		return true
	}
	haveMajor, err := strconv.Atoi(parts[0])
	if err != nil {
		return true
	}
	haveMinor, err := strconv.Atoi(parts[1])
	if err != nil {
		return true
	}
	if haveMajor != major {
		return haveMajor > major
	}
	return haveMinor >= minor
}
