// Package syslogprotocol provides shared tables and constants of the syslog protocols (RFC 3164 and RFC 5424):
// facility and severity codes, name lookup and PRI composition
package syslogprotocol

import (
	"github.com/relex/syslog-client/base"
)

// FacilityNames contains the mapping of facility numbers to canonical names
var FacilityNames = []string{
	"kern",     // 0
	"user",     // 1
	"mail",     // 2
	"daemon",   // 3
	"auth",     // 4
	"syslog",   // 5
	"lpr",      // 6
	"news",     // 7
	"uucp",     // 8
	"cron",     // 9
	"authpriv", // 10
	"ftp",      // 11
	"ntp",      // 12
	"audit",    // 13
	"alert",    // 14
	"clock",    // 15
	"local0",   // 16
	"local1",   // 17
	"local2",   // 18
	"local3",   // 19
	"local4",   // 20
	"local5",   // 21
	"local6",   // 22
	"local7",   // 23
}

// SeverityNames contains the mapping of severity numbers to canonical names
var SeverityNames = []string{
	"emerg",   // 0
	"alert",   // 1
	"crit",    // 2
	"err",     // 3
	"warning", // 4
	"notice",  // 5
	"info",    // 6
	"debug",   // 7
}

// facilityAliases holds alternative names for the reserved slots 12-15
var facilityAliases = map[string]int{
	"security":     13,
	"console":      14,
	"solaris-cron": 15,
}

// severityAliases holds alternative and deprecated severity names
var severityAliases = map[string]int{
	"panic":    0,
	"critical": 2,
	"error":    3,
	"warn":     4,
}

var facilityCodes map[string]int
var severityCodes map[string]int

func init() {
	facilityCodes = make(map[string]int, len(FacilityNames)+len(facilityAliases))
	for code, name := range FacilityNames {
		facilityCodes[name] = code
	}
	for name, code := range facilityAliases {
		facilityCodes[name] = code
	}
	severityCodes = make(map[string]int, len(SeverityNames)+len(severityAliases))
	for code, name := range SeverityNames {
		severityCodes[name] = code
	}
	for name, code := range severityAliases {
		severityCodes[name] = code
	}
}

// FacilityCode maps a facility name to its code (0-23)
func FacilityCode(name string) (int, error) {
	code, ok := facilityCodes[name]
	if !ok {
		return 0, base.NewInvalidConfigurationError("unrecognized facility name: '%s'", name)
	}
	return code, nil
}

// SeverityCode maps a severity name to its code (0-7)
func SeverityCode(name string) (int, error) {
	code, ok := severityCodes[name]
	if !ok {
		return 0, base.NewInvalidConfigurationError("unrecognized severity name: '%s'", name)
	}
	return code, nil
}

// PRI computes the numeric priority prefix used by BSD-style wire formats
func PRI(facility int, severity int) int {
	return facility*8 + severity
}

// SplitPRI decomposes a PRI value back into facility and severity codes
func SplitPRI(pri int) (facility int, severity int) {
	return pri >> 3, pri & 0b111
}
