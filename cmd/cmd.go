// Package cmd provides the command line of the syslog-client tool
package cmd

import (
	"github.com/relex/gotils/config"
)

func init() {
	config.AddParentCmdWithArgs("", "syslog-client delivers log records to the local system log or a remote syslog daemon", &rootCmd, nil, nil)
	config.AddCmdWithArgs("send ...", "Send a message or stdin lines to the configured target", &sendCmd, sendCmd.run)
	config.AddCmdWithArgs("probe ...", "Resolve the configured target and report the winning transport", &probeCmd, probeCmd.run)
}

// Execute parses the command line and runs the specified command
func Execute() {
	// trigger init

	config.Execute()
}
