package cmd

import (
	"github.com/relex/gotils/logger"
	"github.com/relex/syslog-client/sysloghandler"
	"github.com/relex/syslog-client/util"
)

type rootCommandState struct {
	Config string `help:"Configuration file path; unset uses local logging defaults"`
}

var rootCmd rootCommandState

// loadHandlerConfig builds the handler configuration from defaults plus the
// optional configuration file
func (cmd *rootCommandState) loadHandlerConfig() sysloghandler.Config {
	cfg := sysloghandler.NewConfig()
	if cmd.Config == "" {
		return cfg
	}
	if err := util.UnmarshalYamlFile(cmd.Config, &cfg); err != nil {
		logger.Fatalf("failed to load config %s: %s", cmd.Config, err.Error())
	}
	return cfg
}
