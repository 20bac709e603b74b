package cmd

import (
	"github.com/relex/gotils/logger"
	"github.com/relex/syslog-client/base"
	"github.com/relex/syslog-client/syslogtarget"
)

type probeCommandState struct {
	Format string `help:"Format name overriding the configured format, e.g. rfc5424"`
}

var probeCmd probeCommandState

func (cmd *probeCommandState) run(_ []string) {
	cfg := rootCmd.loadHandlerConfig()
	if cmd.Format != "" {
		cfg.Format = cmd.Format
	}
	if err := cfg.VerifyConfig(); err != nil {
		logger.Fatalf("invalid config: %s", err.Error())
	}

	spec, err := base.ParseAddressSpec(cfg.Address, cfg.Network)
	if err != nil {
		logger.Fatalf("invalid address: %s", err.Error())
	}
	format, err := base.ParseWireFormat(cfg.Format)
	if err != nil {
		logger.Fatalf("invalid format: %s", err.Error())
	}

	platform := syslogtarget.DetectPlatform()
	logger.Infof("platform: %s (%s)", platform.Class, platform.Description)

	target, rerr := syslogtarget.NewResolver(logger.Root()).Resolve(spec, platform, format, "syslog-client")
	if rerr != nil {
		logger.Fatalf("no target reachable: %s", rerr.Error())
	}
	logger.Infof("target: %s, format: %s", target.Describe(), target.WireFormat())
	if cerr := target.Close(); cerr != nil {
		logger.Errorf("error closing target: %s", cerr.Error())
	}
}
