package cmd

import (
	"bufio"
	"context"
	"net/http"
	"os"

	"github.com/relex/gotils/logger"
	"github.com/relex/gotils/promexporter/promreg"
	"github.com/relex/syslog-client/base"
	"github.com/relex/syslog-client/sysloghandler"
	"github.com/relex/syslog-client/util"
)

type sendCommandState struct {
	Severity    string `help:"Severity name for sent records, e.g. warning or err"`
	Facility    string `help:"Facility name overriding the configured default, e.g. local0"`
	Message     string `help:"Message to send; empty reads one message per line from stdin"`
	MetricsAddr string `help:"The listener address to expose Prometheus metrics and debug information; empty disables the listener"`
}

var sendCmd = sendCommandState{
	Severity: "info",
}

func (cmd *sendCommandState) run(_ []string) {
	cfg := rootCmd.loadHandlerConfig()

	var msrv *http.Server
	if cmd.MetricsAddr != "" {
		msrv = util.LaunchMetricsListener(cmd.MetricsAddr)
	}

	mfactory := promreg.NewMetricFactory("syslogclient_", nil, nil)
	handler, err := sysloghandler.NewHandler(logger.Root(), cfg, mfactory)
	if err != nil {
		logger.Fatalf("failed to open syslog target: %s", err.Error())
	}

	if cmd.Message != "" {
		cmd.sendOne(handler, cmd.Message)
	} else {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			cmd.sendOne(handler, scanner.Text())
		}
		if serr := scanner.Err(); serr != nil {
			logger.Errorf("error reading stdin: %s", serr.Error())
		}
	}

	if cerr := handler.Close(); cerr != nil {
		logger.Errorf("error closing syslog target: %s", cerr.Error())
	}
	if msrv != nil {
		if serr := msrv.Shutdown(context.Background()); serr != nil {
			logger.Errorf("error shutting down metrics listener: %s", serr.Error())
		}
	}
}

func (cmd *sendCommandState) sendOne(handler *sysloghandler.Handler, message string) {
	record := base.LogRecord{
		Severity: cmd.Severity,
		Facility: cmd.Facility,
		Message:  message,
	}
	if err := handler.Send(&record); err != nil {
		logger.Errorf("failed to send record: %s", err.Error())
	}
}
