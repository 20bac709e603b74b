package sysloghandler

import (
	"github.com/relex/gotils/logger"
	"github.com/relex/gotils/promexporter/promreg"
	"github.com/relex/syslog-client/base"
	"github.com/relex/syslog-client/defs"
	"github.com/relex/syslog-client/syslogformat"
	"github.com/relex/syslog-client/syslogtarget"
)

// Handler delivers log records to one resolved syslog target. The target and
// encoder are fixed at construction; Send never re-resolves or reconnects.
type Handler struct {
	logger  logger.Logger
	target  *syslogtarget.Target
	encoder *syslogformat.Encoder
	metrics handlerMetrics
}

// NewHandler resolves the configured target and prepares the matching encoder.
// Resolution is eager: a Handler is only returned when the target is open.
func NewHandler(parentLogger logger.Logger, cfg Config, metricCreator promreg.MetricCreator) (*Handler, error) {
	if err := cfg.VerifyConfig(); err != nil {
		return nil, err
	}

	spec, err := base.ParseAddressSpec(cfg.Address, cfg.Network)
	if err != nil {
		return nil, err
	}
	format, err := base.ParseWireFormat(cfg.Format)
	if err != nil {
		return nil, err
	}

	hlogger := parentLogger.WithField(defs.LabelComponent, "SyslogHandler").WithField(defs.LabelTarget, cfg.Address)
	platform := syslogtarget.DetectPlatform()

	target, err := syslogtarget.NewResolver(hlogger).Resolve(spec, platform, format, cfg.program())
	if err != nil {
		return nil, err
	}

	encoder, err := syslogformat.NewEncoder(target.WireFormat(), cfg.hostname(), cfg.program(),
		cfg.facility(), cfg.appendNul(), int(cfg.MaxMessageSize.Bytes()))
	if err != nil {
		target.Close()
		return nil, err
	}

	hlogger.Infof("handler ready, target=%s format=%s", target.Describe(), target.WireFormat())
	return &Handler{
		logger:  hlogger,
		target:  target,
		encoder: encoder,
		metrics: newHandlerMetrics(metricCreator),
	}, nil
}

// Target exposes the resolved target for diagnostics
func (handler *Handler) Target() *syslogtarget.Target {
	return handler.target
}

// Send encodes and delivers one record. Encoding failures reject the record;
// transport failures are counted and returned, leaving the handler usable.
func (handler *Handler) Send(record *base.LogRecord) error {
	if handler.target.Kind() == base.TransportNativeAPI {
		severity, program, message, err := handler.encoder.EncodeNative(record)
		if err != nil {
			handler.metrics.OnEncodeError()
			return err
		}
		if err := handler.target.Emit(severity, program, message); err != nil {
			handler.metrics.OnSendError(err)
			return err
		}
		handler.metrics.OnSent(len(message))
		return nil
	}

	message, err := handler.encoder.Encode(record)
	if err != nil {
		handler.metrics.OnEncodeError()
		return err
	}
	if err := handler.target.Send(message); err != nil {
		handler.metrics.OnSendError(err)
		return err
	}
	handler.metrics.OnSent(len(message.Data))
	return nil
}

// Close releases the target; records sent afterwards are rejected
func (handler *Handler) Close() error {
	return handler.target.Close()
}
