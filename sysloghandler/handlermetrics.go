package sysloghandler

import (
	"github.com/relex/gotils/promexporter/promext"
	"github.com/relex/gotils/promexporter/promreg"
	"github.com/relex/syslog-client/util"
)

// handlerMetrics counts delivered records and the failures along the way
type handlerMetrics struct {
	sentCountTotal        promext.RWCounter
	sentLengthTotal       promext.RWCounter
	encodeErrorsTotal     promext.RWCounter
	networkErrorsTotal    promext.RWCounter
	nonNetworkErrorsTotal promext.RWCounter
}

func newHandlerMetrics(metricCreator promreg.MetricCreator) handlerMetrics {
	handlerMetricCreator := metricCreator.AddOrGetPrefix("handler_", nil, nil)

	return handlerMetrics{
		sentCountTotal:        handlerMetricCreator.AddOrGetCounter("sent_records_total", "Numbers of delivered records", nil, nil),
		sentLengthTotal:       handlerMetricCreator.AddOrGetCounter("sent_record_bytes_total", "Total length in bytes of delivered frames", nil, nil),
		encodeErrorsTotal:     handlerMetricCreator.AddOrGetCounter("encode_errors_total", "Numbers of records rejected during encoding", nil, nil),
		networkErrorsTotal:    handlerMetricCreator.AddOrGetCounter("network_errors_total", "Numbers of network errors", nil, nil),
		nonNetworkErrorsTotal: handlerMetricCreator.AddOrGetCounter("nonnetwork_errors_total", "Numbers of non-network delivery errors", nil, nil),
	}
}

func (metrics *handlerMetrics) OnSent(length int) {
	metrics.sentCountTotal.Inc()
	metrics.sentLengthTotal.Add(uint64(length))
}

func (metrics *handlerMetrics) OnEncodeError() {
	metrics.encodeErrorsTotal.Inc()
}

func (metrics *handlerMetrics) OnSendError(err error) {
	if util.IsNetworkError(err) {
		metrics.networkErrorsTotal.Inc()
	} else {
		metrics.nonNetworkErrorsTotal.Inc()
	}
}
