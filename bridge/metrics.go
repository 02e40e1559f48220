package bridge

import "github.com/prometheus/client_golang/prometheus"

type metrics struct {
	calls        prometheus.Counter
	timeouts     prometheus.Counter
	remoteErrors prometheus.Counter
	dropped      prometheus.Counter
}

// newMetrics builds the bridge counters. With a nil registerer the
// counters still count but are not exported anywhere.
func newMetrics(reg prometheus.Registerer) *metrics {
	m := &metrics{
		calls: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "frontier",
			Subsystem: "bridge",
			Name:      "calls_total",
			Help:      "Calls issued to the wallet host.",
		}),
		timeouts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "frontier",
			Subsystem: "bridge",
			Name:      "call_timeouts_total",
			Help:      "Calls that settled by deadline expiry.",
		}),
		remoteErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "frontier",
			Subsystem: "bridge",
			Name:      "remote_errors_total",
			Help:      "Calls the host answered with an error envelope.",
		}),
		dropped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "frontier",
			Subsystem: "bridge",
			Name:      "dropped_inbound_total",
			Help:      "Inbound envelopes discarded before correlation (untrusted sender or malformed kind).",
		}),
	}
	if reg != nil {
		reg.MustRegister(m.calls, m.timeouts, m.remoteErrors, m.dropped)
	}
	return m
}
