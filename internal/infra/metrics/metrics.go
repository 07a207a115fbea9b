package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder junta los contadores del bot en un registry propio.
// Un *Recorder nil es válido y no hace nada.
type Recorder struct {
	reg             *prometheus.Registry
	lookups         *prometheus.CounterVec
	lookupLatency   prometheus.Histogram
	upstreamCalls   *prometheus.CounterVec
	upstreamLatency prometheus.Histogram
}

func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	r := &Recorder{
		reg: reg,
		lookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "matchinfo_lookups_total",
			Help: "Match info invocations by outcome.",
		}, []string{"outcome"}),
		lookupLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "matchinfo_lookup_duration_seconds",
			Help:    "End to end duration of a match info invocation.",
			Buckets: prometheus.DefBuckets,
		}),
		upstreamCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "wavescan_requests_total",
			Help: "Calls to the match API by result.",
		}, []string{"result"}),
		upstreamLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "wavescan_request_duration_seconds",
			Help:    "Latency of calls to the match API.",
			Buckets: prometheus.DefBuckets,
		}),
	}
	reg.MustRegister(r.lookups, r.lookupLatency, r.upstreamCalls, r.upstreamLatency)
	return r
}

// RecordLookup cuenta una invocación terminada con su outcome.
func (r *Recorder) RecordLookup(outcome string, d time.Duration) {
	if r == nil {
		return
	}
	r.lookups.WithLabelValues(outcome).Inc()
	r.lookupLatency.Observe(d.Seconds())
}

func (r *Recorder) RecordUpstream(d time.Duration, err error) {
	if r == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	r.upstreamCalls.WithLabelValues(result).Inc()
	r.upstreamLatency.Observe(d.Seconds())
}

// Handler expone el registry para /metrics.
func (r *Recorder) Handler() http.Handler {
	if r == nil {
		return promhttp.HandlerFor(prometheus.NewRegistry(), promhttp.HandlerOpts{})
	}
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{})
}
