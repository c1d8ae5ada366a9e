// Package metrics exposes the engine/detector's observable state as
// Prometheus series, grounded on the
// pack's domain repos that pair gRPC services with
// github.com/prometheus/client_golang (torrent, ocx-backend-go-svc,
// gocryptotrader).
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder implements engine.Metrics and detector.Metrics against a
// dedicated Prometheus registry, so multiple peers in the same test
// binary never collide on the default global registry.
type Recorder struct {
	registry *prometheus.Registry

	activePeers      prometheus.Gauge
	replyCount       prometheus.Gauge
	csHoldsTotal      prometheus.Counter
	csHoldDuration    prometheus.Histogram
	peersRemoved      prometheus.Counter
	peersReadmitted   prometheus.Counter
	heartbeatsSent    prometheus.Counter
	heartbeatsRecv    prometheus.Counter
}

// New constructs a Recorder and registers its series under peerName as
// a constant label, so one process's metrics remain distinguishable if
// ever scraped alongside another (e.g. in a multi-peer test harness).
func New(peerName string) *Recorder {
	registry := prometheus.NewRegistry()
	labels := prometheus.Labels{"peer": peerName}

	r := &Recorder{
		registry: registry,
		activePeers: promauto.With(registry).NewGauge(prometheus.GaugeOpts{
			Name:        "ricart_agrawala_active_peers",
			Help:        "Number of peers currently believed alive.",
			ConstLabels: labels,
		}),
		replyCount: promauto.With(registry).NewGauge(prometheus.GaugeOpts{
			Name:        "ricart_agrawala_reply_count",
			Help:        "Current REPLY/credit count toward quorum while WANTED.",
			ConstLabels: labels,
		}),
		csHoldsTotal: promauto.With(registry).NewCounter(prometheus.CounterOpts{
			Name:        "ricart_agrawala_cs_holds_total",
			Help:        "Total number of times this peer entered the critical section.",
			ConstLabels: labels,
		}),
		csHoldDuration: promauto.With(registry).NewHistogram(prometheus.HistogramOpts{
			Name:        "ricart_agrawala_cs_hold_duration_seconds",
			Help:        "Observed duration of each critical-section hold.",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}),
		peersRemoved: promauto.With(registry).NewCounter(prometheus.CounterOpts{
			Name:        "ricart_agrawala_peers_removed_total",
			Help:        "Total number of peers removed from active_peers, by heartbeat timeout or REQUEST transport failure.",
			ConstLabels: labels,
		}),
		peersReadmitted: promauto.With(registry).NewCounter(prometheus.CounterOpts{
			Name:        "ricart_agrawala_peers_readmitted_total",
			Help:        "Total number of peers re-admitted to active_peers after renewed contact.",
			ConstLabels: labels,
		}),
		heartbeatsSent: promauto.With(registry).NewCounter(prometheus.CounterOpts{
			Name:        "ricart_agrawala_heartbeats_sent_total",
			Help:        "Total number of outbound heartbeat sends.",
			ConstLabels: labels,
		}),
		heartbeatsRecv: promauto.With(registry).NewCounter(prometheus.CounterOpts{
			Name:        "ricart_agrawala_heartbeats_received_total",
			Help:        "Total number of inbound heartbeats observed.",
			ConstLabels: labels,
		}),
	}
	return r
}

func (r *Recorder) SetActivePeers(n int)  { r.activePeers.Set(float64(n)) }
func (r *Recorder) SetReplyCount(n int)   { r.replyCount.Set(float64(n)) }
func (r *Recorder) IncCSHold()            { r.csHoldsTotal.Inc() }
func (r *Recorder) ObserveCSHoldDuration(seconds float64) { r.csHoldDuration.Observe(seconds) }
func (r *Recorder) IncPeerRemoved()       { r.peersRemoved.Inc() }
func (r *Recorder) IncPeerReadmitted()    { r.peersReadmitted.Inc() }
func (r *Recorder) IncHeartbeatSent()     { r.heartbeatsSent.Inc() }
func (r *Recorder) IncHeartbeatReceived() { r.heartbeatsRecv.Inc() }

// Handler returns the HTTP handler to mount at /metrics.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
