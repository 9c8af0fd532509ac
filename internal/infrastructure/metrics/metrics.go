package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Mode transition metrics
	TransitionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wifictl_transitions_total",
			Help: "Total number of mode transitions attempted",
		},
		[]string{"mode", "result"}, // monitor/managed, success/failed/fallback-attempted/interface-not-found
	)

	TransitionDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "wifictl_transition_duration_seconds",
			Help:    "Time spent performing each mode transition",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"mode"},
	)

	// Collector metrics
	InterfacesDiscovered = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "wifictl_interfaces_discovered",
			Help: "Number of wireless interfaces found in the last collection",
		},
	)

	CollectionsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "wifictl_collections_total",
			Help: "Total number of interface collections performed",
		},
	)

	// Network-management daemon metrics
	DaemonStopsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "wifictl_daemon_stops_total",
			Help: "Total number of times the network-management daemon was stopped",
		},
	)

	DaemonStartsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "wifictl_daemon_starts_total",
			Help: "Total number of times the network-management daemon was restarted",
		},
	)

	// Error metrics
	ErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wifictl_errors_total",
			Help: "Total number of errors encountered",
		},
		[]string{"error_type"}, // validation, not_found, network, system, timeout, input
	)

	// Build information
	BuildInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "wifictl_build_info",
			Help: "Build information",
		},
		[]string{"version"},
	)
)

// RecordTransition records one mode transition and its duration
func RecordTransition(mode, result string, duration float64) {
	TransitionsTotal.WithLabelValues(mode, result).Inc()
	TransitionDuration.WithLabelValues(mode).Observe(duration)
}

// RecordCollection records the outcome of one interface collection
func RecordCollection(count int) {
	CollectionsTotal.Inc()
	InterfacesDiscovered.Set(float64(count))
}

// RecordDaemonStop records a stop of the network-management daemon
func RecordDaemonStop() {
	DaemonStopsTotal.Inc()
}

// RecordDaemonStart records a restart of the network-management daemon
func RecordDaemonStart() {
	DaemonStartsTotal.Inc()
}

// RecordError records an error occurrence
func RecordError(errorType string) {
	ErrorsTotal.WithLabelValues(errorType).Inc()
}

// SetBuildInfo sets the build information gauge
func SetBuildInfo(version string) {
	BuildInfo.WithLabelValues(version).Set(1)
}
