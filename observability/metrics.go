// Package observability holds the Prometheus collectors of the startup path.
package observability

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Attempt phases and results used as label values.
const (
	PhaseExternal = "external"
	PhaseEmbedded = "embedded"

	ResultOK         = "ok"
	ResultError      = "error"
	ResultDispatched = "dispatched"
	ResultInvalid    = "invalid"
)

var (
	registerOnce sync.Once

	connectAttempts = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "zonekeeper",
			Subsystem: "ensemble",
			Name:      "connect_attempts_total",
			Help:      "Ensemble connection attempts by phase and result.",
		},
		[]string{"phase", "result"},
	)
	embeddedLaunches = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "zonekeeper",
			Subsystem: "ensemble",
			Name:      "embedded_launches_total",
			Help:      "Embedded ensemble launch requests by result.",
		},
		[]string{"result"},
	)
	bindingErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "zonekeeper",
			Subsystem: "zone",
			Name:      "binding_errors_total",
			Help:      "Zone attributes skipped because their configured value could not be coerced.",
		},
		[]string{"zone"},
	)
	zonesLoaded = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "zonekeeper",
			Name:      "zones_loaded",
			Help:      "Number of zone descriptors loaded at startup.",
		},
	)
)

func RegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(connectAttempts, embeddedLaunches, bindingErrors, zonesLoaded)
	})
}

func RecordConnectAttempt(phase string, ok bool) {
	RegisterMetrics()
	result := ResultError
	if ok {
		result = ResultOK
	}
	connectAttempts.WithLabelValues(phase, result).Inc()
}

func RecordEmbeddedLaunch(dispatched bool) {
	RegisterMetrics()
	result := ResultInvalid
	if dispatched {
		result = ResultDispatched
	}
	embeddedLaunches.WithLabelValues(result).Inc()
}

func RecordBindingError(zone string) {
	RegisterMetrics()
	bindingErrors.WithLabelValues(zone).Inc()
}

func SetZonesLoaded(n int) {
	RegisterMetrics()
	zonesLoaded.Set(float64(n))
}
