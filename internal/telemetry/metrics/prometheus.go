package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// SetupPrometheus builds the registry every fittracker binary exposes: build
// info, GC runtime metrics, process metrics under the service namespace, and
// a constant version_info gauge carrying the running version.
func SetupPrometheus(namespace, version string) *prometheus.Registry {
	promRegistry := prometheus.NewRegistry()

	versionInfo := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace:   namespace,
		Name:        "version_info",
		Help:        "Version of the running fittracker binary, always 1",
		ConstLabels: prometheus.Labels{"version": version},
	})
	versionInfo.Set(1)

	promRegistry.MustRegister(
		collectors.NewBuildInfoCollector(),
		collectors.NewGoCollector(
			collectors.WithGoCollectorRuntimeMetrics(collectors.MetricsGC),
		),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{Namespace: namespace}),
		versionInfo,
	)

	return promRegistry
}
