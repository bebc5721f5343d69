package prometheus

import (
	"net/http"
	"runtime"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector records service metrics using Prometheus
type Collector struct {
	registry *prometheus.Registry

	requestsTotal    *prometheus.CounterVec
	requestDuration  *prometheus.HistogramVec
	requestsInFlight prometheus.Gauge
	ready            prometheus.Gauge
	uptime           prometheus.Gauge
	buildInfo        *prometheus.GaugeVec
}

// NewCollector creates a new Prometheus metrics collector backed by its
// own registry, with the standard Go and process collectors included.
// Owning the registry keeps the exposition handler and tests on the
// same gatherer without global registration conflicts.
func NewCollector() *Collector {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	factory := promauto.With(registry)

	return &Collector{
		registry: registry,
		requestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "hellosvc_http_requests_total",
				Help: "Total number of HTTP requests handled",
			},
			[]string{"method", "path", "status"},
		),
		requestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "hellosvc_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
			},
			[]string{"path"},
		),
		requestsInFlight: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "hellosvc_http_requests_in_flight",
				Help: "Number of HTTP requests currently being served",
			},
		),
		ready: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "hellosvc_ready",
				Help: "Whether the service is ready to accept traffic (1 ready, 0 not)",
			},
		),
		uptime: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "hellosvc_uptime_seconds",
				Help: "Time since process start in seconds",
			},
		),
		buildInfo: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "hellosvc_build_info",
				Help: "Build information, constant 1 labelled by version",
			},
			[]string{"version", "go_version"},
		),
	}
}

// RecordRequest records one handled HTTP request
func (c *Collector) RecordRequest(method, path string, status int, duration time.Duration) {
	c.requestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	c.requestDuration.WithLabelValues(path).Observe(duration.Seconds())
}

// IncRequestsInFlight increments the in-flight request gauge
func (c *Collector) IncRequestsInFlight() {
	c.requestsInFlight.Inc()
}

// DecRequestsInFlight decrements the in-flight request gauge
func (c *Collector) DecRequestsInFlight() {
	c.requestsInFlight.Dec()
}

// RecordServiceStatus records the readiness gauge and current uptime
func (c *Collector) RecordServiceStatus(ready bool, uptime time.Duration) {
	if ready {
		c.ready.Set(1)
	} else {
		c.ready.Set(0)
	}
	c.uptime.Set(uptime.Seconds())
}

// SetBuildInfo records the version labels as a constant gauge
func (c *Collector) SetBuildInfo(version string) {
	c.buildInfo.WithLabelValues(version, runtime.Version()).Set(1)
}

// Handler returns the exposition handler for the /metrics route
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
