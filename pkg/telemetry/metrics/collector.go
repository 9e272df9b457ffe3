package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"treemath/binexpr/pkg/config"
)

// Collector owns the Prometheus registry and all binexpr metric families.
//
// Metrics:
//   - binexpr_parses_total: parse attempts by status
//   - binexpr_parse_errors_total: parse failures by error type
//   - binexpr_simplifications_total: simplification runs by status
//   - binexpr_rule_applications_total: rewrite rule firings by rule
//   - binexpr_nodes_removed_total: nodes eliminated by simplification
//   - binexpr_simplify_duration_seconds: simplification latency
//   - binexpr_http_requests_total: HTTP requests by path, method, and code
//   - binexpr_http_request_duration_seconds: HTTP request latency by path
type Collector struct {
	registry *prometheus.Registry

	parsesTotal          *prometheus.CounterVec
	parseErrorsTotal     *prometheus.CounterVec
	simplificationsTotal *prometheus.CounterVec
	ruleApplications     *prometheus.CounterVec
	nodesRemovedTotal    prometheus.Counter
	simplifyDuration     prometheus.Histogram

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
}

// NewCollector creates a collector and registers all metric families with a
// fresh registry, alongside the standard Go runtime and process collectors.
func NewCollector(cfg *config.MetricsConfig) *Collector {
	registry := prometheus.NewRegistry()
	ns := cfg.Namespace

	c := &Collector{
		registry: registry,

		parsesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: ns,
				Name:      "parses_total",
				Help:      "Total number of expression parse attempts",
			},
			[]string{"status"},
		),

		parseErrorsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: ns,
				Name:      "parse_errors_total",
				Help:      "Total number of parse failures by error type",
			},
			[]string{"type"},
		),

		simplificationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: ns,
				Name:      "simplifications_total",
				Help:      "Total number of simplification runs",
			},
			[]string{"status"},
		),

		ruleApplications: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: ns,
				Name:      "rule_applications_total",
				Help:      "Total number of rewrite rule applications by rule",
			},
			[]string{"rule"},
		),

		nodesRemovedTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: ns,
				Name:      "nodes_removed_total",
				Help:      "Total number of tree nodes eliminated by simplification",
			},
		),

		simplifyDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: ns,
				Name:      "simplify_duration_seconds",
				Help:      "Duration of parse-and-simplify operations in seconds",
				// Tree rewrites are fast; bias buckets toward microseconds.
				Buckets: prometheus.ExponentialBuckets(0.000001, 4, 10),
			},
		),

		httpRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: ns,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"path", "method", "code"},
		),

		httpRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: ns,
				Name:      "http_request_duration_seconds",
				Help:      "Duration of HTTP requests in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"path"},
		),
	}

	registry.MustRegister(
		c.parsesTotal,
		c.parseErrorsTotal,
		c.simplificationsTotal,
		c.ruleApplications,
		c.nodesRemovedTotal,
		c.simplifyDuration,
		c.httpRequestsTotal,
		c.httpRequestDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return c
}

// Registry returns the underlying Prometheus registry.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// RecordParse records a parse attempt. errType is empty on success.
func (c *Collector) RecordParse(errType string) {
	if errType == "" {
		c.parsesTotal.WithLabelValues("ok").Inc()
		return
	}
	c.parsesTotal.WithLabelValues("error").Inc()
	c.parseErrorsTotal.WithLabelValues(errType).Inc()
}

// RecordSimplification records a simplification run and the number of nodes
// it eliminated.
func (c *Collector) RecordSimplification(nodesRemoved int, duration time.Duration, err error) {
	if err != nil {
		c.simplificationsTotal.WithLabelValues("error").Inc()
		return
	}
	c.simplificationsTotal.WithLabelValues("ok").Inc()
	if nodesRemoved > 0 {
		c.nodesRemovedTotal.Add(float64(nodesRemoved))
	}
	c.simplifyDuration.Observe(duration.Seconds())
}

// RecordRule records one rewrite rule application.
func (c *Collector) RecordRule(rule string) {
	c.ruleApplications.WithLabelValues(rule).Inc()
}

// RecordHTTPRequest records a completed HTTP request.
func (c *Collector) RecordHTTPRequest(path, method string, code string, duration time.Duration) {
	c.httpRequestsTotal.WithLabelValues(path, method, code).Inc()
	c.httpRequestDuration.WithLabelValues(path).Observe(duration.Seconds())
}
