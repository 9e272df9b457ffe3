// Package metrics provides Prometheus instrumentation for binexpr.
//
// A Collector owns a private registry holding counters for parse attempts
// and failures (labelled by error type), simplification runs, individual
// rewrite rule firings, eliminated tree nodes, and HTTP traffic, plus
// latency histograms. The CLI and server record into the collector; the
// server additionally mounts Handler() to expose the registry for scraping.
package metrics
