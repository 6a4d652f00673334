// Package metrics defines Prometheus metrics for the movies graph API.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cinegraph_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cinegraph_http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	ErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cinegraph_errors_total",
			Help: "Total errors by type",
		},
		[]string{"type"},
	)

	BrowseLinks = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "cinegraph_browse_links_total",
			Help: "Total links emitted by graph browse responses",
		},
	)

	BrowseNodes = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "cinegraph_browse_nodes_total",
			Help: "Total deduplicated nodes emitted by graph browse responses",
		},
	)

	VotesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "cinegraph_votes_total",
			Help: "Total vote increments applied",
		},
	)
)

func init() {
	prometheus.MustRegister(
		RequestDuration, RequestsTotal, ErrorsTotal,
		BrowseLinks, BrowseNodes, VotesTotal,
	)
}
