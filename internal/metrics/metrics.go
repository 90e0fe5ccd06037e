// Package metrics holds Prometheus instruments that are used across the
// site.  All collectors are registered with the global registry, so
// importing this package in main.go is enough to expose them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	PageRendersTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "page_renders_total",
			Help: "Cumulative number of page renders, by page type.",
		}, []string{"page"})

	RenderErrorsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "render_errors_total",
			Help: "Cumulative number of template render failures.",
		})

	FetchFallbacksTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "fetch_fallbacks_total",
			Help: "Cumulative number of datastore fetches that fell back to empty data.",
		})

	SchemaObjectsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "schema_objects_total",
			Help: "Cumulative number of JSON-LD objects emitted, by @type.",
		}, []string{"type"})

	ContactSubmissionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "contact_submissions_total",
			Help: "Cumulative number of contact submissions, by outcome.",
		}, []string{"outcome"})

	SitemapHitsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "sitemap_hits_total",
			Help: "Cumulative number of sitemap.xml requests.",
		})
)

func init() {
	prometheus.MustRegister(
		PageRendersTotal,
		RenderErrorsTotal,
		FetchFallbacksTotal,
		SchemaObjectsTotal,
		ContactSubmissionsTotal,
		SitemapHitsTotal,
	)
}
