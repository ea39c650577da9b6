package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics for the application
type Metrics struct {
	registry *prometheus.Registry

	PageViews      *prometheus.CounterVec
	NotFound       prometheus.Counter
	CatalogReloads *prometheus.CounterVec
	CatalogSize    prometheus.Gauge
}

// New creates and registers all metrics on a fresh registry
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		PageViews: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "folio_page_views_total",
			Help: "Total number of rendered pages and API responses by page",
		}, []string{"page"}),
		NotFound: factory.NewCounter(prometheus.CounterOpts{
			Name: "folio_project_not_found_total",
			Help: "Total number of lookups for an unknown project slug",
		}),
		CatalogReloads: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "folio_catalog_reloads_total",
			Help: "Total number of catalog reloads by outcome",
		}, []string{"outcome"}),
		CatalogSize: factory.NewGauge(prometheus.GaugeOpts{
			Name: "folio_catalog_projects",
			Help: "Number of projects in the current catalog",
		}),
	}
}

// IncrementPageView counts one view of page
func (m *Metrics) IncrementPageView(page string) {
	m.PageViews.WithLabelValues(page).Inc()
}

// IncrementNotFound counts one unknown slug lookup
func (m *Metrics) IncrementNotFound() {
	m.NotFound.Inc()
}

// RecordReload counts a reload attempt and, on success, the new size
func (m *Metrics) RecordReload(size int, err error) {
	if err != nil {
		m.CatalogReloads.WithLabelValues("error").Inc()
		return
	}
	m.CatalogReloads.WithLabelValues("ok").Inc()
	m.CatalogSize.Set(float64(size))
}

// Handler exposes the registry in the Prometheus text format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
