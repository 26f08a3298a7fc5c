package providers

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"newsd/internal/structures"
)

type MetricsProviderInterface interface {
	IncRequestsTotal(endpoint string, status int)
	ObserveRequestDuration(endpoint string, duration time.Duration)
	IncCacheHits()
	IncCacheMisses()
	IncVisits(osName string)
	IncPublish(outcome string)
	SetSiteUp(up bool)
}

type MetricsProvider struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	cacheHits       prometheus.Counter
	cacheMisses     prometheus.Counter
	visitsTotal     *prometheus.CounterVec
	publishTotal    *prometheus.CounterVec
	siteUp          prometheus.Gauge
}

func (m *MetricsProvider) IncRequestsTotal(endpoint string, status int) {
	m.requestsTotal.WithLabelValues(endpoint, httpStatusBucket(status)).Inc()
}

func (m *MetricsProvider) ObserveRequestDuration(endpoint string, duration time.Duration) {
	m.requestDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

func (m *MetricsProvider) IncCacheHits() {
	m.cacheHits.Inc()
}

func (m *MetricsProvider) IncCacheMisses() {
	m.cacheMisses.Inc()
}

func (m *MetricsProvider) IncVisits(osName string) {
	m.visitsTotal.WithLabelValues(osName).Inc()
}

func (m *MetricsProvider) IncPublish(outcome string) {
	m.publishTotal.WithLabelValues(outcome).Inc()
}

func (m *MetricsProvider) SetSiteUp(up bool) {
	if up {
		m.siteUp.Set(1)
	} else {
		m.siteUp.Set(0)
	}
}

func httpStatusBucket(code int) string {
	switch {
	case code < 200:
		return "1xx"
	case code < 300:
		return "2xx"
	case code < 400:
		return "3xx"
	case code < 500:
		return "4xx"
	default:
		return "5xx"
	}
}

func NewMetricsProvider(conf *structures.Config) MetricsProviderInterface {
	if !conf.Metrics.Enabled {
		return &noopMetrics{}
	}

	return &MetricsProvider{
		requestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "newsd_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"endpoint", "status"}),

		requestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "newsd_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),

		cacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "newsd_cache_hits_total",
			Help: "Total number of response cache hits",
		}),

		cacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Name: "newsd_cache_misses_total",
			Help: "Total number of response cache misses",
		}),

		visitsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "newsd_visits_total",
			Help: "Counted visits by operating system",
		}, []string{"os"}),

		publishTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "newsd_publish_total",
			Help: "Publish pipeline runs by outcome",
		}, []string{"outcome"}),

		siteUp: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "newsd_site_up",
			Help: "Whether the published site answered the last online check",
		}),
	}
}

type noopMetrics struct{}

func (n *noopMetrics) IncRequestsTotal(_ string, _ int)                 {}
func (n *noopMetrics) ObserveRequestDuration(_ string, _ time.Duration) {}
func (n *noopMetrics) IncCacheHits()                                    {}
func (n *noopMetrics) IncCacheMisses()                                  {}
func (n *noopMetrics) IncVisits(_ string)                               {}
func (n *noopMetrics) IncPublish(_ string)                              {}
func (n *noopMetrics) SetSiteUp(_ bool)                                 {}
