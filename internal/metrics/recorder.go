package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "shortlink"

// Recorder exposes HTTP, business and infrastructure measurements as
// Prometheus series on its own registry.
type Recorder struct {
	registry *prometheus.Registry

	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
	events       *prometheus.CounterVec

	poolConns   *prometheus.GaugeVec
	cacheHits   prometheus.Gauge
	cacheMisses prometheus.Gauge
	cacheRatio  prometheus.Gauge
	goroutines  prometheus.Gauge
	heapAlloc   prometheus.Gauge
}

func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	f := promauto.With(reg)
	return &Recorder{
		registry: reg,
		httpRequests: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status.",
		}, []string{"method", "path", "status"}),
		httpDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route.",
			Buckets:   []float64{.001, .0025, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		}, []string{"method", "path"}),
		events: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_total",
			Help:      "Link lifecycle events.",
		}, []string{"event"}),
		poolConns: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "store_pool_connections",
			Help:      "Store connection pool usage by state.",
		}, []string{"state"}),
		cacheHits: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "cache_hits",
			Help:      "Read cache hits since start.",
		}),
		cacheMisses: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "cache_misses",
			Help:      "Read cache misses since start.",
		}),
		cacheRatio: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "cache_hit_ratio",
			Help:      "Read cache hit ratio.",
		}),
		goroutines: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "goroutines",
			Help:      "Goroutines at the last infra sample.",
		}),
		heapAlloc: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "heap_alloc_megabytes",
			Help:      "Heap allocation at the last infra sample.",
		}),
	}
}

func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}

func (r *Recorder) RecordHTTP(m HTTPMetric) {
	r.httpRequests.WithLabelValues(m.Method, m.Path, strconv.Itoa(m.StatusCode)).Inc()
	r.httpDuration.WithLabelValues(m.Method, m.Path).Observe(m.Duration.Seconds())
}

func (r *Recorder) RecordBusiness(name string, value float64) {
	r.events.WithLabelValues(name).Add(value)
}

func (r *Recorder) RecordInfra(m InfraMetric) {
	if m.Pool != nil {
		r.poolConns.WithLabelValues("acquired").Set(float64(m.Pool.Acquired))
		r.poolConns.WithLabelValues("idle").Set(float64(m.Pool.Idle))
		r.poolConns.WithLabelValues("total").Set(float64(m.Pool.Total))
		r.poolConns.WithLabelValues("max").Set(float64(m.Pool.Max))
	}
	r.cacheHits.Set(float64(m.CacheHits))
	r.cacheMisses.Set(float64(m.CacheMisses))
	r.cacheRatio.Set(m.CacheHitRatio)
	r.goroutines.Set(float64(m.Goroutines))
	r.heapAlloc.Set(m.HeapAllocMB)
}
