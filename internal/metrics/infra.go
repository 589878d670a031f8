package metrics

import (
	"context"
	"runtime"
	"time"
)

type InfraRecorder interface {
	RecordInfra(m InfraMetric)
}

// InfraSampler gathers process and dependency gauges. Nil sources are skipped.
type InfraSampler struct {
	Pool  func() PoolStats
	Cache func() (hits, misses uint64, ratio float64)
}

func (s InfraSampler) Sample() InfraMetric {
	var m InfraMetric

	if s.Pool != nil {
		stats := s.Pool()
		m.Pool = &stats
	}
	if s.Cache != nil {
		m.CacheHits, m.CacheMisses, m.CacheHitRatio = s.Cache()
	}

	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)
	m.Goroutines = runtime.NumGoroutine()
	m.HeapAllocMB = float64(memStats.HeapAlloc) / 1024 / 1024

	return m
}

// Run records a sample every interval until ctx is done.
func (s InfraSampler) Run(ctx context.Context, recorder InfraRecorder, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			recorder.RecordInfra(s.Sample())
		}
	}
}
