package metrics

import "time"

type HTTPMetric struct {
	Method     string
	Path       string
	StatusCode int
	Duration   time.Duration
	Error      string
}

type PoolStats struct {
	Acquired int
	Idle     int
	Total    int
	Max      int
}

type InfraMetric struct {
	Pool          *PoolStats
	CacheHits     uint64
	CacheMisses   uint64
	CacheHitRatio float64
	Goroutines    int
	HeapAllocMB   float64
}
