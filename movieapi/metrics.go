package movieapi

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "reelgrid",
		Subsystem: "upstream",
		Name:      "requests_total",
		Help:      "Upstream API requests by endpoint and outcome.",
	}, []string{"endpoint", "outcome"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "reelgrid",
		Subsystem: "upstream",
		Name:      "request_duration_seconds",
		Help:      "Upstream API request duration.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"endpoint"})

	cacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "reelgrid",
		Subsystem: "cache",
		Name:      "hits_total",
		Help:      "Responses served from the TTL cache.",
	})

	cacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "reelgrid",
		Subsystem: "cache",
		Name:      "misses_total",
		Help:      "Cache lookups that fell through to the network.",
	})
)
