// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ToolInvocations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tool_invocations_total",
			Help: "Total number of tool invocations by outcome",
		},
		[]string{"tool", "status", "error_code"},
	)

	ToolInvocationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "tool_invocation_duration_seconds",
			Help:    "Duration of tool invocations in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"tool"},
	)

	ToolInvocationsActive = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "tool_invocations_active",
			Help: "Number of in-flight invocations per tool",
		},
		[]string{"tool"},
	)

	WarehouseQueries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "warehouse_queries_total",
			Help: "Total number of warehouse queries by analysis mode",
		},
		[]string{"mode", "status"},
	)

	MarketCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "market_cache_lookups_total",
			Help: "Market analysis cache lookups by result",
		},
		[]string{"result"},
	)
)
