// Package observability provides prometheus collectors for the document
// stores and the cache. HTTP-level metrics come from fiberprometheus and
// are wired in the server package.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// StoreOperations counts document store operations by store and operation.
	StoreOperations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "debateapp_store_operations_total",
		Help: "Total number of document store operations",
	}, []string{"store", "operation"})

	// StoreErrors counts document store failures by store and operation.
	StoreErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "debateapp_store_errors_total",
		Help: "Total number of document store errors",
	}, []string{"store", "operation"})

	// CacheErrors counts Redis cache failures by operation.
	CacheErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "debateapp_cache_errors_total",
		Help: "Total number of cache errors by operation",
	}, []string{"operation"})
)
