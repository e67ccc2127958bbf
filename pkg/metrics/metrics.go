// Package metrics exposes the Prometheus collectors shared by the HTTP layer,
// the store backends and the group pipeline.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "groupdir"

var (
	httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "HTTP requests by method, route and status.",
	}, []string{"method", "route", "status"})

	httpDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency by method and route.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})

	dbQueryDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "db_query_duration_seconds",
		Help:      "SQL query latency by operation and table.",
		Buckets:   []float64{.0005, .001, .005, .01, .025, .05, .1, .25, .5, 1},
	}, []string{"operation", "table"})

	storeOps = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "store_operations_total",
		Help:      "Store primitive calls by backend, operation and outcome.",
	}, []string{"backend", "operation", "outcome"})

	storeDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "store_operation_duration_seconds",
		Help:      "Store primitive latency by backend and operation.",
		Buckets:   []float64{.0005, .001, .005, .01, .025, .05, .1, .25, .5, 1},
	}, []string{"backend", "operation"})

	groupsCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "groups_created_total",
		Help:      "Groups created, split by system and hidden flags.",
	}, []string{"system", "hidden"})

	groupCreateFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "group_create_failures_total",
		Help:      "Rejected or failed group creations by reason.",
	}, []string{"reason"})

	hookFires = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "hook_fires_total",
		Help:      "Hook invocations by hook name and outcome.",
	}, []string{"hook", "outcome"})
)

// Middleware records request counts and latency per matched route.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}

		httpRequests.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		httpDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}

// RecordDBQuery observes a single SQL statement.
func RecordDBQuery(operation, table string, elapsed time.Duration) {
	dbQueryDuration.WithLabelValues(operation, table).Observe(elapsed.Seconds())
}

// RecordStoreOp observes a store primitive call.
func RecordStoreOp(backend, operation string, elapsed time.Duration, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	storeOps.WithLabelValues(backend, operation, outcome).Inc()
	storeDuration.WithLabelValues(backend, operation).Observe(elapsed.Seconds())
}

// RecordGroupCreated counts a successfully persisted group.
func RecordGroupCreated(system, hidden bool) {
	groupsCreated.WithLabelValues(strconv.FormatBool(system), strconv.FormatBool(hidden)).Inc()
}

// RecordGroupCreateFailure counts a rejected or failed creation.
func RecordGroupCreateFailure(reason string) {
	groupCreateFailures.WithLabelValues(reason).Inc()
}

// RecordHookFire counts a hook invocation.
func RecordHookFire(hook string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	hookFires.WithLabelValues(hook, outcome).Inc()
}
