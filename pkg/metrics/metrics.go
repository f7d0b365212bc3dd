package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP metrics
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shuttle_planner_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "shuttle_planner_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	// Planner metrics
	UploadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shuttle_planner_uploads_total",
			Help: "Total number of trip files uploaded",
		},
		[]string{"format", "status"},
	)

	UploadedTripsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "shuttle_planner_uploaded_trips_total",
			Help: "Total number of trip records accepted from uploads",
		},
	)

	PlansComputedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shuttle_planner_plans_computed_total",
			Help: "Total number of shuttle plans computed, excluding memo hits",
		},
		[]string{"traffic_level"},
	)

	PlanMemoHitsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "shuttle_planner_plan_memo_hits_total",
			Help: "Total number of shuttle plans served from a session memo",
		},
	)

	ActiveSessionsGauge = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "shuttle_planner_active_sessions",
			Help: "Current number of planner sessions held in memory",
		},
	)
)

func RecordHTTPMetrics(method, path string, statusCode int, duration time.Duration) {
	HTTPRequestsTotal.WithLabelValues(method, path, strconv.Itoa(statusCode)).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

func RecordUpload(format string, trips int, err error) {
	status := "success"
	if err != nil {
		status = "error"
	} else {
		UploadedTripsTotal.Add(float64(trips))
	}

	if format == "" {
		format = "unknown"
	}

	UploadsTotal.WithLabelValues(format, status).Inc()
}
