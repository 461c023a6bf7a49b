package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics bundles the prometheus instruments the API reports. Request
// metrics are driven by the HTTP middleware, domain counters by the
// services.
type Metrics struct {
	registry *prometheus.Registry

	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec

	ApplicationsCreated  prometheus.Counter
	AssignmentsStarted   prometheus.Counter
	AssignmentsCompleted prometheus.Counter
	SubmissionsReviewed  prometheus.Counter
}

func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	m := &Metrics{
		registry: registry,
		RequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "internmatch_http_requests_total",
			Help: "HTTP requests processed, partitioned by method and status.",
		}, []string{"method", "status"}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "internmatch_http_request_duration_seconds",
			Help:    "HTTP request latency.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method"}),
		ApplicationsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "internmatch_applications_created_total",
			Help: "Job applications accepted by the application manager.",
		}),
		AssignmentsStarted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "internmatch_assignments_started_total",
			Help: "Student assignments transitioned to in-progress.",
		}),
		AssignmentsCompleted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "internmatch_assignments_completed_total",
			Help: "Student assignments transitioned to completed.",
		}),
		SubmissionsReviewed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "internmatch_submissions_reviewed_total",
			Help: "Assignment submissions reviewed by recruiters.",
		}),
	}
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.RequestsTotal,
		m.RequestDuration,
		m.ApplicationsCreated,
		m.AssignmentsStarted,
		m.AssignmentsCompleted,
		m.SubmissionsReviewed,
	)
	return m
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
