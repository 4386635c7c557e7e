// Package metrics provides observability for the bootcamp module.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the bootcamp module.
type Metrics struct {
	BootcampsRegistered prometheus.Counter
	BootcampsDeleted    prometheus.Counter
	Compensations       prometheus.Counter
	ReportFallbacks     prometheus.Counter
	RegisterDuration    prometheus.Histogram
	ListDuration        prometheus.Histogram
	RequestDuration     *prometheus.HistogramVec
}

// New creates and registers all bootcamp module metrics.
func New() *Metrics {
	return &Metrics{
		BootcampsRegistered: promauto.NewCounter(prometheus.CounterOpts{
			Name: "bootcamp_registered_total",
			Help: "Total number of bootcamps registered",
		}),
		BootcampsDeleted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "bootcamp_deleted_total",
			Help: "Total number of bootcamps deleted",
		}),
		Compensations: promauto.NewCounter(prometheus.CounterOpts{
			Name: "bootcamp_register_compensations_total",
			Help: "Registrations rolled back after a failed capacity association",
		}),
		ReportFallbacks: promauto.NewCounter(prometheus.CounterOpts{
			Name: "bootcamp_report_count_fallbacks_total",
			Help: "Report count fetches that fell back to zero after an error",
		}),
		RegisterDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "bootcamp_register_duration_seconds",
			Help:    "Duration of bootcamp registration (save + associate + report)",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}),
		ListDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "bootcamp_list_duration_seconds",
			Help:    "Duration of the listing use case including remote enrichment",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}),
		RequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "bootcamp_http_request_duration_seconds",
			Help:    "Duration of inbound HTTP requests",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"method", "path"}),
	}
}

// IncrementRegistered records a successful registration.
func (m *Metrics) IncrementRegistered() {
	if m != nil {
		m.BootcampsRegistered.Inc()
	}
}

// IncrementDeleted records a successful cascade deletion.
func (m *Metrics) IncrementDeleted() {
	if m != nil {
		m.BootcampsDeleted.Inc()
	}
}

// IncrementCompensations records a compensating delete after association failure.
func (m *Metrics) IncrementCompensations() {
	if m != nil {
		m.Compensations.Inc()
	}
}

// IncrementReportFallbacks records a count fetch that fell back to zero.
func (m *Metrics) IncrementReportFallbacks() {
	if m != nil {
		m.ReportFallbacks.Inc()
	}
}

// ObserveRegister records the duration of a registration.
// Call with time.Now() at the start of the operation.
func (m *Metrics) ObserveRegister(start time.Time) {
	if m != nil {
		m.RegisterDuration.Observe(time.Since(start).Seconds())
	}
}

// ObserveList records the duration of a listing.
func (m *Metrics) ObserveList(start time.Time) {
	if m != nil {
		m.ListDuration.Observe(time.Since(start).Seconds())
	}
}

// ObserveRequest records the duration of an inbound HTTP request.
func (m *Metrics) ObserveRequest(method, path string, start time.Time) {
	if m != nil {
		m.RequestDuration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())
	}
}
