package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "shindig"

// Submission outcomes.
const (
	OutcomeAccepted = "accepted"
	OutcomeInvalid  = "invalid"
	OutcomeCapacity = "capacity"
	OutcomeConflict = "conflict"
	OutcomeError    = "error"
)

type Metrics struct {
	submissions        *prometheus.CounterVec
	capacityRejections prometheus.Counter
	conflictRetries    prometheus.Counter
	overclaimed        prometheus.Gauge
}

func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		submissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "response_submissions_total",
			Help:      "Guest response submissions by outcome.",
		}, []string{"outcome"}),
		capacityRejections: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "signup_capacity_rejections_total",
			Help:      "Signup options rejected because they were fully claimed.",
		}),
		conflictRetries: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "response_conflict_retries_total",
			Help:      "Submissions re-run after a storage conflict.",
		}),
		overclaimed: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "signup_overclaimed_options",
			Help:      "Signup options held by more guests than allowed at the last audit.",
		}),
	}

	reg.MustRegister(m.submissions, m.capacityRejections, m.conflictRetries, m.overclaimed)

	return m
}

func (m *Metrics) ObserveSubmission(outcome string) {
	m.submissions.WithLabelValues(outcome).Inc()
}

func (m *Metrics) ObserveCapacityRejections(n int) {
	m.capacityRejections.Add(float64(n))
}

func (m *Metrics) ObserveConflictRetry() {
	m.conflictRetries.Inc()
}

func (m *Metrics) SetOverclaimedOptions(n int) {
	m.overclaimed.Set(float64(n))
}

func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
