// Package metrics exposes Prometheus instrumentation for the validation
// workflow.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	validationScores = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "familytree_validation_score",
		Help:    "Distribution of validation scores computed at registration",
		Buckets: []float64{0, 30, 40, 50, 60, 70, 100},
	})

	requestOutcomes = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "familytree_requests_submitted_total",
		Help: "Family requests submitted, by initial status",
	}, []string{"status"})

	reviewDecisions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "familytree_review_decisions_total",
		Help: "Admin decisions on family requests, by action",
	}, []string{"action"})
)

// ObserveScore records one computed validation score.
func ObserveScore(score int) {
	validationScores.Observe(float64(score))
}

// RequestSubmitted counts a submitted request by its initial status
// ("approved" for auto-approval, "pending" otherwise).
func RequestSubmitted(status string) {
	requestOutcomes.WithLabelValues(status).Inc()
}

// ReviewDecided counts an admin decision ("approve" or "reject").
func ReviewDecided(action string) {
	reviewDecisions.WithLabelValues(action).Inc()
}
