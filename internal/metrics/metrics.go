// Package metrics registers the Prometheus instruments exposed on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// CheckInSubmissions counts finalized slot submissions by slot name.
	CheckInSubmissions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "wellness_checkin_submissions_total",
		Help: "Number of check-in slot submissions.",
	}, []string{"slot"})

	// AdviceRequests counts advice chat requests by answering source
	// (selector, a provider name, or fallback).
	AdviceRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "wellness_advice_requests_total",
		Help: "Number of advice requests by answering source.",
	}, []string{"source"})

	// ScoreDistribution tracks submitted check-in scores.
	ScoreDistribution = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "wellness_checkin_score",
		Help:    "Distribution of wellness scores at submission time.",
		Buckets: prometheus.LinearBuckets(0, 10, 11),
	})
)
