package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	predictionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "riskd_predictions_total",
		Help: "Completed predictions by risk level.",
	}, []string{"risk_level"})

	predictionRejectionsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "riskd_prediction_rejections_total",
		Help: "Predictions rejected by validation.",
	})

	documentScansTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "riskd_document_scans_total",
		Help: "Document extraction attempts by outcome.",
	}, []string{"outcome"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "riskd_request_duration_seconds",
		Help:    "Request handling latency by route.",
		Buckets: prometheus.DefBuckets,
	}, []string{"route"})
)
