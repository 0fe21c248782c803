// Package metrics exposes Prometheus counters for the evaluation pipeline.
// Fallbacks are labeled by reason so that quota exhaustion can be told apart
// from malformed responses and transport failures even though the user-facing
// copy is the same for all of them.
package metrics

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// EvaluationsTotal counts completed evaluations by outcome: "live" when
	// the remote service answered, "demo" when generated data was served.
	EvaluationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ideanest_evaluations_total",
			Help: "Completed idea evaluations by outcome.",
		},
		[]string{"outcome"},
	)

	// FallbacksTotal counts fallbacks by classified reason: quota,
	// bad_response, upstream_error, or transport.
	FallbacksTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ideanest_fallbacks_total",
			Help: "Fallbacks to demo data by classified reason.",
		},
		[]string{"reason"},
	)

	// AnalysisRequestsTotal counts the auxiliary analyses by type and origin
	// ("remote" or "demo").
	AnalysisRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ideanest_analysis_requests_total",
			Help: "Auxiliary analysis requests by type and data origin.",
		},
		[]string{"type", "origin"},
	)
)

func init() {
	prometheus.MustRegister(EvaluationsTotal, FallbacksTotal, AnalysisRequestsTotal)
}

// Handler serves the Prometheus scrape endpoint on a gin router.
func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
