package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// Latency of the recommendation listing handlers
	RecommendationLatency = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "recommendation_request_latency_seconds",
		Help:    "Latency of recommendation endpoints",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation"})

	// Total recommendations served across listing endpoints
	RecommendationsServed = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "recommendations_served_total",
		Help: "Total number of recommendation records returned to clients",
	})

	RecommendationsCreated = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "recommendations_created_total",
		Help: "Total number of recommendations created",
	})

	// Recommendations silently dropped during product enrichment
	EnrichmentDropped = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "recommendation_enrichment_dropped_total",
		Help: "Recommendations skipped because the referenced product could not be fetched",
	})
)

func Init() {
	prometheus.MustRegister(
		RecommendationLatency,
		RecommendationsServed,
		RecommendationsCreated,
		EnrichmentDropped,
	)
}
