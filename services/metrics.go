package services

import (
	"stylistapi/outfits"

	"github.com/getsentry/sentry-go"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// OutfitMetrics implements outfits.Recorder on top of prometheus.
type OutfitMetrics struct {
	assembled  *prometheus.CounterVec
	fallbacks  *prometheus.CounterVec
	duplicates prometheus.Counter
	failures   prometheus.Counter
	ranked     prometheus.Histogram
}

var _ outfits.Recorder = (*OutfitMetrics)(nil)

func NewOutfitMetrics(reg prometheus.Registerer) *OutfitMetrics {
	factory := promauto.With(reg)
	return &OutfitMetrics{
		assembled: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "stylist",
			Name:      "outfits_assembled_total",
			Help:      "Outfits assembled from a theme.",
		}, []string{"theme"}),
		fallbacks: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "stylist",
			Name:      "outfit_fallbacks_total",
			Help:      "Outfits built by the fallback path, by reason.",
		}, []string{"reason"}),
		duplicates: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "stylist",
			Name:      "outfit_duplicate_retries_total",
			Help:      "Assembly attempts discarded as recently seen.",
		}),
		failures: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "stylist",
			Name:      "outfit_assembly_failures_total",
			Help:      "Assembly attempts that hit an unexpected error.",
		}),
		ranked: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "stylist",
			Name:      "outfit_recommendations_returned",
			Help:      "Recommendations returned per request.",
			Buckets:   []float64{0, 1, 2, 3, 5, 10, 20},
		}),
	}
}

func (m *OutfitMetrics) OutfitAssembled(theme outfits.Theme) {
	m.assembled.WithLabelValues(string(theme)).Inc()
}

func (m *OutfitMetrics) FallbackUsed(reason string) {
	m.fallbacks.WithLabelValues(reason).Inc()
}

func (m *OutfitMetrics) DuplicateRetried() {
	m.duplicates.Inc()
}

func (m *OutfitMetrics) AssemblyFailed(err error) {
	m.failures.Inc()
	sentry.CaptureException(err)
}

func (m *OutfitMetrics) RecommendationsRanked(count int) {
	m.ranked.Observe(float64(count))
}
