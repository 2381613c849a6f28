package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/dc25-uiux/uxai/internal/domain"
	"github.com/dc25-uiux/uxai/internal/ports"
)

// Recorder counts recommendations and provider failures.
type Recorder struct {
	Recommendations *prometheus.CounterVec
	ProviderErrors  *prometheus.CounterVec
}

// NewRecorder registers the collectors on reg.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	factory := promauto.With(reg)
	return &Recorder{
		Recommendations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "uxai_recommendations_total",
				Help: "Total number of recommendations served",
			},
			[]string{"provider", "cached"},
		),
		ProviderErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "uxai_provider_errors_total",
				Help: "Provider calls that failed and were replaced by the rule fallback",
			},
			[]string{"provider"},
		),
	}
}

func (r *Recorder) Recommendation(provider domain.Provider, cached bool) {
	r.Recommendations.WithLabelValues(string(provider), strconv.FormatBool(cached)).Inc()
}

func (r *Recorder) ProviderFailure(provider domain.Provider) {
	r.ProviderErrors.WithLabelValues(string(provider)).Inc()
}

var _ ports.Recorder = (*Recorder)(nil)
