package metrics

import "github.com/prometheus/client_golang/prometheus"

// ChatMetrics exposes counters/histograms for the chat pipeline.
type ChatMetrics struct {
	intentsTotal      *prometheus.CounterVec
	generationsTotal  *prometheus.CounterVec
	retriesTotal      prometheus.Counter
	generationLatency prometheus.Histogram
}

func NewChatMetrics(reg prometheus.Registerer) *ChatMetrics {
	m := &ChatMetrics{
		intentsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "smarthub",
			Subsystem: "chat",
			Name:      "intents_total",
			Help:      "Classified chat intents",
		}, []string{"intent"}),
		generationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "smarthub",
			Subsystem: "chat",
			Name:      "generations_total",
			Help:      "Outcomes of text generation calls",
		}, []string{"outcome"}),
		retriesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "smarthub",
			Subsystem: "chat",
			Name:      "generation_retries_total",
			Help:      "Backoff retries against the generation service",
		}),
		generationLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "smarthub",
			Subsystem: "chat",
			Name:      "generation_latency_seconds",
			Help:      "Latency of generation calls including retries",
			Buckets:   prometheus.DefBuckets,
		}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.intentsTotal, m.generationsTotal, m.retriesTotal, m.generationLatency)
	return m
}

func (m *ChatMetrics) ObserveIntent(intent string) {
	if m == nil {
		return
	}
	m.intentsTotal.WithLabelValues(intent).Inc()
}

func (m *ChatMetrics) ObserveGeneration(outcome string, seconds float64) {
	if m == nil {
		return
	}
	m.generationsTotal.WithLabelValues(outcome).Inc()
	m.generationLatency.Observe(seconds)
}

func (m *ChatMetrics) ObserveRetry() {
	if m == nil {
		return
	}
	m.retriesTotal.Inc()
}
