package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestChatMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewChatMetrics(reg)

	m.ObserveIntent("hours")
	m.ObserveIntent("hours")
	m.ObserveIntent("menu")
	m.ObserveGeneration("ok", 0.42)
	m.ObserveRetry()

	if got := testutil.ToFloat64(m.intentsTotal.WithLabelValues("hours")); got != 2 {
		t.Errorf("hours intents = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.generationsTotal.WithLabelValues("ok")); got != 1 {
		t.Errorf("ok generations = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.retriesTotal); got != 1 {
		t.Errorf("retries = %v, want 1", got)
	}
}

func TestChatMetricsNilSafe(t *testing.T) {
	var m *ChatMetrics
	m.ObserveIntent("hours")
	m.ObserveGeneration("ok", 0)
	m.ObserveRetry()
}
