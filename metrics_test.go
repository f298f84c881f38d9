package goAuthClient

import "testing"

func TestMetricsCounters(t *testing.T) {
	m := NewMetrics(MetricsConfig{Enabled: true})

	m.Inc(MetricLoginSuccess)
	m.Inc(MetricLoginSuccess)
	m.Inc(MetricLogout)

	if got := m.Value(MetricLoginSuccess); got != 2 {
		t.Fatalf("login success = %d, want 2", got)
	}
	snap := m.Snapshot()
	if snap.Counters[MetricLoginSuccess] != 2 || snap.Counters[MetricLogout] != 1 {
		t.Fatalf("snapshot = %+v", snap.Counters)
	}
	if snap.Counters[MetricRefreshSuccess] != 0 {
		t.Fatal("untouched counter must be zero")
	}
}

func TestMetricsDisabled(t *testing.T) {
	m := NewMetrics(MetricsConfig{Enabled: false})
	m.Inc(MetricLoginSuccess)

	if m.Enabled() {
		t.Fatal("disabled metrics report enabled")
	}
	if got := m.Value(MetricLoginSuccess); got != 0 {
		t.Fatalf("disabled counter = %d", got)
	}
	if snap := m.Snapshot(); len(snap.Counters) != 0 {
		t.Fatalf("disabled snapshot = %+v", snap.Counters)
	}
}

func TestMetricsNilSafety(t *testing.T) {
	var m *Metrics
	m.Inc(MetricLoginSuccess)
	if m.Enabled() {
		t.Fatal("nil metrics report enabled")
	}
	if m.Value(MetricLoginSuccess) != 0 {
		t.Fatal("nil value must be zero")
	}
	if snap := m.Snapshot(); snap.Counters == nil {
		t.Fatal("nil snapshot must return an empty map")
	}
}

func TestMetricsOutOfRangeID(t *testing.T) {
	m := NewMetrics(MetricsConfig{Enabled: true})
	m.Inc(metricIDCount)
	m.Inc(MetricID(9999))
	if m.Value(MetricID(9999)) != 0 {
		t.Fatal("out-of-range id must be ignored")
	}
}
