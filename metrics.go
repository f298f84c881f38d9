package goAuthClient

import "sync/atomic"

// MetricID defines a public type used by goAuthClient APIs.
//
// MetricID instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type MetricID uint16

const (
	// MetricLoginSuccess is an exported constant or variable used by the authentication client.
	MetricLoginSuccess MetricID = iota
	// MetricLoginFailure is an exported constant or variable used by the authentication client.
	MetricLoginFailure
	// MetricRegisterSuccess is an exported constant or variable used by the authentication client.
	MetricRegisterSuccess
	// MetricRegisterFailure is an exported constant or variable used by the authentication client.
	MetricRegisterFailure
	// MetricRegisterRejectedLocally counts registrations stopped by local
	// validation before any network traffic.
	MetricRegisterRejectedLocally
	// MetricRefreshSuccess is an exported constant or variable used by the authentication client.
	MetricRefreshSuccess
	// MetricRefreshFailure is an exported constant or variable used by the authentication client.
	MetricRefreshFailure
	// MetricLogout is an exported constant or variable used by the authentication client.
	MetricLogout
	// MetricLogoutRemoteFailure counts logouts whose remote invalidation
	// failed while the local sign-out still completed.
	MetricLogoutRemoteFailure
	// MetricTokenDiscarded counts stored tokens dropped because they were
	// malformed or expired on a local read.
	MetricTokenDiscarded
	// MetricForcedSignout counts 401 responses that triggered an
	// unconditional local sign-out.
	MetricForcedSignout
	// MetricNetworkError is an exported constant or variable used by the authentication client.
	MetricNetworkError
	// MetricStaleResultDiscarded counts async results dropped by the
	// session version check instead of overwriting newer state.
	MetricStaleResultDiscarded

	metricIDCount
)

type paddedCounter struct {
	value uint64
	_     [56]byte
}

// Metrics defines a public type used by goAuthClient APIs.
//
// Metrics instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Metrics struct {
	enabled  bool
	counters [metricIDCount]paddedCounter
}

// MetricsSnapshot defines a public type used by goAuthClient APIs.
//
// MetricsSnapshot instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type MetricsSnapshot struct {
	Counters map[MetricID]uint64
}

// NewMetrics describes the newmetrics operation and its observable behavior.
func NewMetrics(cfg MetricsConfig) *Metrics {
	return &Metrics{enabled: cfg.Enabled}
}

// Enabled describes the enabled operation and its observable behavior.
func (m *Metrics) Enabled() bool {
	return m != nil && m.enabled
}

// Inc describes the inc operation and its observable behavior.
func (m *Metrics) Inc(id MetricID) {
	if m == nil || !m.enabled || id >= metricIDCount {
		return
	}
	atomic.AddUint64(&m.counters[id].value, 1)
}

// Value describes the value operation and its observable behavior.
func (m *Metrics) Value(id MetricID) uint64 {
	if m == nil || id >= metricIDCount {
		return 0
	}
	return atomic.LoadUint64(&m.counters[id].value)
}

// Snapshot describes the snapshot operation and its observable behavior.
func (m *Metrics) Snapshot() MetricsSnapshot {
	if m == nil || !m.enabled {
		return MetricsSnapshot{Counters: map[MetricID]uint64{}}
	}

	s := MetricsSnapshot{Counters: make(map[MetricID]uint64, int(metricIDCount))}
	for id := MetricID(0); id < metricIDCount; id++ {
		s.Counters[id] = atomic.LoadUint64(&m.counters[id].value)
	}
	return s
}
