// FILE: metric_tickrate.go
// Package ticksim – the "tick_rate" indicator metric (spec §4.5).

package ticksim

// TickRateParams configures a tick_rate metric.
type TickRateParams struct {
	WindowSeconds float64
}

// TickRateMetric counts ticks observed within a trailing window and
// reports the count and per-second/per-minute rate.
type TickRateMetric struct {
	name    string
	window  float64
	times   []float64
	headIdx int
}

// NewTickRateMetric constructs a tick_rate metric. WindowSeconds must be
// positive.
func NewTickRateMetric(name string, p TickRateParams) (*TickRateMetric, error) {
	if p.WindowSeconds <= 0 {
		return nil, NewConfigurationError("window_seconds", "must be positive")
	}
	return &TickRateMetric{name: name, window: p.WindowSeconds}, nil
}

func (m *TickRateMetric) Name() string { return m.name }
func (m *TickRateMetric) Fields() []string {
	return []string{"tick_count", "tick_rate_per_sec", "tick_rate_per_min"}
}

func (m *TickRateMetric) Update(t Tick) {
	m.times = append(m.times, t.Timestamp)
	cutoff := t.Timestamp - m.window
	for m.headIdx < len(m.times) && m.times[m.headIdx] <= cutoff {
		m.headIdx++
	}
	// compact occasionally to bound memory; amortized O(1).
	if m.headIdx > 0 && m.headIdx*2 > len(m.times) {
		m.times = append([]float64(nil), m.times[m.headIdx:]...)
		m.headIdx = 0
	}
}

func (m *TickRateMetric) count() int { return len(m.times) - m.headIdx }

func (m *TickRateMetric) AppendSnapshot(out Snapshot) {
	n := m.count()
	out[m.name+".tick_count"] = NumberValue(float64(n))
	out[m.name+".tick_rate_per_sec"] = NumberValue(float64(n) / m.window)
	out[m.name+".tick_rate_per_min"] = NumberValue(float64(n) / m.window * 60)
}
