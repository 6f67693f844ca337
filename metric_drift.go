// FILE: metric_drift.go
// Package ticksim – the "drift_sign" indicator metric (spec §4.5).

package ticksim

import "math"

// DriftSignParams configures a drift_sign metric.
type DriftSignParams struct {
	LookbackSeconds float64
}

// DriftSignMetric reports (mid-mean)/lookback and its sign over a
// time-weighted rolling mean.
type DriftSignMetric struct {
	name string
	win  *TimeWeightedRollingWindow

	lastT    float64
	hasLastT bool

	drift float64
	sign  float64
}

// NewDriftSignMetric constructs a drift_sign metric. LookbackSeconds must
// be positive.
func NewDriftSignMetric(name string, p DriftSignParams) (*DriftSignMetric, error) {
	win, err := NewTimeWeightedRollingWindow(p.LookbackSeconds)
	if err != nil {
		return nil, err
	}
	return &DriftSignMetric{name: name, win: win, drift: math.NaN()}, nil
}

func (m *DriftSignMetric) Name() string     { return m.name }
func (m *DriftSignMetric) Fields() []string { return []string{"drift", "drift_sign"} }

func (m *DriftSignMetric) Update(t Tick) {
	if m.hasLastT {
		dt := t.Timestamp - m.lastT
		if dt < 0 {
			dt = 0
		}
		m.win.Append(t.Timestamp, dt, t.Mid)
	}
	m.lastT = t.Timestamp
	m.hasLastT = true

	mean, _ := m.win.Stats()
	if math.IsNaN(mean) {
		m.drift = math.NaN()
		m.sign = 0
		return
	}
	m.drift = (t.Mid - mean) / m.win.lookback
	switch {
	case m.drift > 0:
		m.sign = 1
	case m.drift < 0:
		m.sign = -1
	default:
		m.sign = 0
	}
}

func (m *DriftSignMetric) AppendSnapshot(out Snapshot) {
	out[m.name+".drift"] = NumberValue(m.drift)
	out[m.name+".drift_sign"] = NumberValue(m.sign)
}
