// FILE: metric_zscore.go
// Package ticksim – the "zscore" indicator metric (spec §4.5).

package ticksim

import "math"

// ZScoreParams configures a zscore metric.
type ZScoreParams struct {
	LookbackSeconds float64
}

// ZScoreMetric reports the residual and z-score of mid against a
// time-weighted rolling mean/std.
type ZScoreMetric struct {
	name string
	win  *TimeWeightedRollingWindow

	lastT    float64
	hasLastT bool

	residual float64
	zScore   float64
}

// NewZScoreMetric constructs a zscore metric. LookbackSeconds must be
// positive.
func NewZScoreMetric(name string, p ZScoreParams) (*ZScoreMetric, error) {
	win, err := NewTimeWeightedRollingWindow(p.LookbackSeconds)
	if err != nil {
		return nil, err
	}
	return &ZScoreMetric{name: name, win: win, residual: math.NaN(), zScore: math.NaN()}, nil
}

func (m *ZScoreMetric) Name() string     { return m.name }
func (m *ZScoreMetric) Fields() []string { return []string{"z_score", "rolling_residual"} }

func (m *ZScoreMetric) Update(t Tick) {
	if m.hasLastT {
		dt := t.Timestamp - m.lastT
		if dt < 0 {
			dt = 0
		}
		m.win.Append(t.Timestamp, dt, t.Mid)
	}
	m.lastT = t.Timestamp
	m.hasLastT = true

	mean, std := m.win.Stats()
	if math.IsNaN(mean) {
		m.residual = math.NaN()
		m.zScore = math.NaN()
		return
	}
	m.residual = t.Mid - mean
	if std <= 1e-12 {
		m.zScore = 0
	} else {
		m.zScore = m.residual / std
	}
}

func (m *ZScoreMetric) AppendSnapshot(out Snapshot) {
	out[m.name+".z_score"] = NumberValue(m.zScore)
	out[m.name+".rolling_residual"] = NumberValue(m.residual)
}
