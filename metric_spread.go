// FILE: metric_spread.go
// Package ticksim – the "spread" indicator metric (spec §4.5).

package ticksim

import "math"

// SpreadParams configures a spread metric.
type SpreadParams struct {
	PipSize       float64
	WindowSeconds float64
}

type spreadSample struct {
	t    float64
	pips float64
}

// SpreadMetric reports the current spread in price and pips, plus its
// percentile rank within a trailing window of observed spreads.
type SpreadMetric struct {
	name    string
	pipSize float64
	window  float64

	history []spreadSample

	spread     float64
	spreadPips float64
	percentile float64
}

// NewSpreadMetric constructs a spread metric. PipSize and WindowSeconds
// must be positive.
func NewSpreadMetric(name string, p SpreadParams) (*SpreadMetric, error) {
	if p.PipSize <= 0 {
		return nil, NewConfigurationError("pip_size", "must be positive")
	}
	if p.WindowSeconds <= 0 {
		return nil, NewConfigurationError("window_seconds", "must be positive")
	}
	return &SpreadMetric{name: name, pipSize: p.PipSize, window: p.WindowSeconds, percentile: math.NaN()}, nil
}

func (m *SpreadMetric) Name() string     { return m.name }
func (m *SpreadMetric) Fields() []string { return []string{"spread", "spread_pips", "spread_percentile"} }

func (m *SpreadMetric) Update(t Tick) {
	spread := t.Ask - t.Bid
	if spread < 0 {
		spread = 0
	}
	m.spread = spread
	m.spreadPips = spread / m.pipSize

	m.history = append(m.history, spreadSample{t: t.Timestamp, pips: m.spreadPips})
	cutoff := t.Timestamp - m.window
	i := 0
	for i < len(m.history) && m.history[i].t < cutoff {
		i++
	}
	if i > 0 {
		m.history = append([]spreadSample(nil), m.history[i:]...)
	}

	if len(m.history) == 0 {
		m.percentile = math.NaN()
		return
	}
	var le int
	for _, s := range m.history {
		if s.pips <= m.spreadPips {
			le++
		}
	}
	m.percentile = float64(le) / float64(len(m.history))
}

func (m *SpreadMetric) AppendSnapshot(out Snapshot) {
	out[m.name+".spread"] = NumberValue(m.spread)
	out[m.name+".spread_pips"] = NumberValue(m.spreadPips)
	out[m.name+".spread_percentile"] = NumberValue(m.percentile)
}
