// FILE: metric_ewma_vol.go
// Package ticksim – the "ewma_vol" indicator metric (spec §4.5).

package ticksim

import "math"

// EWMAVolParams configures an ewma_vol metric.
type EWMAVolParams struct {
	Tau                      float64
	PercentileHorizonSeconds float64
	Bins                     int
	BaseVol                  float64
	StddevCap                float64
}

// EWMAVolMetric smooths squared log returns into a variance-like estimate
// and reports its percentile rank against a trailing histogram.
type EWMAVolMetric struct {
	name string
	ewma *EWMA
	hist *TimeWeightedHistogram

	prevT     float64
	prevMid   float64
	hasPrev   bool
	volEWMA   float64
	volPctile float64
}

// NewEWMAVolMetric constructs an ewma_vol metric. tau and
// percentile_horizon_seconds must be positive, bins >= 2, base_vol and
// stddev_cap must be positive.
func NewEWMAVolMetric(name string, p EWMAVolParams) (*EWMAVolMetric, error) {
	if p.BaseVol <= 0 {
		return nil, NewConfigurationError("base_vol", "must be positive")
	}
	if p.StddevCap <= 0 {
		return nil, NewConfigurationError("stddev_cap", "must be positive")
	}
	if p.Bins < 2 {
		return nil, NewConfigurationError("bins", "must be >= 2")
	}
	e, err := NewEWMA(p.Tau, 2, 0)
	if err != nil {
		return nil, err
	}
	hi := math.Pow(p.StddevCap*p.BaseVol, 2)
	edges := Linspace(0, hi, p.Bins)
	hist, err := NewTimeWeightedHistogram(edges, p.PercentileHorizonSeconds)
	if err != nil {
		return nil, err
	}
	return &EWMAVolMetric{name: name, ewma: e, hist: hist, volPctile: math.NaN()}, nil
}

func (m *EWMAVolMetric) Name() string     { return m.name }
func (m *EWMAVolMetric) Fields() []string { return []string{"vol_ewma", "vol_percentile"} }

func (m *EWMAVolMetric) Update(t Tick) {
	if !m.hasPrev {
		m.prevT = t.Timestamp
		m.prevMid = t.Mid
		m.hasPrev = true
		return
	}

	r := 0.0
	if m.prevMid > 0 && t.Mid > 0 {
		r = math.Log(t.Mid / m.prevMid)
	}
	m.volEWMA = m.ewma.Update(t.Timestamp, r)

	m.hist.Add(m.prevT, t.Timestamp, m.volEWMA)
	m.hist.Trim(t.Timestamp)
	m.volPctile = m.hist.PercentileRank(m.volEWMA)

	m.prevT = t.Timestamp
	m.prevMid = t.Mid
}

func (m *EWMAVolMetric) AppendSnapshot(out Snapshot) {
	out[m.name+".vol_ewma"] = NumberValue(m.volEWMA)
	out[m.name+".vol_percentile"] = NumberValue(m.volPctile)
}
