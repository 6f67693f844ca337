// FILE: metric_reversion.go
// Package ticksim – the threshold-reversion metric underpinning the
// reversion entry engine (spec §4.6).
//
// Open question (documented, not a bug): step 3's "flatten when
// |mid-p_ref| <= pip_size" runs before step 5's open, so a rapid
// mean-reversion tick can close and immediately reopen in the opposite
// direction within the same tick. The spec instructs preserving this
// behavior rather than guessing intent; see DESIGN.md.

package ticksim

import "math"

// ThresholdReversionParams configures a threshold-reversion metric.
type ThresholdReversionParams struct {
	LookbackSeconds   float64
	PipSize           float64
	ThresholdPips     float64
	MinRecencySeconds float64
	TPPips            float64
	SLPips            float64
}

// ThresholdReversionMetric tracks a drifting reference extremum and the
// direction a mean-reversion trade off that extremum would take.
type ThresholdReversionMetric struct {
	name string

	lookback   float64
	pipSize    float64
	threshold  float64
	minRecency float64
	tpDistance float64
	slDistance float64

	maxQ *MonotonicQueue
	minQ *MonotonicQueue

	pRef, tRef float64
	hasRef     bool

	position int // -1, 0, +1
	tpPrice  float64
	slPrice  float64
	openedAt float64

	lastT float64
}

// NewThresholdReversionMetric constructs a threshold-reversion metric.
// LookbackSeconds, PipSize, ThresholdPips, TPPips, SLPips must be
// positive; MinRecencySeconds must be non-negative.
func NewThresholdReversionMetric(name string, p ThresholdReversionParams) (*ThresholdReversionMetric, error) {
	if p.LookbackSeconds <= 0 {
		return nil, NewConfigurationError("lookback_seconds", "must be positive")
	}
	if p.PipSize <= 0 {
		return nil, NewConfigurationError("pip_size", "must be positive")
	}
	if p.ThresholdPips <= 0 {
		return nil, NewConfigurationError("threshold_pips", "must be positive")
	}
	if p.MinRecencySeconds < 0 {
		return nil, NewConfigurationError("min_recency_seconds", "must be non-negative")
	}
	if p.TPPips <= 0 {
		return nil, NewConfigurationError("tp_pips", "must be positive")
	}
	if p.SLPips <= 0 {
		return nil, NewConfigurationError("sl_pips", "must be positive")
	}
	return &ThresholdReversionMetric{
		name:       name,
		lookback:   p.LookbackSeconds,
		pipSize:    p.PipSize,
		threshold:  p.ThresholdPips * p.PipSize,
		minRecency: p.MinRecencySeconds,
		tpDistance: p.TPPips * p.PipSize,
		slDistance: p.SLPips * p.PipSize,
		maxQ:       NewMonotonicQueue(true),
		minQ:       NewMonotonicQueue(false),
		tpPrice:    math.NaN(),
		slPrice:    math.NaN(),
	}, nil
}

func (m *ThresholdReversionMetric) Name() string { return m.name }
func (m *ThresholdReversionMetric) Fields() []string {
	return []string{"direction", "reference_price", "tp_price", "sl_price", "reference_age_seconds"}
}

// findCandidate returns the newer of the min-queue-low and max-queue-high
// candidates satisfying both the magnitude and recency bar.
func (m *ThresholdReversionMetric) findCandidate(mid, now float64) (t, p float64, ok bool) {
	lowT, lowP, lowOK := m.minQ.FindCandidate(mid, m.threshold, true, now, m.minRecency)
	highT, highP, highOK := m.maxQ.FindCandidate(mid, m.threshold, false, now, m.minRecency)
	switch {
	case lowOK && highOK:
		if lowT >= highT {
			return lowT, lowP, true
		}
		return highT, highP, true
	case lowOK:
		return lowT, lowP, true
	case highOK:
		return highT, highP, true
	default:
		return 0, 0, false
	}
}

func (m *ThresholdReversionMetric) Update(t Tick) {
	now := t.Timestamp
	midPrice := t.Mid
	m.lastT = now

	cutoff := now - m.lookback
	m.maxQ.Append(now, midPrice)
	m.maxQ.Trim(cutoff)
	m.minQ.Append(now, midPrice)
	m.minQ.Trim(cutoff)

	candT, candP, candFound := m.findCandidate(midPrice, now)

	if m.position != 0 && m.hasRef && math.Abs(midPrice-m.pRef) <= m.pipSize {
		m.position = 0
		candT, candP, candFound = m.findCandidate(midPrice, now)
	}

	if !candFound {
		m.position = 0
		m.hasRef = false
	} else if !m.hasRef || math.Abs(candP-m.pRef) > m.pipSize/10 {
		m.position = 0
		m.pRef = candP
		m.tRef = candT
		m.hasRef = true
	}

	if m.position == 0 && m.hasRef {
		switch {
		case midPrice-m.pRef >= m.threshold:
			m.position = -1
			m.tpPrice = midPrice - m.tpDistance
			m.slPrice = midPrice + m.slDistance
			m.openedAt = now
		case m.pRef-midPrice >= m.threshold:
			m.position = 1
			m.tpPrice = midPrice + m.tpDistance
			m.slPrice = midPrice - m.slDistance
			m.openedAt = now
		}
	}
}

func (m *ThresholdReversionMetric) AppendSnapshot(out Snapshot) {
	out[m.name+".direction"] = NumberValue(float64(m.position))
	if m.hasRef {
		out[m.name+".reference_price"] = NumberValue(m.pRef)
		out[m.name+".reference_age_seconds"] = NumberValue(m.lastT - m.tRef)
	} else {
		out[m.name+".reference_price"] = NumberValue(math.NaN())
		out[m.name+".reference_age_seconds"] = NumberValue(math.NaN())
	}
	if m.position != 0 {
		out[m.name+".tp_price"] = NumberValue(m.tpPrice)
		out[m.name+".sl_price"] = NumberValue(m.slPrice)
	} else {
		out[m.name+".tp_price"] = NumberValue(math.NaN())
		out[m.name+".sl_price"] = NumberValue(math.NaN())
	}
}
