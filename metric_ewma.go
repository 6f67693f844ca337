// FILE: metric_ewma.go
// Package ticksim – the "ewma" and "ewma_slope" indicator metrics (spec §4.5).

package ticksim

import "math"

// EWMAParams configures a plain ewma metric.
type EWMAParams struct {
	Tau          float64
	InitialValue *float64
	PriceField   PriceField
}

// EWMAMetric exposes a single smoothed price field. The first tick seeds y
// to the observed price unless InitialValue was given.
type EWMAMetric struct {
	name   string
	field  PriceField
	ewma   *EWMA
	seeded bool
}

// NewEWMAMetric constructs an ewma metric. Tau must be positive.
func NewEWMAMetric(name string, p EWMAParams) (*EWMAMetric, error) {
	field, err := validatePriceField(p.PriceField)
	if err != nil {
		return nil, err
	}
	var initial float64
	if p.InitialValue != nil {
		initial = *p.InitialValue
	}
	e, err := NewEWMA(p.Tau, 1, initial)
	if err != nil {
		return nil, err
	}
	return &EWMAMetric{name: name, field: field, ewma: e, seeded: p.InitialValue != nil}, nil
}

func (m *EWMAMetric) Name() string     { return m.name }
func (m *EWMAMetric) Fields() []string { return []string{"ewma"} }

func (m *EWMAMetric) Update(t Tick) {
	price := m.field.Value(t)
	if !m.seeded {
		m.ewma.SetValue(price)
		m.seeded = true
	}
	m.ewma.Update(t.Timestamp, price)
}

func (m *EWMAMetric) AppendSnapshot(out Snapshot) {
	out[m.name+".ewma"] = NumberValue(m.ewma.Value())
}

// EWMASlopeParams configures an ewma_slope metric.
type EWMASlopeParams struct {
	Tau           float64
	WindowSeconds float64
	InitialValue  *float64
	PriceField    PriceField
}

type slopeSample struct {
	t, ewma float64
}

// EWMASlopeMetric maintains an ewma plus a bounded (timestamp, ewma)
// history and reports the slope between the oldest retained point and now.
type EWMASlopeMetric struct {
	name    string
	field   PriceField
	ewma    *EWMA
	window  float64
	history []slopeSample
	seeded  bool
	slope   float64
}

// NewEWMASlopeMetric constructs an ewma_slope metric. Tau and
// WindowSeconds must be positive.
func NewEWMASlopeMetric(name string, p EWMASlopeParams) (*EWMASlopeMetric, error) {
	field, err := validatePriceField(p.PriceField)
	if err != nil {
		return nil, err
	}
	if p.WindowSeconds <= 0 {
		return nil, NewConfigurationError("window_seconds", "must be positive")
	}
	var initial float64
	if p.InitialValue != nil {
		initial = *p.InitialValue
	}
	e, err := NewEWMA(p.Tau, 1, initial)
	if err != nil {
		return nil, err
	}
	return &EWMASlopeMetric{
		name:   name,
		field:  field,
		ewma:   e,
		window: p.WindowSeconds,
		seeded: p.InitialValue != nil,
		slope:  math.NaN(),
	}, nil
}

func (m *EWMASlopeMetric) Name() string     { return m.name }
func (m *EWMASlopeMetric) Fields() []string { return []string{"ewma", "slope"} }

func (m *EWMASlopeMetric) Update(t Tick) {
	price := m.field.Value(t)
	if !m.seeded {
		m.ewma.SetValue(price)
		m.seeded = true
	}
	y := m.ewma.Update(t.Timestamp, price)

	m.history = append(m.history, slopeSample{t: t.Timestamp, ewma: y})
	cutoff := t.Timestamp - m.window
	// drop entries older than window, always keeping at least 1
	i := 0
	for i < len(m.history)-1 && m.history[i].t < cutoff {
		i++
	}
	if i > 0 {
		m.history = append([]slopeSample(nil), m.history[i:]...)
	}

	if len(m.history) < 2 {
		m.slope = math.NaN()
		return
	}
	oldest := m.history[0]
	dt := t.Timestamp - oldest.t
	if dt <= 0 {
		m.slope = math.NaN()
		return
	}
	m.slope = (y - oldest.ewma) / dt
}

func (m *EWMASlopeMetric) AppendSnapshot(out Snapshot) {
	out[m.name+".ewma"] = NumberValue(m.ewma.Value())
	out[m.name+".slope"] = NumberValue(m.slope)
}
