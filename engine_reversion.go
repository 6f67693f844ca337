// FILE: engine_reversion.go
// Package ticksim – the entry engine side of threshold-reversion (spec §4.6).
//
// Consumes a ThresholdReversionMetric's snapshot and requests an OPEN
// whenever the metric's direction is nonzero and differs from the
// position the pipeline already holds.

package ticksim

import "fmt"

// ReversionEngineParams configures a threshold-reversion entry engine.
type ReversionEngineParams struct {
	MetricName string
}

// ReversionEngine is the entry-engine half of the threshold-reversion
// strategy; the online state lives in ThresholdReversionMetric.
type ReversionEngine struct {
	metricName string
}

// NewReversionEngine constructs a threshold-reversion entry engine bound
// to the named ThresholdReversionMetric.
func NewReversionEngine(p ReversionEngineParams) (*ReversionEngine, error) {
	if p.MetricName == "" {
		return nil, NewConfigurationError("metric_name", "must not be empty")
	}
	return &ReversionEngine{metricName: p.MetricName}, nil
}

func (e *ReversionEngine) Evaluate(snap Snapshot, t Tick, currentDirection int) EntrySignal {
	direction, ok := snap.Float(e.metricName + ".direction")
	if !ok || direction == 0 {
		return NoSignal()
	}
	d := int(direction)
	if d == currentDirection {
		return NoSignal()
	}

	sig := NoSignal()
	sig.Direction = d
	if tp, ok := snap.Float(e.metricName + ".tp_price"); ok {
		sig.TPPrice = tp
	}
	if sl, ok := snap.Float(e.metricName + ".sl_price"); ok {
		sig.SLPrice = sl
	}
	refPrice, _ := snap.Float(e.metricName + ".reference_price")
	refAge, _ := snap.Float(e.metricName + ".reference_age_seconds")
	sig.Reason = fmt.Sprintf("threshold_reversion: reference_price=%.6f reference_age_seconds=%.3f", refPrice, refAge)
	return sig
}
