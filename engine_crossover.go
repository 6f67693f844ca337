// FILE: engine_crossover.go
// Package ticksim – the EWMA-crossover entry engine (spec §4.7).

package ticksim

import "fmt"

// CrossoverEngineParams configures an EWMA-crossover entry engine.
type CrossoverEngineParams struct {
	FastKey             string
	SlowKey             string
	LongOnCross         bool
	ShortOnCross        bool
	TPPips              float64
	SLPips              float64
	TradeTimeoutSeconds float64
}

// CrossoverEngine fires on a sign change of fast-slow: a -to-+ cross fires
// LONG iff LongOnCross, a +to-- cross fires SHORT iff ShortOnCross. The
// first finite observation only seeds state.
type CrossoverEngine struct {
	p CrossoverEngineParams

	prevDiff    float64
	hasPrevDiff bool
}

// NewCrossoverEngine constructs an EWMA-crossover entry engine.
// TPPips/SLPips of 0 mean "unset" (no automatic exit on that side).
func NewCrossoverEngine(p CrossoverEngineParams) (*CrossoverEngine, error) {
	if p.FastKey == "" || p.SlowKey == "" {
		return nil, NewConfigurationError("fast_metric/slow_metric", "must not be empty")
	}
	return &CrossoverEngine{p: p}, nil
}

func (e *CrossoverEngine) Evaluate(snap Snapshot, t Tick, currentDirection int) EntrySignal {
	fast, fastOK := snap.Float(e.p.FastKey)
	slow, slowOK := snap.Float(e.p.SlowKey)
	if !fastOK || !slowOK {
		return NoSignal()
	}
	diff := fast - slow

	if !e.hasPrevDiff {
		e.prevDiff = diff
		e.hasPrevDiff = true
		return NoSignal()
	}

	prev := e.prevDiff
	e.prevDiff = diff

	var direction int
	switch {
	case prev < 0 && diff > 0:
		if e.p.LongOnCross {
			direction = 1
		}
	case prev > 0 && diff < 0:
		if e.p.ShortOnCross {
			direction = -1
		}
	}

	if direction == 0 || direction == currentDirection {
		return NoSignal()
	}

	sig := NoSignal()
	sig.Direction = direction
	sig.TPPips = e.p.TPPips
	sig.SLPips = e.p.SLPips
	sig.TimeoutSeconds = e.p.TradeTimeoutSeconds
	sig.Reason = fmt.Sprintf("ewma_crossover: fast=%.6f slow=%.6f diff=%.6f prev_diff=%.6f", fast, slow, diff, prev)
	return sig
}
