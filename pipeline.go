// FILE: pipeline.go
// Package ticksim – the signal generator and position loop (spec §4.9):
// the single place the metrics manager, predicate lists, entry engine, and
// position state machine are wired into one per-tick sequence.

package ticksim

import (
	"fmt"
	"log"
	"time"
)

// TickProducer is the external source of ticks (spec §6). Next returns
// ok=false with a nil error on clean feed exhaustion; a non-nil error
// aborts the run.
type TickProducer interface {
	Next() (t Tick, ok bool, err error)
}

// TradeSink receives every closed trade, in closing order (spec §6).
type TradeSink interface {
	Emit(tr TradeRecord)
}

// PipelineConfig holds the run-level parameters that are not owned by any
// single metric or engine.
type PipelineConfig struct {
	WarmupSeconds   float64
	PipSize         float64
	EntryPredicates PredicateList
	ExitPredicates  PredicateList
}

// Pipeline runs one symbol's tick-sequential backtest: metrics in, trade
// records out. It holds at most one open Position at a time.
type Pipeline struct {
	cfg     PipelineConfig
	manager *MetricsManager
	engine  EntryEngine
	sink    TradeSink

	position     Position
	haveRunStart bool
	runStart     float64

	lastBid, lastAsk float64
	lastTimestamp    float64
	haveLastTick     bool
}

// NewPipeline wires a metrics manager, an entry engine, and a trade sink
// into a runnable pipeline.
func NewPipeline(cfg PipelineConfig, manager *MetricsManager, engine EntryEngine, sink TradeSink) (*Pipeline, error) {
	if cfg.PipSize <= 0 {
		return nil, NewConfigurationError("pip_size", "must be positive")
	}
	if manager == nil {
		return nil, NewConfigurationError("manager", "must not be nil")
	}
	if engine == nil {
		return nil, NewConfigurationError("engine", "must not be nil")
	}
	if sink == nil {
		return nil, NewConfigurationError("sink", "must not be nil")
	}
	return &Pipeline{cfg: cfg, manager: manager, engine: engine, sink: sink}, nil
}

// Run drives the pipeline to exhaustion, returning only on a producer error
// or a fatal InvariantViolationError.
func (p *Pipeline) Run(producer TickProducer) error {
	for {
		t, ok, err := producer.Next()
		if err != nil {
			return fmt.Errorf("ticksim: tick producer: %w", err)
		}
		if !ok {
			return p.closeAtFeedEnd()
		}
		if err := p.step(t); err != nil {
			log.Printf("[INVARIANT] %v", err)
			return err
		}
	}
}

// step processes exactly one tick: validation, metrics, exits, entries.
func (p *Pipeline) step(t Tick) error {
	p.checkAnomalies(t)

	if !p.haveRunStart {
		p.runStart = t.Timestamp
		p.haveRunStart = true
	}
	p.lastBid, p.lastAsk, p.lastTimestamp = t.Bid, t.Ask, t.Timestamp
	p.haveLastTick = true

	start := time.Now()
	snap := p.manager.UpdateAll(t)
	observeSnapshotBuild(time.Since(start))

	if t.Timestamp-p.runStart < p.cfg.WarmupSeconds {
		return nil
	}

	if p.position.State != Flat {
		if err := p.evaluateExit(t, snap); err != nil {
			return err
		}
	}

	if p.position.State == Flat {
		return p.evaluateEntry(t, snap)
	}
	return nil
}

// evaluateExit checks TP, SL, Timeout, then ExitPredicate, in that fixed
// order (spec §4.9), and closes the position on the first hit.
func (p *Pipeline) evaluateExit(t Tick, snap Snapshot) error {
	pos := p.position
	long := pos.State == Long

	if isFinite(pos.TPPrice) {
		if (long && t.Bid >= pos.TPPrice) || (!long && t.Ask <= pos.TPPrice) {
			exitPrice := t.Bid
			if !long {
				exitPrice = t.Ask
			}
			return p.close(t, exitPrice, OutcomeTP)
		}
	}

	if isFinite(pos.SLPrice) {
		if (long && t.Bid <= pos.SLPrice) || (!long && t.Ask >= pos.SLPrice) {
			exitPrice := t.Bid
			if !long {
				exitPrice = t.Ask
			}
			return p.close(t, exitPrice, OutcomeSL)
		}
	}

	if pos.TimeoutSeconds > 0 && t.Timestamp-pos.EntryTimestamp >= pos.TimeoutSeconds {
		exitPrice := t.Bid
		if !long {
			exitPrice = t.Ask
		}
		return p.close(t, exitPrice, OutcomeTimeout)
	}

	if p.cfg.ExitPredicates.EvaluateAll(snap) {
		exitPrice := t.Bid
		if !long {
			exitPrice = t.Ask
		}
		return p.close(t, exitPrice, OutcomeExitPredicate)
	}

	return nil
}

// evaluateEntry asks the entry engine for a signal once the entry
// predicates pass, and opens a position on a fresh direction.
func (p *Pipeline) evaluateEntry(t Tick, snap Snapshot) error {
	if !p.cfg.EntryPredicates.EvaluateAll(snap) {
		return nil
	}

	sig := p.engine.Evaluate(snap, t, p.position.State.Direction())
	if sig.Direction == 0 {
		return nil
	}
	if p.position.State != Flat {
		recordInvariantViolation()
		return &InvariantViolationError{What: "entry signal while a position is already open"}
	}

	var entryPrice float64
	var state PositionState
	if sig.Direction > 0 {
		entryPrice = t.Ask
		state = Long
	} else {
		entryPrice = t.Bid
		state = Short
	}

	resolved := sig
	if !isFinite(resolved.TPPrice) && resolved.TPPips > 0 {
		resolved.TPPrice = entryPrice + float64(sig.Direction)*resolved.TPPips*p.cfg.PipSize
	}
	if !isFinite(resolved.SLPrice) && resolved.SLPips > 0 {
		resolved.SLPrice = entryPrice - float64(sig.Direction)*resolved.SLPips*p.cfg.PipSize
	}

	p.position = NewPosition(state, t, entryPrice, resolved)
	setOpenPositions(true)
	return nil
}

// close emits a TradeRecord for the open position and returns it to FLAT.
func (p *Pipeline) close(t Tick, exitPrice float64, outcome Outcome) error {
	if p.position.State == Flat {
		recordInvariantViolation()
		return &InvariantViolationError{What: "attempted to close with no position open"}
	}
	tr := CloseTrade(p.position, t.Timestamp, exitPrice, outcome, p.cfg.PipSize)
	p.sink.Emit(tr)
	recordTrade(outcome)
	p.position = Position{}
	setOpenPositions(false)
	return nil
}

// closeAtFeedEnd force-closes any open position at the last known quote
// when the producer reports clean exhaustion (spec §4.9, OutcomeEndOfFeed).
func (p *Pipeline) closeAtFeedEnd() error {
	if p.position.State == Flat || !p.haveLastTick {
		return nil
	}
	exitPrice := p.lastBid
	if p.position.State == Short {
		exitPrice = p.lastAsk
	}
	tr := CloseTrade(p.position, p.lastTimestamp, exitPrice, OutcomeEndOfFeed, p.cfg.PipSize)
	p.sink.Emit(tr)
	recordTrade(OutcomeEndOfFeed)
	p.position = Position{}
	setOpenPositions(false)
	return nil
}

// checkAnomalies counts and logs the non-fatal per-tick anomalies named in
// spec §7. It never mutates or rejects the tick; recovery happens locally
// in the metric primitives (NaN propagation, silent skip).
func (p *Pipeline) checkAnomalies(t Tick) {
	if !isFinite(t.Bid) || !isFinite(t.Ask) {
		recordAnomaly(AnomalyNonFiniteField)
		log.Printf("[ANOMALY] non-finite field at t=%.6f bid=%v ask=%v", t.Timestamp, t.Bid, t.Ask)
	} else if t.Bid > t.Ask {
		recordAnomaly(AnomalyNegativeSpread)
		log.Printf("[ANOMALY] negative spread at t=%.6f bid=%.6f ask=%.6f", t.Timestamp, t.Bid, t.Ask)
	}
	if p.haveLastTick && t.Timestamp < p.lastTimestamp {
		recordAnomaly(AnomalyOutOfOrderTime)
		log.Printf("[ANOMALY] out-of-order timestamp: %.6f after %.6f", t.Timestamp, p.lastTimestamp)
	}
}
