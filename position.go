// FILE: position.go
// Package ticksim – the position state machine and trade record (spec §3).

package ticksim

import "github.com/google/uuid"

// PositionState is one of FLAT, LONG, SHORT.
type PositionState int

const (
	Flat PositionState = iota
	Long
	Short
)

func (s PositionState) String() string {
	switch s {
	case Long:
		return "LONG"
	case Short:
		return "SHORT"
	default:
		return "FLAT"
	}
}

// Direction returns +1 for Long, -1 for Short, 0 for Flat.
func (s PositionState) Direction() int {
	switch s {
	case Long:
		return 1
	case Short:
		return -1
	default:
		return 0
	}
}

// Outcome is the terminal label attached to a closed trade.
type Outcome string

const (
	OutcomeTP             Outcome = "TP"
	OutcomeSL             Outcome = "SL"
	OutcomeTimeout        Outcome = "TIMEOUT"
	OutcomeExitPredicate  Outcome = "EXIT_PREDICATE"
	OutcomeReversal       Outcome = "REVERSAL"
	OutcomeEndOfFeed      Outcome = "END_OF_FEED"
)

// Position holds the open-position attributes named in spec §3. TPPrice,
// SLPrice, and TimeoutSeconds are optional; a NaN/zero respectively means
// "unset".
type Position struct {
	EntryID         string
	State           PositionState
	EntryTimestamp  float64
	EntryPrice      float64
	TPPrice         float64
	SLPrice         float64
	TimeoutSeconds  float64
	EntryMetadata   map[string]string
	EntryReason     string
}

// NewPosition opens a position with a freshly minted entry ID, mirroring
// the teacher's uuid.New().String() order-ID convention.
func NewPosition(state PositionState, t Tick, entryPrice float64, sig EntrySignal) Position {
	return Position{
		EntryID:        uuid.New().String(),
		State:          state,
		EntryTimestamp: t.Timestamp,
		EntryPrice:     entryPrice,
		TPPrice:        sig.TPPrice,
		SLPrice:        sig.SLPrice,
		TimeoutSeconds: sig.TimeoutSeconds,
		EntryMetadata:  sig.Metadata,
		EntryReason:    sig.Reason,
	}
}

// TradeRecord is emitted on every transition out of LONG/SHORT.
type TradeRecord struct {
	ID              string
	EntryTimestamp  float64
	ExitTimestamp   float64
	EntryPrice      float64
	ExitPrice       float64
	Direction       int // +1 long, -1 short
	RealizedPnLPips float64
	HoldingSeconds  float64
	Outcome         Outcome
	EntryMetadata   map[string]string
	Reason          string
}

// CloseTrade builds the TradeRecord for a position closing at exitPrice at
// time t with the given outcome, converting PnL to pips via pipSize.
func CloseTrade(pos Position, exitTimestamp, exitPrice float64, outcome Outcome, pipSize float64) TradeRecord {
	direction := pos.State.Direction()
	pnlPips := (exitPrice - pos.EntryPrice) * float64(direction) / pipSize
	return TradeRecord{
		ID:              pos.EntryID,
		EntryTimestamp:  pos.EntryTimestamp,
		ExitTimestamp:   exitTimestamp,
		EntryPrice:      pos.EntryPrice,
		ExitPrice:       exitPrice,
		Direction:       direction,
		RealizedPnLPips: pnlPips,
		HoldingSeconds:  exitTimestamp - pos.EntryTimestamp,
		Outcome:         outcome,
		EntryMetadata:   pos.EntryMetadata,
		Reason:          pos.EntryReason,
	}
}
