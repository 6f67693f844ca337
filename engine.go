// FILE: engine.go
// Package ticksim – the entry engine capability (spec §4, "Entry engines"
// row; glossary "Entry engine").

package ticksim

import "math"

// EntrySignal is what an entry engine returns for a given tick: whether to
// open, in which direction, and the exit parameters to seed the position
// with. A zero Direction means "no signal". TPPrice/SLPrice are absolute
// prices and take priority when finite; otherwise the pipeline derives
// them from TPPips/SLPips off the entry price (spec §4.9 step 4). A zero
// pip distance means "unset" (no automatic exit on that side), per §4.7.
type EntrySignal struct {
	Direction      int // +1 long, -1 short, 0 none
	TPPrice        float64
	SLPrice        float64
	TPPips         float64
	SLPips         float64
	TimeoutSeconds float64 // 0 means unset
	Reason         string
	Metadata       map[string]string
}

// NoSignal is the canonical "nothing to do" EntrySignal.
func NoSignal() EntrySignal {
	return EntrySignal{TPPrice: math.NaN(), SLPrice: math.NaN()}
}

// EntryEngine evaluates a snapshot (and the raw tick, for price-level
// decisions) and optionally requests a position open. currentDirection is
// the pipeline's current position (-1, 0, +1); an engine must not re-signal
// the direction already held.
type EntryEngine interface {
	Evaluate(snap Snapshot, t Tick, currentDirection int) EntrySignal
}
