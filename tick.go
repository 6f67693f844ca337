// FILE: tick.go
// Package ticksim – canonical tick record and session-of-day derivation.

package ticksim

import "math"

// Tick is a single quote observation: timestamp (seconds since epoch, UTC),
// bid/ask, and the derived mid plus wall-clock hour/minute used by the
// session metric. Timestamps delivered to the pipeline must be strictly
// non-decreasing; bid and ask must be finite with bid <= ask.
type Tick struct {
	Timestamp float64
	Bid       float64
	Ask       float64
	Mid       float64
	Hour      int
	Minute    int
}

// NewTick builds a Tick from a timestamp and bid/ask, deriving Mid and the
// UTC wall-clock Hour/Minute components.
func NewTick(timestamp, bid, ask float64) Tick {
	hour, minute := hourMinuteOf(timestamp)
	return Tick{
		Timestamp: timestamp,
		Bid:       bid,
		Ask:       ask,
		Mid:       (bid + ask) / 2,
		Hour:      hour,
		Minute:    minute,
	}
}

// hourMinuteOf derives UTC hour/minute from seconds-since-epoch without
// going through time.Time, keeping the computation a pure, allocation-free
// integer operation on the hot path.
func hourMinuteOf(timestamp float64) (hour, minute int) {
	secs := int64(math.Floor(timestamp))
	secOfDay := secs % 86400
	if secOfDay < 0 {
		secOfDay += 86400
	}
	hour = int(secOfDay / 3600)
	minute = int((secOfDay % 3600) / 60)
	return hour, minute
}

// Valid reports whether the tick's bid/ask satisfy the data-model
// invariant (finite, bid <= ask). It does not attempt to repair bad
// ticks.
func (t Tick) Valid() bool {
	return isFinite(t.Bid) && isFinite(t.Ask) && t.Bid <= t.Ask
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
