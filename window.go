// FILE: window.go
// Package ticksim – time-weighted rolling window (spec §4.1).
//
// Maintains the samples within [now-lookback, now], each carrying a dt
// weight (time served in the window). Backing storage is a circular
// buffer doubled on overflow, grow-only per the source's never-shrink
// ring-buffer convention; three running sums (weight, weighted x, weighted
// x^2) are kept so stats() stays O(1).

package ticksim

import "math"

const weightEpsilon = 1e-12

// windowSample is one (ts, dt, x) entry carried in the ring.
type windowSample struct {
	ts float64
	dt float64
	x  float64
}

// TimeWeightedRollingWindow is an O(1)-append, amortized-O(1)-trim
// estimator of weighted mean/std over a trailing time horizon.
type TimeWeightedRollingWindow struct {
	lookback float64

	buf   []windowSample
	head  int // index of oldest sample
	count int // number of live samples

	sumW   float64
	sumWX  float64
	sumWX2 float64
}

// NewTimeWeightedRollingWindow builds a window with the given lookback
// horizon in seconds. lookback must be positive.
func NewTimeWeightedRollingWindow(lookbackSeconds float64) (*TimeWeightedRollingWindow, error) {
	if lookbackSeconds <= 0 {
		return nil, NewConfigurationError("lookback_seconds", "must be positive")
	}
	return &TimeWeightedRollingWindow{
		lookback: lookbackSeconds,
		buf:      make([]windowSample, 8),
	}, nil
}

func (w *TimeWeightedRollingWindow) at(i int) *windowSample {
	return &w.buf[(w.head+i)%len(w.buf)]
}

func (w *TimeWeightedRollingWindow) grow() {
	newBuf := make([]windowSample, len(w.buf)*2)
	for i := 0; i < w.count; i++ {
		newBuf[i] = *w.at(i)
	}
	w.buf = newBuf
	w.head = 0
}

// Append adds a new observation x at time t, with weight dt equal to the
// time elapsed since the previous observation (the caller computes dt; the
// window only accumulates it). Non-finite inputs are skipped silently per
// §7 DataAnomaly handling.
func (w *TimeWeightedRollingWindow) Append(t, dt, x float64) {
	if !isFinite(t) || !isFinite(dt) || !isFinite(x) || dt < 0 {
		return
	}
	if w.count == len(w.buf) {
		w.grow()
	}
	idx := (w.head + w.count) % len(w.buf)
	w.buf[idx] = windowSample{ts: t, dt: dt, x: x}
	w.count++

	w.sumW += dt
	w.sumWX += dt * x
	w.sumWX2 += dt * x * x

	w.trim(t)
}

// trim evicts samples whose end time (ts+dt) is <= cutoff-epsilon, and
// partially trims the straddling sample by advancing its ts to cutoff and
// shortening its dt.
func (w *TimeWeightedRollingWindow) trim(now float64) {
	cutoff := now - w.lookback
	const eps = 1e-9
	for w.count > 0 {
		s := w.at(0)
		end := s.ts + s.dt
		if end <= cutoff-eps {
			w.sumW -= s.dt
			w.sumWX -= s.dt * s.x
			w.sumWX2 -= s.dt * s.x * s.x
			w.head = (w.head + 1) % len(w.buf)
			w.count--
			continue
		}
		if s.ts < cutoff {
			// partially trim the straddling sample
			removed := cutoff - s.ts
			if removed > s.dt {
				removed = s.dt
			}
			w.sumW -= removed * 1
			w.sumWX -= removed * s.x
			w.sumWX2 -= removed * s.x * s.x
			s.dt -= removed
			s.ts = cutoff
		}
		break
	}
	if w.sumW < weightEpsilon {
		w.sumW = 0
	}
}

// Stats returns the weighted mean and population standard deviation over
// the current window. If the total weight is <= 1e-12, both values are NaN.
func (w *TimeWeightedRollingWindow) Stats() (mean, std float64) {
	if w.sumW <= weightEpsilon {
		return math.NaN(), math.NaN()
	}
	mean = w.sumWX / w.sumW
	variance := w.sumWX2/w.sumW - mean*mean
	if variance < 0 {
		variance = 0
	}
	std = math.Sqrt(variance)
	return mean, std
}

// TotalWeight exposes the current summed dt, mostly for tests.
func (w *TimeWeightedRollingWindow) TotalWeight() float64 { return w.sumW }
