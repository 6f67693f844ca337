// FILE: ewma.go
// Package ticksim – continuous-time exponential smoother (spec §4.2).

package ticksim

import "math"

// EWMA is a continuous-time exponential moving average. On each update
// dt = max(t-t_prev, 1e-9), decay = exp(-dt/tau), y <- decay*y + (1-decay)*value,
// where value is x for Power==1 or x*x for Power==2.
type EWMA struct {
	tau   float64
	power int

	y        float64
	tPrev    float64
	seeded   bool
}

// NewEWMA builds an EWMA with time constant tau (seconds) and the given
// power (1 for a plain mean, 2 to smooth squared values for a variance
// estimator). tau must be positive and power must be 1 or 2.
func NewEWMA(tau float64, power int, initial float64) (*EWMA, error) {
	if tau <= 0 {
		return nil, NewConfigurationError("tau", "must be positive")
	}
	if power != 1 && power != 2 {
		return nil, NewConfigurationError("power", "must be 1 or 2")
	}
	return &EWMA{tau: tau, power: power, y: initial}, nil
}

// Update feeds a new (t, x) observation and returns the updated estimate.
// The first call after construction or Reset seeds t_prev and returns the
// current (possibly zero-initialized) y without advancing it.
func (e *EWMA) Update(t, x float64) float64 {
	value := x
	if e.power == 2 {
		value = x * x
	}
	if !e.seeded {
		e.tPrev = t
		e.seeded = true
		return e.y
	}
	dt := t - e.tPrev
	if dt < 1e-9 {
		dt = 1e-9
	}
	decay := math.Exp(-dt / e.tau)
	e.y = decay*e.y + (1-decay)*value
	e.tPrev = t
	return e.y
}

// Value returns the current estimate without updating it.
func (e *EWMA) Value() float64 { return e.y }

// SetValue seeds the estimate directly (used by metrics whose first tick
// seeds y to the observed price rather than zero).
func (e *EWMA) SetValue(v float64) { e.y = v }

// Reset clears the seeding state so the next Update reseeds t_prev.
func (e *EWMA) Reset() {
	e.seeded = false
	e.y = 0
}
