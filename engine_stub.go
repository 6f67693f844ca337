// FILE: engine_stub.go
// Package ticksim – the stub entry engine (spec §2 budget table lists
// "Threshold-reversion, EWMA-crossover, stub"; see SPEC_FULL.md §12).

package ticksim

// StubEngine never signals. It is useful as a registry default and in
// tests that only exercise predicate gating.
type StubEngine struct{}

// NewStubEngine constructs a no-op entry engine.
func NewStubEngine() *StubEngine { return &StubEngine{} }

func (e *StubEngine) Evaluate(snap Snapshot, t Tick, currentDirection int) EntrySignal {
	return NoSignal()
}
