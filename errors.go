// FILE: errors.go
// Package ticksim – the core error taxonomy.
//
// ConfigurationError fails fast at construction time. InvariantViolationError
// aborts a single symbol's tick loop; the embedding coordinator is expected
// to catch it and continue with other symbols. DataAnomalyError is never
// returned up the stack by the core itself — anomalies are recovered
// locally (NaN propagation, silent skip) and only surfaced through the
// telemetry counters in telemetry.go — but the type exists so producers and
// tests can report anomalies in the same vocabulary.

package ticksim

import "fmt"

// ConfigurationError reports an invalid construction-time parameter.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("ticksim: invalid configuration for %s: %s", e.Field, e.Reason)
}

// NewConfigurationError is a small constructor to keep call sites terse.
func NewConfigurationError(field, reason string) *ConfigurationError {
	return &ConfigurationError{Field: field, Reason: reason}
}

// InvariantViolationError reports a fatal core invariant breach (e.g. an
// attempt to open a position while one is already open). It aborts the
// symbol's loop.
type InvariantViolationError struct {
	What string
}

func (e *InvariantViolationError) Error() string {
	return fmt.Sprintf("ticksim: invariant violated: %s", e.What)
}

// DataAnomalyKind enumerates the per-tick, non-fatal anomalies the spec
// calls out in §7.
type DataAnomalyKind string

const (
	AnomalyNonFiniteField   DataAnomalyKind = "non_finite_field"
	AnomalyOutOfOrderTime   DataAnomalyKind = "out_of_order_timestamp"
	AnomalyNegativeSpread   DataAnomalyKind = "negative_spread"
)

// DataAnomalyError describes a single anomalous tick. It is informational:
// the pipeline logs and counts it, then proceeds (the validating producer
// upstream is assumed to filter genuinely unusable ticks).
type DataAnomalyError struct {
	Kind DataAnomalyKind
	Tick Tick
}

func (e *DataAnomalyError) Error() string {
	return fmt.Sprintf("ticksim: data anomaly %s at t=%.6f", e.Kind, e.Tick.Timestamp)
}
