// FILE: metric.go
// Package ticksim – the Metric capability and snapshot value type.

package ticksim

// SnapshotValue is either a numeric reading or the categorical session
// label; exactly one of the two is meaningful, selected by IsString.
type SnapshotValue struct {
	Number   float64
	String   string
	IsString bool
}

// NumberValue wraps a numeric reading.
func NumberValue(v float64) SnapshotValue { return SnapshotValue{Number: v} }

// StringValue wraps a categorical reading.
func StringValue(v string) SnapshotValue { return SnapshotValue{String: v, IsString: true} }

// Snapshot is the flat fully-qualified-key -> value mapping rebuilt in
// place every tick by the MetricsManager. Callers must treat it as valid
// only between the current update and the next.
type Snapshot map[string]SnapshotValue

// Float looks up a numeric key, returning (value, true) when present,
// numeric and finite; (value, false) when present but non-finite; and
// (0, false) when the key is missing or categorical — a miss is never
// distinguished from a present-but-non-finite value by callers, matching
// §4.8's rule that a miss or non-finite value evaluates to false.
func (s Snapshot) Float(key string) (float64, bool) {
	v, ok := s[key]
	if !ok || v.IsString {
		return 0, false
	}
	if !isFinite(v.Number) {
		return v.Number, false
	}
	return v.Number, true
}

// String looks up a categorical key.
func (s Snapshot) String(key string) (string, bool) {
	v, ok := s[key]
	if !ok || !v.IsString {
		return "", false
	}
	return v.String, true
}

// Metric is a named online estimator: Update feeds it a tick, Fields
// returns its emitted field names (stable for the life of the metric, used
// once by the manager to build the snapshot key list), and AppendSnapshot fills
// the given map with "{name}.{field}" -> value entries.
type Metric interface {
	Name() string
	Update(t Tick)
	Fields() []string
	AppendSnapshot(out Snapshot)
}
