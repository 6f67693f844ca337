// FILE: manager.go
// Package ticksim – the metrics manager (spec §4, "Metrics manager" row).
//
// Composes a declared list of metrics into a single flat Snapshot per
// tick. Per design note §9, the hot update path avoids per-tick
// allocation: the snapshot map is rebuilt in place and the key list is
// only derived once, at construction, from each metric's stable Fields().

package ticksim

// MetricsManager owns an ordered collection of metrics and rebuilds their
// combined Snapshot once per tick, in declaration order.
type MetricsManager struct {
	metrics  []Metric
	snapshot Snapshot
}

// NewMetricsManager builds a manager over the given metrics, in the order
// they must be updated (declaration order, per spec §5's fixed
// within-tick ordering).
func NewMetricsManager(metrics ...Metric) *MetricsManager {
	snap := make(Snapshot)
	for _, m := range metrics {
		for _, f := range m.Fields() {
			snap[m.Name()+"."+f] = SnapshotValue{}
		}
	}
	return &MetricsManager{metrics: metrics, snapshot: snap}
}

// UpdateAll feeds the tick to every metric, in declaration order, then
// rebuilds the snapshot in place and returns it. The returned Snapshot is
// a borrowed view: valid only until the next UpdateAll call.
func (mgr *MetricsManager) UpdateAll(t Tick) Snapshot {
	for _, m := range mgr.metrics {
		m.Update(t)
	}
	for _, m := range mgr.metrics {
		m.AppendSnapshot(mgr.snapshot)
	}
	return mgr.snapshot
}

// Metrics exposes the underlying metric list (read-only use; e.g. tests
// inspecting individual metric state).
func (mgr *MetricsManager) Metrics() []Metric { return mgr.metrics }
