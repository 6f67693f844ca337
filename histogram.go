// FILE: histogram.go
// Package ticksim – time-weighted histogram (spec §4.3).
//
// Fixed strictly-increasing edges partition the value axis into n_bins.
// Each Add(start, end, value) assigns the interval's duration to bin(value)
// and appends the event into a ring of (start, end, bin); Trim evicts
// events whose end <= now-horizon, decaying the straddling event.

package ticksim

import (
	"math"
	"sort"
)

type histEvent struct {
	start, end float64
	bin        int
}

// TimeWeightedHistogram tracks the time-weighted distribution of a scalar
// over a trailing horizon and answers percentile-rank queries in O(log
// n_bins) plus amortized O(1) maintenance.
type TimeWeightedHistogram struct {
	edges   []float64 // len = nBins+1, strictly increasing
	weights []float64 // len = nBins
	total   float64
	horizon float64

	events []histEvent
	head   int
	count  int
}

// NewTimeWeightedHistogram builds a histogram over the given strictly
// increasing edges (len(edges) == nBins+1, nBins >= 2) with the given
// trailing horizon in seconds.
func NewTimeWeightedHistogram(edges []float64, horizonSeconds float64) (*TimeWeightedHistogram, error) {
	if len(edges) < 3 {
		return nil, NewConfigurationError("bins", "must be >= 2")
	}
	for i := 1; i < len(edges); i++ {
		if edges[i] <= edges[i-1] {
			return nil, NewConfigurationError("edges", "must be strictly increasing")
		}
	}
	if horizonSeconds <= 0 {
		return nil, NewConfigurationError("percentile_horizon_seconds", "must be positive")
	}
	nBins := len(edges) - 1
	return &TimeWeightedHistogram{
		edges:   append([]float64(nil), edges...),
		weights: make([]float64, nBins),
		horizon: horizonSeconds,
		events:  make([]histEvent, 8),
	}, nil
}

// Linspace builds nBins+1 strictly increasing edges from lo to hi.
func Linspace(lo, hi float64, nBins int) []float64 {
	edges := make([]float64, nBins+1)
	step := (hi - lo) / float64(nBins)
	for i := range edges {
		edges[i] = lo + step*float64(i)
	}
	return edges
}

func (h *TimeWeightedHistogram) binOf(x float64) int {
	// edges[0..nBins], find i such that edges[i] <= x < edges[i+1], clamped.
	nBins := len(h.weights)
	i := sort.Search(len(h.edges), func(i int) bool { return h.edges[i] > x }) - 1
	if i < 0 {
		i = 0
	}
	if i > nBins-1 {
		i = nBins - 1
	}
	return i
}

func (h *TimeWeightedHistogram) at(i int) *histEvent { return &h.events[(h.head+i)%len(h.events)] }

func (h *TimeWeightedHistogram) grow() {
	newEvents := make([]histEvent, len(h.events)*2)
	for i := 0; i < h.count; i++ {
		newEvents[i] = *h.at(i)
	}
	h.events = newEvents
	h.head = 0
}

// Add assigns the duration end-start (must be positive) to bin(value), and
// records the event for later eviction.
func (h *TimeWeightedHistogram) Add(start, end, value float64) {
	dur := end - start
	if dur <= 0 || !isFinite(value) || !isFinite(start) || !isFinite(end) {
		return
	}
	bin := h.binOf(value)
	h.weights[bin] += dur
	h.total += dur

	if h.count == len(h.events) {
		h.grow()
	}
	idx := (h.head + h.count) % len(h.events)
	h.events[idx] = histEvent{start: start, end: end, bin: bin}
	h.count++
}

// Trim evicts events whose end <= now-horizon, partially decaying the
// straddling event's weight.
func (h *TimeWeightedHistogram) Trim(now float64) {
	cutoff := now - h.horizon
	for h.count > 0 {
		e := h.at(0)
		if e.end <= cutoff {
			dur := e.end - e.start
			h.weights[e.bin] -= dur
			h.total -= dur
			h.head = (h.head + 1) % len(h.events)
			h.count--
			continue
		}
		if e.start < cutoff {
			removed := cutoff - e.start
			h.weights[e.bin] -= removed
			h.total -= removed
			e.start = cutoff
		}
		break
	}
	if h.total < weightEpsilon {
		h.total = 0
	}
}

// PercentileRank returns the linearly interpolated cumulative weight share
// at x, or NaN when total weight is <= 0.
func (h *TimeWeightedHistogram) PercentileRank(x float64) float64 {
	if h.total <= 0 {
		return math.NaN()
	}
	bin := h.binOf(x)
	var below float64
	for i := 0; i < bin; i++ {
		below += h.weights[i]
	}
	loEdge, hiEdge := h.edges[bin], h.edges[bin+1]
	frac := 0.0
	if hiEdge > loEdge {
		frac = (x - loEdge) / (hiEdge - loEdge)
	}
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}
	inBin := h.weights[bin] * frac
	return (below + inBin) / h.total
}
