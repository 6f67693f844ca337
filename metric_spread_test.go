package ticksim_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/corvidquant/ticksim"
)

func TestSpreadMetric_ReportsSpreadAndPips(t *testing.T) {
	m, err := ticksim.NewSpreadMetric("s", ticksim.SpreadParams{PipSize: 0.0001, WindowSeconds: 60})
	require.NoError(t, err)

	m.Update(ticksim.NewTick(0, 1.0999, 1.1003)) // spread 0.0004 = 4 pips

	out := ticksim.Snapshot{}
	m.AppendSnapshot(out)
	spread, ok := out.Float("s.spread")
	require.True(t, ok)
	require.InDelta(t, 0.0004, spread, 1e-9)

	pips, ok := out.Float("s.spread_pips")
	require.True(t, ok)
	require.InDelta(t, 4.0, pips, 1e-9)

	pr, ok := out.Float("s.spread_percentile")
	require.True(t, ok)
	require.InDelta(t, 1.0, pr, 1e-9, "the only observation so far ranks at the top")
}

func TestSpreadMetric_PercentileRanksWithinTrailingWindow(t *testing.T) {
	m, err := ticksim.NewSpreadMetric("s", ticksim.SpreadParams{PipSize: 0.0001, WindowSeconds: 60})
	require.NoError(t, err)

	m.Update(ticksim.NewTick(0, 1.0999, 1.1003)) // 4 pips
	m.Update(ticksim.NewTick(1, 1.0999, 1.1001)) // 2 pips
	m.Update(ticksim.NewTick(2, 1.0999, 1.1005)) // 6 pips

	out := ticksim.Snapshot{}
	m.AppendSnapshot(out)
	pr, ok := out.Float("s.spread_percentile")
	require.True(t, ok)
	require.InDelta(t, 1.0, pr, 1e-9, "the widest spread seen so far ranks at the top of the window")
}

func TestSpreadMetric_NegativeCrossedQuoteClampsToZero(t *testing.T) {
	m, err := ticksim.NewSpreadMetric("s", ticksim.SpreadParams{PipSize: 0.0001, WindowSeconds: 60})
	require.NoError(t, err)

	m.Update(ticksim.NewTick(0, 1.1005, 1.0999)) // crossed book: ask < bid

	out := ticksim.Snapshot{}
	m.AppendSnapshot(out)
	spread, ok := out.Float("s.spread")
	require.True(t, ok)
	require.Equal(t, 0.0, spread)
}

func TestSpreadMetric_RejectsNonPositivePipSize(t *testing.T) {
	_, err := ticksim.NewSpreadMetric("s", ticksim.SpreadParams{PipSize: 0, WindowSeconds: 60})
	require.Error(t, err)
}

func TestSpreadMetric_RejectsNonPositiveWindow(t *testing.T) {
	_, err := ticksim.NewSpreadMetric("s", ticksim.SpreadParams{PipSize: 0.0001, WindowSeconds: 0})
	require.Error(t, err)
}
