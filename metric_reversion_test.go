package ticksim_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/corvidquant/ticksim"
)

func newReversionTick(ts, mid float64) ticksim.Tick {
	return ticksim.NewTick(ts, mid-0.0001, mid+0.0001)
}

func TestThresholdReversionMetric_OpensOppositeDirectionOnSpike(t *testing.T) {
	m, err := ticksim.NewThresholdReversionMetric("rev", ticksim.ThresholdReversionParams{
		LookbackSeconds:   120,
		PipSize:           0.0001,
		ThresholdPips:     50,
		MinRecencySeconds: 0,
		TPPips:            20,
		SLPips:            20,
	})
	require.NoError(t, err)

	for i := 0; i <= 5; i++ {
		m.Update(newReversionTick(float64(i), 1.1000))
	}
	m.Update(newReversionTick(6, 1.1060))

	out := ticksim.Snapshot{}
	m.AppendSnapshot(out)

	direction, ok := out.Float("rev.direction")
	require.True(t, ok)
	require.Equal(t, -1.0, direction, "a spike up should open a short, betting on reversion")

	ref, ok := out.Float("rev.reference_price")
	require.True(t, ok)
	require.InDelta(t, 1.1000, ref, 1e-9)

	tp, ok := out.Float("rev.tp_price")
	require.True(t, ok)
	require.InDelta(t, 1.1040, tp, 1e-9)

	sl, ok := out.Float("rev.sl_price")
	require.True(t, ok)
	require.InDelta(t, 1.1080, sl, 1e-9)
}

func TestThresholdReversionMetric_FlatUntilThresholdCleared(t *testing.T) {
	m, err := ticksim.NewThresholdReversionMetric("rev", ticksim.ThresholdReversionParams{
		LookbackSeconds:   120,
		PipSize:           0.0001,
		ThresholdPips:     50,
		MinRecencySeconds: 0,
		TPPips:            20,
		SLPips:            20,
	})
	require.NoError(t, err)

	for i := 0; i <= 10; i++ {
		m.Update(newReversionTick(float64(i), 1.1000))
	}
	out := ticksim.Snapshot{}
	m.AppendSnapshot(out)
	direction, ok := out.Float("rev.direction")
	require.True(t, ok)
	require.Equal(t, 0.0, direction)
}

func TestThresholdReversionMetric_RejectsBadParams(t *testing.T) {
	_, err := ticksim.NewThresholdReversionMetric("rev", ticksim.ThresholdReversionParams{
		LookbackSeconds: 0, PipSize: 0.0001, ThresholdPips: 1, TPPips: 1, SLPips: 1,
	})
	require.Error(t, err)
}
