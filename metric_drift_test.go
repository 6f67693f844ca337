package ticksim_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/corvidquant/ticksim"
)

func TestDriftSignMetric_FirstTickIsNaN(t *testing.T) {
	m, err := ticksim.NewDriftSignMetric("d", ticksim.DriftSignParams{LookbackSeconds: 100})
	require.NoError(t, err)

	m.Update(ticksim.NewTick(0, 1.0999, 1.1001))
	out := ticksim.Snapshot{}
	m.AppendSnapshot(out)

	drift, ok := out.Float("d.drift")
	require.False(t, ok)
	require.True(t, math.IsNaN(drift))

	sign, ok := out.Float("d.drift_sign")
	require.True(t, ok)
	require.Equal(t, 0.0, sign)
}

func TestDriftSignMetric_PositiveSignOnUpwardJump(t *testing.T) {
	m, err := ticksim.NewDriftSignMetric("d", ticksim.DriftSignParams{LookbackSeconds: 100})
	require.NoError(t, err)

	for i := 0; i <= 9; i++ {
		m.Update(ticksim.NewTick(float64(i), 1.0999, 1.1001))
	}
	m.Update(ticksim.NewTick(10, 1.1049, 1.1051))

	out := ticksim.Snapshot{}
	m.AppendSnapshot(out)

	drift, ok := out.Float("d.drift")
	require.True(t, ok)
	require.Greater(t, drift, 0.0)

	sign, ok := out.Float("d.drift_sign")
	require.True(t, ok)
	require.Equal(t, 1.0, sign)
}

func TestDriftSignMetric_RejectsNonPositiveLookback(t *testing.T) {
	_, err := ticksim.NewDriftSignMetric("d", ticksim.DriftSignParams{LookbackSeconds: 0})
	require.Error(t, err)
}
