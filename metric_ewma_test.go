package ticksim_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/corvidquant/ticksim"
)

// TestEWMAMetric_FirstTickSeedsToPriceField documents spec §8 scenario S1:
// with no InitialValue, the first tick seeds the ewma to the observed
// price of the configured field rather than decaying from zero.
func TestEWMAMetric_FirstTickSeedsToPriceField(t *testing.T) {
	m, err := ticksim.NewEWMAMetric("e", ticksim.EWMAParams{Tau: 10, PriceField: ticksim.PriceBid})
	require.NoError(t, err)

	m.Update(ticksim.NewTick(0, 1.1000, 1.1002))
	out := ticksim.Snapshot{}
	m.AppendSnapshot(out)

	v, ok := out.Float("e.ewma")
	require.True(t, ok)
	require.InDelta(t, 1.1000, v, 1e-9)
}

func TestEWMAMetric_SecondTickDecaysTowardNewPrice(t *testing.T) {
	m, err := ticksim.NewEWMAMetric("e", ticksim.EWMAParams{Tau: 10, PriceField: ticksim.PriceMid})
	require.NoError(t, err)

	m.Update(ticksim.NewTick(0, 1.0999, 1.1001)) // mid 1.1000
	m.Update(ticksim.NewTick(1, 1.1099, 1.1101)) // mid 1.1100

	out := ticksim.Snapshot{}
	m.AppendSnapshot(out)
	v, ok := out.Float("e.ewma")
	require.True(t, ok)
	require.Greater(t, v, 1.1000)
	require.Less(t, v, 1.1100)
}

func TestEWMAMetric_InitialValueSkipsFirstTickSeeding(t *testing.T) {
	initial := 1.2000
	m, err := ticksim.NewEWMAMetric("e", ticksim.EWMAParams{Tau: 10, PriceField: ticksim.PriceMid, InitialValue: &initial})
	require.NoError(t, err)

	m.Update(ticksim.NewTick(0, 1.0999, 1.1001)) // mid 1.1000, far from the seeded initial

	out := ticksim.Snapshot{}
	m.AppendSnapshot(out)
	v, ok := out.Float("e.ewma")
	require.True(t, ok)
	require.InDelta(t, 1.2000, v, 1e-9, "an explicit initial value is not overwritten by the first observed price")
}

func TestEWMAMetric_RejectsUnknownPriceField(t *testing.T) {
	_, err := ticksim.NewEWMAMetric("e", ticksim.EWMAParams{Tau: 10, PriceField: "bogus"})
	require.Error(t, err)
}

func TestEWMASlopeMetric_NaNUntilTwoSamples(t *testing.T) {
	m, err := ticksim.NewEWMASlopeMetric("e", ticksim.EWMASlopeParams{Tau: 10, WindowSeconds: 60, PriceField: ticksim.PriceMid})
	require.NoError(t, err)

	m.Update(ticksim.NewTick(0, 1.0999, 1.1001))
	out := ticksim.Snapshot{}
	m.AppendSnapshot(out)
	slope, ok := out.Float("e.slope")
	require.False(t, ok)
	require.True(t, math.IsNaN(slope))
}

func TestEWMASlopeMetric_PositiveSlopeOnRisingSeries(t *testing.T) {
	m, err := ticksim.NewEWMASlopeMetric("e", ticksim.EWMASlopeParams{Tau: 10, WindowSeconds: 60, PriceField: ticksim.PriceMid})
	require.NoError(t, err)

	for i := 0; i <= 5; i++ {
		mid := 1.1000 + 0.0010*float64(i)
		m.Update(ticksim.NewTick(float64(i), mid-0.0001, mid+0.0001))
	}

	out := ticksim.Snapshot{}
	m.AppendSnapshot(out)
	slope, ok := out.Float("e.slope")
	require.True(t, ok)
	require.Greater(t, slope, 0.0)
}

func TestEWMASlopeMetric_RejectsNonPositiveWindow(t *testing.T) {
	_, err := ticksim.NewEWMASlopeMetric("e", ticksim.EWMASlopeParams{Tau: 10, WindowSeconds: 0})
	require.Error(t, err)
}
