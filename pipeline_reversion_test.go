package ticksim_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/corvidquant/ticksim"
)

// TestPipeline_ThresholdReversionRoundTripToTakeProfit reproduces spec §8
// scenario S4 end to end: a real ThresholdReversionMetric feeding a real
// ReversionEngine through a real Pipeline, opening on the metric's spike
// signal and closing on a take-profit hit for exactly +10 pips.
func TestPipeline_ThresholdReversionRoundTripToTakeProfit(t *testing.T) {
	metric, err := ticksim.NewThresholdReversionMetric("rev", ticksim.ThresholdReversionParams{
		LookbackSeconds:   120,
		PipSize:           0.0001,
		ThresholdPips:     50,
		MinRecencySeconds: 0,
		TPPips:            10,
		SLPips:            10,
	})
	require.NoError(t, err)

	mgr := ticksim.NewMetricsManager(metric)
	engine, err := ticksim.NewReversionEngine(ticksim.ReversionEngineParams{MetricName: "rev"})
	require.NoError(t, err)
	ledger := ticksim.NewLedger()

	p, err := ticksim.NewPipeline(ticksim.PipelineConfig{PipSize: 0.0001}, mgr, engine, ledger)
	require.NoError(t, err)

	ticks := make([]ticksim.Tick, 0, 8)
	for i := 0; i <= 5; i++ {
		ticks = append(ticks, ticksim.NewTick(float64(i), 1.0999, 1.1001)) // mid 1.1000
	}
	// a same-tick spike trips the 50 pip threshold and opens short at the
	// touched bid/ask (zero spread keeps the pip math exact).
	ticks = append(ticks, ticksim.NewTick(6, 1.1060, 1.1060))
	// the price reverts back onto the metric's tp_price, hitting TP.
	ticks = append(ticks, ticksim.NewTick(7, 1.1050, 1.1050))

	producer := &sliceProducer{ticks: ticks}
	require.NoError(t, p.Run(producer))

	trades := ledger.Trades()
	require.Len(t, trades, 1)

	tr := trades[0]
	require.Equal(t, ticksim.OutcomeTP, tr.Outcome)
	require.Equal(t, -1, tr.Direction)
	require.InDelta(t, 1.1060, tr.EntryPrice, 1e-9)
	require.InDelta(t, 1.1050, tr.ExitPrice, 1e-9)
	require.InDelta(t, 10.0, tr.RealizedPnLPips, 1e-6)
}
