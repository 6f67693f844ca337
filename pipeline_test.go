package ticksim_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/corvidquant/ticksim"
)

// sliceProducer replays a fixed slice of ticks, then reports clean
// exhaustion, implementing ticksim.TickProducer.
type sliceProducer struct {
	ticks []ticksim.Tick
	pos   int
}

func (p *sliceProducer) Next() (ticksim.Tick, bool, error) {
	if p.pos >= len(p.ticks) {
		return ticksim.Tick{}, false, nil
	}
	t := p.ticks[p.pos]
	p.pos++
	return t, true, nil
}

// scriptedEngine returns a fixed sequence of signals, one per call, then
// NoSignal forever after the script is exhausted.
type scriptedEngine struct {
	signals []ticksim.EntrySignal
	calls   int
}

func (e *scriptedEngine) Evaluate(snap ticksim.Snapshot, t ticksim.Tick, currentDirection int) ticksim.EntrySignal {
	defer func() { e.calls++ }()
	if e.calls < len(e.signals) {
		return e.signals[e.calls]
	}
	return ticksim.NoSignal()
}

func longSignal(tp, sl float64) ticksim.EntrySignal {
	sig := ticksim.NoSignal()
	sig.Direction = 1
	sig.TPPrice = tp
	sig.SLPrice = sl
	return sig
}

func shortSignal(tp, sl float64) ticksim.EntrySignal {
	sig := ticksim.NoSignal()
	sig.Direction = -1
	sig.TPPrice = tp
	sig.SLPrice = sl
	return sig
}

func TestPipeline_OpensAndClosesOnTakeProfit(t *testing.T) {
	mgr := ticksim.NewMetricsManager()
	engine := &scriptedEngine{signals: []ticksim.EntrySignal{longSignal(1.1050, 1.0950)}}
	ledger := ticksim.NewLedger()

	p, err := ticksim.NewPipeline(ticksim.PipelineConfig{PipSize: 0.0001}, mgr, engine, ledger)
	require.NoError(t, err)

	producer := &sliceProducer{ticks: []ticksim.Tick{
		ticksim.NewTick(0, 1.0999, 1.1001),
		ticksim.NewTick(1, 1.1051, 1.1053),
		ticksim.NewTick(2, 1.1055, 1.1057),
	}}
	require.NoError(t, p.Run(producer))

	trades := ledger.Trades()
	require.Len(t, trades, 1)
	require.Equal(t, ticksim.OutcomeTP, trades[0].Outcome)
	require.Equal(t, 1.1001, trades[0].EntryPrice)
	require.Equal(t, 1.1051, trades[0].ExitPrice)
}

func TestPipeline_ClosesOnStopLoss(t *testing.T) {
	mgr := ticksim.NewMetricsManager()
	engine := &scriptedEngine{signals: []ticksim.EntrySignal{shortSignal(1.0950, 1.1050)}}
	ledger := ticksim.NewLedger()

	p, err := ticksim.NewPipeline(ticksim.PipelineConfig{PipSize: 0.0001}, mgr, engine, ledger)
	require.NoError(t, err)

	producer := &sliceProducer{ticks: []ticksim.Tick{
		ticksim.NewTick(0, 1.0999, 1.1001),
		ticksim.NewTick(1, 1.1049, 1.1051),
	}}
	require.NoError(t, p.Run(producer))

	trades := ledger.Trades()
	require.Len(t, trades, 1)
	require.Equal(t, ticksim.OutcomeSL, trades[0].Outcome)
	require.Equal(t, 1.0999, trades[0].EntryPrice)
	require.Equal(t, 1.1051, trades[0].ExitPrice)
}

func TestPipeline_ForceClosesOpenPositionAtFeedEnd(t *testing.T) {
	mgr := ticksim.NewMetricsManager()
	engine := &scriptedEngine{signals: []ticksim.EntrySignal{longSignal(5.0, 0.5)}} // far-off TP/SL, never hit
	ledger := ticksim.NewLedger()

	p, err := ticksim.NewPipeline(ticksim.PipelineConfig{PipSize: 0.0001}, mgr, engine, ledger)
	require.NoError(t, err)

	producer := &sliceProducer{ticks: []ticksim.Tick{
		ticksim.NewTick(0, 1.0999, 1.1001),
		ticksim.NewTick(1, 1.1000, 1.1002),
	}}
	require.NoError(t, p.Run(producer))

	trades := ledger.Trades()
	require.Len(t, trades, 1)
	require.Equal(t, ticksim.OutcomeEndOfFeed, trades[0].Outcome)
	require.Equal(t, 1.1000, trades[0].ExitPrice, "a long force-closes at the last known bid")
}

func TestPipeline_WarmupSkipsEntryEvaluation(t *testing.T) {
	mgr := ticksim.NewMetricsManager()
	engine := &scriptedEngine{signals: []ticksim.EntrySignal{longSignal(5.0, 0.5)}}
	ledger := ticksim.NewLedger()

	p, err := ticksim.NewPipeline(ticksim.PipelineConfig{PipSize: 0.0001, WarmupSeconds: 100}, mgr, engine, ledger)
	require.NoError(t, err)

	producer := &sliceProducer{ticks: []ticksim.Tick{
		ticksim.NewTick(0, 1.0999, 1.1001),
		ticksim.NewTick(1, 1.0999, 1.1001),
	}}
	require.NoError(t, p.Run(producer))

	require.Empty(t, ledger.Trades(), "no entry should fire while still inside the warmup window")
}

func TestPipeline_EntryPredicatesGateOpening(t *testing.T) {
	mgr := ticksim.NewMetricsManager()
	engine := &scriptedEngine{signals: []ticksim.EntrySignal{longSignal(5.0, 0.5)}}
	ledger := ticksim.NewLedger()

	cfg := ticksim.PipelineConfig{
		PipSize: 0.0001,
		EntryPredicates: ticksim.PredicateList{
			ticksim.NewLiteralPredicate("never.present", ticksim.OpGT, false, 0),
		},
	}
	p, err := ticksim.NewPipeline(cfg, mgr, engine, ledger)
	require.NoError(t, err)

	producer := &sliceProducer{ticks: []ticksim.Tick{ticksim.NewTick(0, 1.0999, 1.1001)}}
	require.NoError(t, p.Run(producer))

	require.Empty(t, ledger.Trades(), "a missing predicate key must gate the entry closed")
}

func TestPipeline_RejectsInvalidConfig(t *testing.T) {
	mgr := ticksim.NewMetricsManager()
	_, err := ticksim.NewPipeline(ticksim.PipelineConfig{PipSize: 0}, mgr, &scriptedEngine{}, ticksim.NewLedger())
	require.Error(t, err)
}
