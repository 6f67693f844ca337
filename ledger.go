// FILE: ledger.go
// Package ticksim – trade ledger and summary (SPEC_FULL.md §12), grounded
// on the teacher's win/loss tally in backtest.go (runBacktest's win/loss
// counters keyed off each exit's realized P/L).

package ticksim

// Ledger collects closed trades and implements TradeSink, the role the
// teacher's trader fills inline inside its backtest loop.
type Ledger struct {
	trades []TradeRecord
}

// NewLedger constructs an empty ledger.
func NewLedger() *Ledger { return &Ledger{} }

// Emit implements TradeSink.
func (l *Ledger) Emit(tr TradeRecord) {
	l.trades = append(l.trades, tr)
}

// Trades returns every recorded trade, in closing order.
func (l *Ledger) Trades() []TradeRecord { return l.trades }

// Summary aggregates win/loss counts, total pips, and outcome breakdown
// across every trade recorded so far.
type Summary struct {
	Count     int
	Wins      int
	Losses    int
	Scratches int // zero realized PnL
	TotalPips float64
	ByOutcome map[Outcome]int
}

// Summary computes win/loss/pips aggregates over the recorded trades.
func (l *Ledger) Summary() Summary {
	s := Summary{ByOutcome: make(map[Outcome]int)}
	for _, tr := range l.trades {
		s.Count++
		s.TotalPips += tr.RealizedPnLPips
		s.ByOutcome[tr.Outcome]++
		switch {
		case tr.RealizedPnLPips > 0:
			s.Wins++
		case tr.RealizedPnLPips < 0:
			s.Losses++
		default:
			s.Scratches++
		}
	}
	return s
}

// WinRate returns Wins/Count, or 0 if no trades were recorded.
func (s Summary) WinRate() float64 {
	if s.Count == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.Count)
}
