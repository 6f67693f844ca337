// Package ticksim implements the per-tick evaluation pipeline of a
// deterministic, tick-level FX backtesting engine: online metric
// primitives, config-driven indicators, a snapshot-composing metrics
// manager, a predicate evaluator, and the entry/exit engines that drive a
// single symbol's position lifecycle through a sequential tick loop.
//
// The package does not decode tick files, parse YAML configuration, or
// place orders on an exchange — it consumes a stream of Tick values and
// produces TradeRecord values through two boundaries: TickProducer and
// TradeSink (pipeline.go).
package ticksim
