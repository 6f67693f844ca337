// FILE: registry.go
// Package ticksim – string-keyed constructors for metrics and entry
// engines (spec §4.10), so a config layer can build a pipeline from
// declarative type names rather than a hard-coded list of Go constructors.
// Grounded on the pack's config-driven strategy pattern (the gocryptotrader
// multiindicator strategy's config-key constants) rather than on the
// teacher, which only ever runs one hard-coded strategy.

package ticksim

// MetricFactory builds a Metric from its stable name and a params value.
// Each registered factory type-asserts params to the concrete *Params
// struct it expects and returns a ConfigurationError on mismatch.
type MetricFactory func(name string, params interface{}) (Metric, error)

// EngineFactory builds an EntryEngine from a params value, following the
// same convention as MetricFactory.
type EngineFactory func(params interface{}) (EntryEngine, error)

// Metric type identifiers usable with RegisterMetric/NewMetricFromRegistry.
const (
	MetricTypeZScore             = "z_score"
	MetricTypeEWMA               = "ewma"
	MetricTypeEWMASlope          = "ewma_slope"
	MetricTypeEWMAVol            = "ewma_vol"
	MetricTypeDriftSign          = "drift_sign"
	MetricTypeSession            = "session"
	MetricTypeSpread             = "spread"
	MetricTypeTickRate           = "tick_rate"
	MetricTypeThresholdReversion = "threshold_reversion"
)

// Entry engine type identifiers usable with RegisterEngine/NewEngineFromRegistry.
const (
	EngineTypeStub               = "stub"
	EngineTypeThresholdReversion = "threshold_reversion"
	EngineTypeEWMACrossover      = "ewma_crossover"
)

var metricRegistry = map[string]MetricFactory{
	MetricTypeZScore: func(name string, params interface{}) (Metric, error) {
		p, ok := params.(ZScoreParams)
		if !ok {
			return nil, NewConfigurationError("params", "expected ZScoreParams for z_score")
		}
		return NewZScoreMetric(name, p)
	},
	MetricTypeEWMA: func(name string, params interface{}) (Metric, error) {
		p, ok := params.(EWMAParams)
		if !ok {
			return nil, NewConfigurationError("params", "expected EWMAParams for ewma")
		}
		return NewEWMAMetric(name, p)
	},
	MetricTypeEWMASlope: func(name string, params interface{}) (Metric, error) {
		p, ok := params.(EWMASlopeParams)
		if !ok {
			return nil, NewConfigurationError("params", "expected EWMASlopeParams for ewma_slope")
		}
		return NewEWMASlopeMetric(name, p)
	},
	MetricTypeEWMAVol: func(name string, params interface{}) (Metric, error) {
		p, ok := params.(EWMAVolParams)
		if !ok {
			return nil, NewConfigurationError("params", "expected EWMAVolParams for ewma_vol")
		}
		return NewEWMAVolMetric(name, p)
	},
	MetricTypeDriftSign: func(name string, params interface{}) (Metric, error) {
		p, ok := params.(DriftSignParams)
		if !ok {
			return nil, NewConfigurationError("params", "expected DriftSignParams for drift_sign")
		}
		return NewDriftSignMetric(name, p)
	},
	MetricTypeSession: func(name string, params interface{}) (Metric, error) {
		return NewSessionMetric(name), nil
	},
	MetricTypeSpread: func(name string, params interface{}) (Metric, error) {
		p, ok := params.(SpreadParams)
		if !ok {
			return nil, NewConfigurationError("params", "expected SpreadParams for spread")
		}
		return NewSpreadMetric(name, p)
	},
	MetricTypeTickRate: func(name string, params interface{}) (Metric, error) {
		p, ok := params.(TickRateParams)
		if !ok {
			return nil, NewConfigurationError("params", "expected TickRateParams for tick_rate")
		}
		return NewTickRateMetric(name, p)
	},
	MetricTypeThresholdReversion: func(name string, params interface{}) (Metric, error) {
		p, ok := params.(ThresholdReversionParams)
		if !ok {
			return nil, NewConfigurationError("params", "expected ThresholdReversionParams for threshold_reversion")
		}
		return NewThresholdReversionMetric(name, p)
	},
}

var engineRegistry = map[string]EngineFactory{
	EngineTypeStub: func(params interface{}) (EntryEngine, error) {
		return NewStubEngine(), nil
	},
	EngineTypeThresholdReversion: func(params interface{}) (EntryEngine, error) {
		p, ok := params.(ReversionEngineParams)
		if !ok {
			return nil, NewConfigurationError("params", "expected ReversionEngineParams for threshold_reversion")
		}
		return NewReversionEngine(p)
	},
	EngineTypeEWMACrossover: func(params interface{}) (EntryEngine, error) {
		p, ok := params.(CrossoverEngineParams)
		if !ok {
			return nil, NewConfigurationError("params", "expected CrossoverEngineParams for ewma_crossover")
		}
		return NewCrossoverEngine(p)
	},
}

// RegisterMetric adds or replaces a metric constructor under typeName, for
// callers that define their own indicator metrics outside this package.
func RegisterMetric(typeName string, f MetricFactory) {
	metricRegistry[typeName] = f
}

// RegisterEngine adds or replaces an entry engine constructor under
// typeName.
func RegisterEngine(typeName string, f EngineFactory) {
	engineRegistry[typeName] = f
}

// NewMetricFromRegistry looks up typeName and builds the metric with the
// given stable name and params.
func NewMetricFromRegistry(typeName, name string, params interface{}) (Metric, error) {
	f, ok := metricRegistry[typeName]
	if !ok {
		return nil, NewConfigurationError("type", "unknown metric type "+typeName)
	}
	return f(name, params)
}

// NewEngineFromRegistry looks up typeName and builds the entry engine with
// the given params.
func NewEngineFromRegistry(typeName string, params interface{}) (EntryEngine, error) {
	f, ok := engineRegistry[typeName]
	if !ok {
		return nil, NewConfigurationError("type", "unknown engine type "+typeName)
	}
	return f(params)
}
