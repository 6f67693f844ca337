// FILE: config_params.go
// Package ticksim – declarative run configuration (struct-of-knobs, in the
// teacher's Config/ExtendedToggles style from config.go), decoded from YAML
// by the fixtures package and turned into live metrics/engines/pipeline via
// the registry in registry.go.

package ticksim

// MetricConfig declares one metric instance. Exactly one of the typed
// params fields should be set, matching Type; Build resolves it through
// the metric registry.
type MetricConfig struct {
	Type string `yaml:"type"`
	Name string `yaml:"name"`

	ZScore             *ZScoreParams             `yaml:"z_score,omitempty"`
	EWMA               *EWMAParams               `yaml:"ewma,omitempty"`
	EWMASlope          *EWMASlopeParams          `yaml:"ewma_slope,omitempty"`
	EWMAVol            *EWMAVolParams            `yaml:"ewma_vol,omitempty"`
	DriftSign          *DriftSignParams          `yaml:"drift_sign,omitempty"`
	Spread             *SpreadParams             `yaml:"spread,omitempty"`
	TickRate           *TickRateParams           `yaml:"tick_rate,omitempty"`
	ThresholdReversion *ThresholdReversionParams `yaml:"threshold_reversion,omitempty"`
}

// Build resolves this declaration into a live Metric via the registry.
func (c MetricConfig) Build() (Metric, error) {
	if c.Name == "" {
		return nil, NewConfigurationError("name", "must not be empty")
	}
	switch c.Type {
	case MetricTypeZScore:
		if c.ZScore == nil {
			return nil, NewConfigurationError("z_score", "params block missing")
		}
		return NewMetricFromRegistry(c.Type, c.Name, *c.ZScore)
	case MetricTypeEWMA:
		if c.EWMA == nil {
			return nil, NewConfigurationError("ewma", "params block missing")
		}
		return NewMetricFromRegistry(c.Type, c.Name, *c.EWMA)
	case MetricTypeEWMASlope:
		if c.EWMASlope == nil {
			return nil, NewConfigurationError("ewma_slope", "params block missing")
		}
		return NewMetricFromRegistry(c.Type, c.Name, *c.EWMASlope)
	case MetricTypeEWMAVol:
		if c.EWMAVol == nil {
			return nil, NewConfigurationError("ewma_vol", "params block missing")
		}
		return NewMetricFromRegistry(c.Type, c.Name, *c.EWMAVol)
	case MetricTypeDriftSign:
		if c.DriftSign == nil {
			return nil, NewConfigurationError("drift_sign", "params block missing")
		}
		return NewMetricFromRegistry(c.Type, c.Name, *c.DriftSign)
	case MetricTypeSession:
		return NewMetricFromRegistry(c.Type, c.Name, nil)
	case MetricTypeSpread:
		if c.Spread == nil {
			return nil, NewConfigurationError("spread", "params block missing")
		}
		return NewMetricFromRegistry(c.Type, c.Name, *c.Spread)
	case MetricTypeTickRate:
		if c.TickRate == nil {
			return nil, NewConfigurationError("tick_rate", "params block missing")
		}
		return NewMetricFromRegistry(c.Type, c.Name, *c.TickRate)
	case MetricTypeThresholdReversion:
		if c.ThresholdReversion == nil {
			return nil, NewConfigurationError("threshold_reversion", "params block missing")
		}
		return NewMetricFromRegistry(c.Type, c.Name, *c.ThresholdReversion)
	default:
		return nil, NewConfigurationError("type", "unknown metric type "+c.Type)
	}
}

// EngineConfig declares the single entry engine a run uses.
type EngineConfig struct {
	Type string `yaml:"type"`

	ThresholdReversion *ReversionEngineParams `yaml:"threshold_reversion,omitempty"`
	EWMACrossover      *CrossoverEngineParams `yaml:"ewma_crossover,omitempty"`
}

// Build resolves this declaration into a live EntryEngine via the registry.
func (c EngineConfig) Build() (EntryEngine, error) {
	switch c.Type {
	case EngineTypeStub, "":
		return NewEngineFromRegistry(EngineTypeStub, nil)
	case EngineTypeThresholdReversion:
		if c.ThresholdReversion == nil {
			return nil, NewConfigurationError("threshold_reversion", "params block missing")
		}
		return NewEngineFromRegistry(c.Type, *c.ThresholdReversion)
	case EngineTypeEWMACrossover:
		if c.EWMACrossover == nil {
			return nil, NewConfigurationError("ewma_crossover", "params block missing")
		}
		return NewEngineFromRegistry(c.Type, *c.EWMACrossover)
	default:
		return nil, NewConfigurationError("type", "unknown engine type "+c.Type)
	}
}

// RunConfig is the top-level declarative description of one backtest run:
// which metrics to compute, which entry engine to use, and the run-level
// knobs from PipelineConfig. PipSize is used by the pipeline only; metrics
// that take a pip size read it from their own params block.
type RunConfig struct {
	PipSize         float64        `yaml:"pip_size"`
	WarmupSeconds   float64        `yaml:"warmup_seconds"`
	Metrics         []MetricConfig `yaml:"metrics"`
	Engine          EngineConfig   `yaml:"engine"`
	EntryPredicates []PredicateConfig `yaml:"entry_predicates"`
	ExitPredicates  []PredicateConfig `yaml:"exit_predicates"`
}

// PredicateConfig is the YAML-friendly mirror of Predicate.
type PredicateConfig struct {
	LHSKey   string  `yaml:"lhs"`
	Operator string  `yaml:"op"`
	UseAbs   bool    `yaml:"abs"`
	RHSValue float64 `yaml:"rhs_value"`
	RHSKey   string  `yaml:"rhs_key"`
}

// BuildPredicateList converts a slice of PredicateConfig into a
// PredicateList, treating a set RHSKey as a key comparison and otherwise a
// literal comparison.
func BuildPredicateList(pcs []PredicateConfig) PredicateList {
	out := make(PredicateList, 0, len(pcs))
	for _, pc := range pcs {
		op := Operator(pc.Operator)
		if pc.RHSKey != "" {
			out = append(out, NewKeyPredicate(pc.LHSKey, op, pc.UseAbs, pc.RHSKey))
		} else {
			out = append(out, NewLiteralPredicate(pc.LHSKey, op, pc.UseAbs, pc.RHSValue))
		}
	}
	return out
}

// Build assembles every declared metric, the entry engine, and the
// PipelineConfig from this RunConfig. It does not construct the Pipeline
// itself, since that also needs a TradeSink and a TickProducer supplied by
// the caller.
func (rc RunConfig) Build() (*MetricsManager, EntryEngine, PipelineConfig, error) {
	metrics := make([]Metric, 0, len(rc.Metrics))
	for _, mc := range rc.Metrics {
		m, err := mc.Build()
		if err != nil {
			return nil, nil, PipelineConfig{}, err
		}
		metrics = append(metrics, m)
	}
	engine, err := rc.Engine.Build()
	if err != nil {
		return nil, nil, PipelineConfig{}, err
	}
	cfg := PipelineConfig{
		WarmupSeconds:   rc.WarmupSeconds,
		PipSize:         rc.PipSize,
		EntryPredicates: BuildPredicateList(rc.EntryPredicates),
		ExitPredicates:  BuildPredicateList(rc.ExitPredicates),
	}
	return NewMetricsManager(metrics...), engine, cfg, nil
}
