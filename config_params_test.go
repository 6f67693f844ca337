package ticksim_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/corvidquant/ticksim"
)

func TestRunConfig_BuildAssemblesManagerEngineAndPipelineConfig(t *testing.T) {
	rc := ticksim.RunConfig{
		PipSize:       0.0001,
		WarmupSeconds: 10,
		Metrics: []ticksim.MetricConfig{
			{Type: ticksim.MetricTypeSession, Name: "sess"},
			{Type: ticksim.MetricTypeZScore, Name: "z", ZScore: &ticksim.ZScoreParams{LookbackSeconds: 60}},
		},
		Engine: ticksim.EngineConfig{Type: ticksim.EngineTypeStub},
		EntryPredicates: []ticksim.PredicateConfig{
			{LHSKey: "z.z_score", Operator: string(ticksim.OpGT), RHSValue: 1},
		},
	}

	mgr, engine, cfg, err := rc.Build()
	require.NoError(t, err)
	require.NotNil(t, mgr)
	require.NotNil(t, engine)
	require.Equal(t, 0.0001, cfg.PipSize)
	require.Equal(t, 10.0, cfg.WarmupSeconds)
	require.Len(t, cfg.EntryPredicates, 1)
	require.Len(t, mgr.Metrics(), 2)
}

func TestMetricConfig_Build_MissingParamsBlockErrors(t *testing.T) {
	mc := ticksim.MetricConfig{Type: ticksim.MetricTypeZScore, Name: "z"}
	_, err := mc.Build()
	require.Error(t, err)
}

func TestEngineConfig_Build_DefaultsToStub(t *testing.T) {
	ec := ticksim.EngineConfig{}
	engine, err := ec.Build()
	require.NoError(t, err)
	sig := engine.Evaluate(ticksim.Snapshot{}, ticksim.Tick{}, 0)
	require.Equal(t, 0, sig.Direction)
}

func TestBuildPredicateList_KeyVsLiteral(t *testing.T) {
	pl := ticksim.BuildPredicateList([]ticksim.PredicateConfig{
		{LHSKey: "a", Operator: string(ticksim.OpGT), RHSValue: 1},
		{LHSKey: "a", Operator: string(ticksim.OpLT), RHSKey: "b"},
	})
	require.Len(t, pl, 2)
}
