package ticksim_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/corvidquant/ticksim"
)

func TestNewMetricFromRegistry_BuildsKnownType(t *testing.T) {
	m, err := ticksim.NewMetricFromRegistry(ticksim.MetricTypeZScore, "z", ticksim.ZScoreParams{LookbackSeconds: 60})
	require.NoError(t, err)
	require.Equal(t, "z", m.Name())
}

func TestNewMetricFromRegistry_UnknownType(t *testing.T) {
	_, err := ticksim.NewMetricFromRegistry("not_a_type", "z", nil)
	require.Error(t, err)
}

func TestNewMetricFromRegistry_WrongParamsType(t *testing.T) {
	_, err := ticksim.NewMetricFromRegistry(ticksim.MetricTypeZScore, "z", ticksim.EWMAParams{})
	require.Error(t, err)
}

func TestNewEngineFromRegistry_BuildsStub(t *testing.T) {
	e, err := ticksim.NewEngineFromRegistry(ticksim.EngineTypeStub, nil)
	require.NoError(t, err)
	sig := e.Evaluate(ticksim.Snapshot{}, ticksim.Tick{}, 0)
	require.Equal(t, 0, sig.Direction)
}

func TestRegisterMetric_AddsCustomConstructor(t *testing.T) {
	ticksim.RegisterMetric("custom_session", func(name string, params interface{}) (ticksim.Metric, error) {
		return ticksim.NewSessionMetric(name), nil
	})
	m, err := ticksim.NewMetricFromRegistry("custom_session", "s", nil)
	require.NoError(t, err)
	require.Equal(t, "s", m.Name())
}
