package ticksim_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/corvidquant/ticksim"
)

func TestNewTick_DerivesMidAndHourMinute(t *testing.T) {
	tick := ticksim.NewTick(3661, 1.0999, 1.1001) // 01:01:01 UTC
	require.InDelta(t, 1.1000, tick.Mid, 1e-9)
	require.Equal(t, 1, tick.Hour)
	require.Equal(t, 1, tick.Minute)
}

func TestTick_Valid(t *testing.T) {
	require.True(t, ticksim.NewTick(0, 1.0999, 1.1001).Valid())

	bad := ticksim.NewTick(0, 1.1001, 1.0999) // bid > ask
	require.False(t, bad.Valid())

	nanTick := ticksim.NewTick(0, math.NaN(), 1.1001)
	require.False(t, nanTick.Valid())
}
