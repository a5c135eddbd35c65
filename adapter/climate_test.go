package adapter_test

import (
	"math"
	"testing"

	"github.com/sghaida/gopatterns/adapter"
	"github.com/sghaida/gopatterns/errs"
	"github.com/sghaida/gopatterns/rng"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedSensor adapter.Celsius

func (f fixedSensor) Measure() adapter.Celsius { return adapter.Celsius(f) }

func TestClimateControl_Advise(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		reading adapter.Celsius
		want    adapter.Action
	}{
		{name: "cold", reading: -5, want: adapter.Increase},
		{name: "at threshold", reading: 28, want: adapter.Increase},
		{name: "hot", reading: 28.01, want: adapter.Decrease},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			cc, err := adapter.NewClimateControl(fixedSensor(tc.reading), adapter.DefaultComfortThreshold)
			require.NoError(t, err)

			advice := cc.Advise()
			assert.Equal(t, tc.reading, advice.Reading)
			assert.Equal(t, tc.want, advice.Action)
		})
	}
}

func TestClimateControl_ThroughAdapter(t *testing.T) {
	t.Parallel()

	sensor, err := adapter.NewFahrenheitSensor(100, rng.NewSequence(55, 100))
	require.NoError(t, err)

	cc, err := adapter.NewClimateControl(adapter.NewSensorAdapter(sensor), adapter.DefaultComfortThreshold)
	require.NoError(t, err)

	assert.Equal(t, "My sensors show 12.78 °C\nIncrease temperature?", cc.Advise().String())
	assert.Equal(t, "My sensors show 37.78 °C\nDecrease temperature?", cc.Advise().String())
}

func TestNewClimateControl_InvalidThreshold(t *testing.T) {
	t.Parallel()

	for _, th := range []adapter.Celsius{-300, adapter.Celsius(math.NaN()), adapter.Celsius(math.Inf(1))} {
		cc, err := adapter.NewClimateControl(fixedSensor(20), th)
		assert.Nil(t, cc)
		assert.ErrorIs(t, err, errs.ErrInvalidArgument)
	}
}
