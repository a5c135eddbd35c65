package adapter

import (
	"math"
	"strconv"

	"github.com/sghaida/gopatterns/errs"
	"github.com/sghaida/gopatterns/rng"
)

// Fahrenheit is a temperature reading in degrees Fahrenheit.
type Fahrenheit float64

// Celsius is a temperature reading in degrees Celsius.
type Celsius float64

// AbsoluteZero in Celsius. Nothing below it is a valid temperature.
const AbsoluteZero Celsius = -273.15

func (f Fahrenheit) String() string { return strconv.FormatFloat(float64(f), 'f', -1, 64) + " °F" }

func (c Celsius) String() string { return strconv.FormatFloat(float64(c), 'f', -1, 64) + " °C" }

// ToCelsius converts f and rounds to two decimals. 32 °F is exactly 0 °C.
func ToCelsius(f Fahrenheit) Celsius {
	return Celsius(math.Round((float64(f)-32)/1.8*100) / 100)
}

// ToFahrenheit is the inverse of ToCelsius, without rounding.
func ToFahrenheit(c Celsius) Fahrenheit {
	return Fahrenheit(float64(c)*1.8 + 32)
}

// FahrenheitSensor is a third-party sensor that only reports Fahrenheit.
type FahrenheitSensor struct {
	max int
	src rng.Source
}

// NewFahrenheitSensor returns a sensor reading whole degrees in [1, maxF].
func NewFahrenheitSensor(maxF int, src rng.Source) (*FahrenheitSensor, error) {
	if maxF <= 0 {
		return nil, errs.Invalid("sensor.new", "maxF", float64(maxF), "must be > 0")
	}
	return &FahrenheitSensor{max: maxF, src: src}, nil
}

// MeasureFahrenheit returns the current reading.
func (s *FahrenheitSensor) MeasureFahrenheit() Fahrenheit {
	return Fahrenheit(s.src.UniformInt(1, s.max))
}

// TemperatureSensor is what ClimateControl expects.
type TemperatureSensor interface {
	Measure() Celsius
}

// SensorAdapter exposes a FahrenheitSensor as a TemperatureSensor.
type SensorAdapter struct {
	sensor *FahrenheitSensor
}

// NewSensorAdapter takes ownership of sensor.
func NewSensorAdapter(sensor *FahrenheitSensor) *SensorAdapter {
	return &SensorAdapter{sensor: sensor}
}

// Measure implements TemperatureSensor.
func (a *SensorAdapter) Measure() Celsius {
	return ToCelsius(a.sensor.MeasureFahrenheit())
}
