package adapter

import (
	"math"

	"github.com/sghaida/gopatterns/errs"
)

// DefaultComfortThreshold is the reading above which ClimateControl suggests cooling.
const DefaultComfortThreshold Celsius = 28

// Action is what ClimateControl suggests doing with the temperature.
type Action int

const (
	Increase Action = iota
	Decrease
)

func (a Action) String() string {
	if a == Decrease {
		return "Decrease"
	}
	return "Increase"
}

// Advice is one reading plus the suggested action.
type Advice struct {
	Reading Celsius
	Action  Action
}

func (a Advice) String() string {
	return "My sensors show " + a.Reading.String() + "\n" + a.Action.String() + " temperature?"
}

// ClimateControl reads a Celsius sensor and suggests an action.
type ClimateControl struct {
	sensor    TemperatureSensor
	threshold Celsius
}

// NewClimateControl returns a controller that suggests cooling above threshold.
func NewClimateControl(sensor TemperatureSensor, threshold Celsius) (*ClimateControl, error) {
	if math.IsNaN(float64(threshold)) || math.IsInf(float64(threshold), 0) || threshold < AbsoluteZero {
		return nil, errs.Invalid("climate.new", "threshold", float64(threshold), "out of range")
	}
	return &ClimateControl{sensor: sensor, threshold: threshold}, nil
}

// Advise takes one reading.
func (c *ClimateControl) Advise() Advice {
	t := c.sensor.Measure()
	if t > c.threshold {
		return Advice{Reading: t, Action: Decrease}
	}
	return Advice{Reading: t, Action: Increase}
}
