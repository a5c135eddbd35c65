package factorymethod

import (
	"math"
	"strconv"

	"github.com/sghaida/gopatterns/errs"
)

// TransportService prices a trip.
type TransportService interface {
	// Name is the name of the company providing the service.
	Name() string

	// Cost returns the price of a trip of distance units.
	Cost(distance float64) (float64, error)

	// Describe renders the console block for a trip of distance units.
	Describe(distance float64) (string, error)
}

// TransportCompany is the creator. Create picks the concrete TransportService.
type TransportCompany interface {
	Name() string
	Create(param float64) (TransportService, error)
}

// CompanyConstructor builds a company with a display name.
type CompanyConstructor func(name string) TransportCompany

func checkDistance(op string, distance float64) error {
	if math.IsNaN(distance) || math.IsInf(distance, 0) {
		return errs.Invalid(op, "distance", distance, "must be finite")
	}
	if distance < 0 {
		return errs.Invalid(op, "distance", distance, "must be >= 0")
	}
	return nil
}

func checkRate(op string, rate float64) error {
	if math.IsNaN(rate) || math.IsInf(rate, 0) {
		return errs.Invalid(op, "rate", rate, "must be finite")
	}
	if rate <= 0 {
		return errs.Invalid(op, "rate", rate, "must be > 0")
	}
	return nil
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }

func formatAmount(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }

// describe renders the two-line block shared by all services.
func describe(company, terms string, cost float64) string {
	return "Company " + company + ", " + terms + "\nCost: " + formatAmount(cost)
}
