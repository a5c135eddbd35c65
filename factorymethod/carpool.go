package factorymethod

import (
	"math"
	"strconv"

	"github.com/sghaida/gopatterns/errs"
)

// Fuel cost per distance unit shared by a carpool: 0.25 l/unit at 50 per litre.
const (
	FuelPerUnit     = 0.25
	FuelPrice       = 50.0
	CarpoolUnitCost = FuelPerUnit * FuelPrice
	carpoolCostOp   = "carpool.cost"
)

// Carpool splits the fuel bill of a shared car between riders.
type Carpool struct {
	name      string
	partySize int
}

func (s *Carpool) Name() string { return s.name }

// PartySize is the number of riders sharing the cost.
func (s *Carpool) PartySize() int { return s.partySize }

// Cost returns distance * CarpoolUnitCost / PartySize rounded to cents.
func (s *Carpool) Cost(distance float64) (float64, error) {
	if err := checkDistance(carpoolCostOp, distance); err != nil {
		return 0, err
	}
	if s.partySize <= 0 {
		return 0, errs.Invalid(carpoolCostOp, "partySize", float64(s.partySize), "must be > 0")
	}
	return round2(distance * CarpoolUnitCost / float64(s.partySize)), nil
}

func (s *Carpool) Describe(distance float64) (string, error) {
	cost, err := s.Cost(distance)
	if err != nil {
		return "", err
	}
	return describe(s.name, "shared car for "+strconv.Itoa(s.partySize)+" people", cost), nil
}

// CarpoolCompany creates Carpool services.
type CarpoolCompany struct{ name string }

// NewCarpoolCompany returns a carpool company called name.
func NewCarpoolCompany(name string) TransportCompany { return &CarpoolCompany{name: name} }

func (c *CarpoolCompany) Name() string { return c.name }

// Create returns a Carpool shared by partySize riders.
func (c *CarpoolCompany) Create(partySize float64) (TransportService, error) {
	const op = "carpool.create"
	switch {
	case math.IsNaN(partySize) || math.IsInf(partySize, 0):
		return nil, errs.Invalid(op, "partySize", partySize, "must be finite")
	case partySize <= 0:
		return nil, errs.Invalid(op, "partySize", partySize, "must be > 0")
	case partySize != math.Trunc(partySize):
		return nil, errs.Invalid(op, "partySize", partySize, "must be a whole number")
	case partySize > math.MaxInt32:
		return nil, errs.Invalid(op, "partySize", partySize, "too large")
	}
	return &Carpool{name: c.name, partySize: int(partySize)}, nil
}
