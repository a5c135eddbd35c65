package factorymethod

// tariffService is the simple pricing family: cost = distance * rate.
type tariffService struct {
	op    string
	name  string
	label string
	rate  float64
}

func (s *tariffService) Name() string  { return s.name }
func (s *tariffService) Rate() float64 { return s.rate }

func (s *tariffService) Cost(distance float64) (float64, error) {
	if err := checkDistance(s.op+".cost", distance); err != nil {
		return 0, err
	}
	return distance * s.rate, nil
}

func (s *tariffService) Describe(distance float64) (string, error) {
	cost, err := s.Cost(distance)
	if err != nil {
		return "", err
	}
	return describe(s.name, s.label+" "+formatAmount(s.rate), cost), nil
}

// Taxi is a ride priced by tariff category.
type Taxi struct{ tariffService }

// Shipping is a freight service priced by tariff.
type Shipping struct{ tariffService }

// TaxiCompany creates Taxi services.
type TaxiCompany struct{ name string }

// NewTaxiCompany returns a taxi company called name.
func NewTaxiCompany(name string) TransportCompany { return &TaxiCompany{name: name} }

func (c *TaxiCompany) Name() string { return c.name }

// Create returns a Taxi charging category per distance unit.
func (c *TaxiCompany) Create(category float64) (TransportService, error) {
	if err := checkRate("taxi.create", category); err != nil {
		return nil, err
	}
	return &Taxi{tariffService{op: "taxi", name: c.name, label: "tariff", rate: category}}, nil
}

// ShippingCompany creates Shipping services.
type ShippingCompany struct{ name string }

// NewShippingCompany returns a shipping company called name.
func NewShippingCompany(name string) TransportCompany { return &ShippingCompany{name: name} }

func (c *ShippingCompany) Name() string { return c.name }

// Create returns a Shipping service charging tariff per distance unit.
func (c *ShippingCompany) Create(tariff float64) (TransportService, error) {
	if err := checkRate("shipping.create", tariff); err != nil {
		return nil, err
	}
	return &Shipping{tariffService{op: "shipping", name: c.name, label: "tariff", rate: tariff}}, nil
}
