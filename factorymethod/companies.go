package factorymethod

import "github.com/sghaida/gopatterns/registry"

// Company kinds used by Companies.
const (
	KindTaxi     = "taxi"
	KindShipping = "shipping"
	KindCarpool  = "carpool"
)

// Companies returns a fresh registry of company constructors keyed by kind.
func Companies() *registry.Registry[CompanyConstructor] {
	return registry.New[CompanyConstructor]().
		Provide(KindTaxi, NewTaxiCompany).
		Provide(KindShipping, NewShippingCompany).
		Provide(KindCarpool, NewCarpoolCompany)
}

// Quote creates a service from company and prices a trip in one step.
func Quote(company TransportCompany, param, distance float64) (string, error) {
	svc, err := company.Create(param)
	if err != nil {
		return "", err
	}
	return svc.Describe(distance)
}
