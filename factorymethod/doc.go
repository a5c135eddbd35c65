// Package factorymethod demonstrates the Factory Method pattern with transport pricing.
//
// Every TransportCompany exposes a single Create method and decides on its own
// which TransportService to build. The numeric argument means different things
// per company: the tariff category for a taxi, the tariff for shipping, the number
// of riders for a carpool.
//
// Pricing rules:
//
//	taxi, shipping: cost = distance * rate
//	carpool:        cost = round2(distance * 12.5 / partySize)
//
// Distances must be finite and >= 0, rates must be > 0 and party sizes must be
// positive integers. Violations return errs.ErrInvalidArgument.
package factorymethod
