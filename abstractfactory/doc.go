// Package abstractfactory demonstrates the Abstract Factory pattern with car families.
//
// A CarFactory produces a Car and an Engine that always belong to the same brand.
// The Client receives a factory at construction and from then on only talks to the
// Car and Engine interfaces:
//
//	c := abstractfactory.NewClient(abstractfactory.FordFactory{})
//	fmt.Println(c.Report()) // Max speed of Car Ford is 220
//
// Adding a family means adding one factory plus its car and engine types, and
// registering the factory; nothing else changes.
package abstractfactory
