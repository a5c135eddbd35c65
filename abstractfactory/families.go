package abstractfactory

import "github.com/sghaida/gopatterns/registry"

// Family names used by Families.
const (
	FamilyFord = "ford"
	FamilyAudi = "audi"
)

// Families returns a fresh registry preloaded with the built-in families.
// Callers may Provide extra families on the returned registry.
func Families() *registry.Registry[CarFactory] {
	return registry.New[CarFactory]().
		Provide(FamilyFord, FordFactory{}).
		Provide(FamilyAudi, AudiFactory{})
}
