// Package registry maps variant names to creators.
//
// The pattern packages use it to pick a concrete factory by name ("ford", "taxi")
// without the caller ever naming a concrete type:
//
//	families := abstractfactory.Families()
//	f, err := families.Resolve("audi")
//
// A Registry is:
//   - explicit: nothing registers itself, callers Provide every entry
//   - strict: duplicate names and nil values are rejected
//   - cheap on failure: typed errors are built without fmt
//
// Import
//
//	"github.com/sghaida/gopatterns/registry"
package registry
