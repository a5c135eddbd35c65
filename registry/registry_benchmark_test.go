package registry_test

import (
	"testing"

	"github.com/sghaida/gopatterns/registry"
)

func newBenchRegistry() *registry.Registry[int] {
	return registry.New[int]().
		Provide("ford", 1).
		Provide("audi", 2).
		Provide("taxi", 3)
}

func BenchmarkResolve_Hit(b *testing.B) {
	r := newBenchRegistry()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = r.Resolve("audi")
	}
}

func BenchmarkResolve_Miss(b *testing.B) {
	r := newBenchRegistry()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = r.Resolve("bmw")
	}
}

func BenchmarkClone(b *testing.B) {
	r := newBenchRegistry()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = r.Clone()
	}
}
