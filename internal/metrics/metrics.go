// Package metrics counts the products the demos create.
//
// Metrics is an optional dependency of the demo runner. When nothing is wired the
// runner uses Noop; the CLI wires a Prometheus implementation and prints a snapshot
// when asked to.
package metrics

import (
	"fmt"
	"sort"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

// Metrics is the counter sink used by the runner.
type Metrics interface {
	Inc(name string)
}

// Noop is used when no metrics are wired.
type Noop struct{}

func (Noop) Inc(string) {}

// ProductsCreatedName is the Prometheus counter family name.
const ProductsCreatedName = "gopatterns_products_created_total"

// Prometheus counts products in a private registry, labelled by product name.
type Prometheus struct {
	reg     *prometheus.Registry
	created *prometheus.CounterVec
}

// NewPrometheus registers the counters in a fresh registry.
func NewPrometheus() (*Prometheus, error) {
	reg := prometheus.NewRegistry()
	created := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: ProductsCreatedName,
			Help: "Products created by the pattern demos",
		},
		[]string{"product"},
	)
	if err := reg.Register(created); err != nil {
		return nil, fmt.Errorf("metrics: register %s: %w", ProductsCreatedName, err)
	}
	return &Prometheus{reg: reg, created: created}, nil
}

// Inc implements Metrics.
func (p *Prometheus) Inc(name string) {
	p.created.WithLabelValues(name).Inc()
}

// Registry exposes the underlying registry, e.g. for an HTTP handler.
func (p *Prometheus) Registry() *prometheus.Registry { return p.reg }

// Snapshot gathers the current counter values keyed by product.
func (p *Prometheus) Snapshot() (map[string]float64, error) {
	families, err := p.reg.Gather()
	if err != nil {
		return nil, fmt.Errorf("metrics: gather: %w", err)
	}

	out := map[string]float64{}
	for _, mf := range families {
		if mf.GetName() != ProductsCreatedName {
			continue
		}
		for _, m := range mf.GetMetric() {
			out[productLabel(m)] = m.GetCounter().GetValue()
		}
	}
	return out, nil
}

func productLabel(m *dto.Metric) string {
	for _, lp := range m.GetLabel() {
		if lp.GetName() == "product" {
			return lp.GetValue()
		}
	}
	return ""
}

// FormatSnapshot renders counters as "{a=1, b=2}" in key order.
func FormatSnapshot(vals map[string]float64) string {
	if len(vals) == 0 {
		return "{}"
	}
	parts := make([]string, 0, len(vals))
	for k, v := range vals {
		parts = append(parts, fmt.Sprintf("%s=%g", k, v))
	}
	sort.Strings(parts)
	return "{" + strings.Join(parts, ", ") + "}"
}
