// Package metrics counts resolver activity with Prometheus collectors held
// on a private registry, so several collectors can coexist in one process
// and tests see only their own counts.
package metrics

import (
	"github.com/arthur-debert/ruleset/pkg/resolver"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	dto "github.com/prometheus/client_model/go"
)

const namespace = "ruleset"

// OutcomeNone labels resolutions that failed every strategy.
const OutcomeNone = "none"

// Collector implements resolver.Observer.
type Collector struct {
	registry *prometheus.Registry

	// attempts counts construction attempts.
	// Labels: strategy, outcome (hit, miss)
	attempts *prometheus.CounterVec

	// resolutions counts finished resolutions.
	// Labels: strategy (the winning strategy, or "none")
	resolutions *prometheus.CounterVec

	// attemptsPerResolution is the distribution of constructions tried per
	// requested name.
	attemptsPerResolution prometheus.Histogram
}

var _ resolver.Observer = (*Collector)(nil)

// NewCollector returns a collector registered on a fresh registry.
func NewCollector() *Collector {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Collector{
		registry: reg,
		attempts: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "resolver",
			Name:      "attempts_total",
			Help:      "Module construction attempts by strategy and outcome",
		}, []string{"strategy", "outcome"}),
		resolutions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "resolver",
			Name:      "resolutions_total",
			Help:      "Resolved module names by winning strategy",
		}, []string{"strategy"}),
		attemptsPerResolution: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "resolver",
			Name:      "attempts_per_resolution",
			Help:      "Construction attempts needed per requested name",
			Buckets:   []float64{1, 2, 3, 4, 6, 8, 12, 16, 24, 32},
		}),
	}
}

// Registry exposes the collector's registry for gathering or serving.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

func (c *Collector) Attempted(strategy resolver.Strategy, _ string, ok bool) {
	outcome := "miss"
	if ok {
		outcome = "hit"
	}
	c.attempts.WithLabelValues(strategy.String(), outcome).Inc()
}

func (c *Collector) Resolved(r resolver.Resolution) {
	c.resolutions.WithLabelValues(r.Strategy.String()).Inc()
	c.attemptsPerResolution.Observe(float64(r.Attempts))
}

func (c *Collector) Failed(f *resolver.Failure) {
	c.resolutions.WithLabelValues(OutcomeNone).Inc()
	c.attemptsPerResolution.Observe(float64(len(f.Attempted)))
}

// Sample is one gathered counter value.
type Sample struct {
	Name   string
	Labels map[string]string
	Value  float64
}

// Snapshot gathers every counter with a non-zero value, in registry order.
// Histograms are reported by their sample count.
func (c *Collector) Snapshot() ([]Sample, error) {
	families, err := c.registry.Gather()
	if err != nil {
		return nil, err
	}

	var out []Sample
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			v := value(mf.GetType(), m)
			if v == 0 {
				continue
			}
			labels := make(map[string]string, len(m.GetLabel()))
			for _, lp := range m.GetLabel() {
				labels[lp.GetName()] = lp.GetValue()
			}
			out = append(out, Sample{Name: mf.GetName(), Labels: labels, Value: v})
		}
	}
	return out, nil
}

func value(t dto.MetricType, m *dto.Metric) float64 {
	switch t {
	case dto.MetricType_COUNTER:
		return m.GetCounter().GetValue()
	case dto.MetricType_HISTOGRAM:
		return float64(m.GetHistogram().GetSampleCount())
	default:
		return 0
	}
}
