package promobs

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"slices"
	"strings"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	dto "github.com/prometheus/client_model/go"
	"github.com/prometheus/common/expfmt"

	"github.com/leofalp/medcalc/providers/observability"
)

// DefaultBuckets are histogram upper bounds in seconds, sized for
// sub-millisecond formula evaluations. prometheus.DefBuckets starts at 5ms,
// which would put every sample in the first bucket.
var DefaultBuckets = []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1}

// Registry adapts a prometheus.Registry to [observability.Metrics]. Counter
// and histogram vectors are created on first use; the label names of a
// metric are fixed by the attributes of its first sample.
type Registry struct {
	reg     *prometheus.Registry
	buckets []float64

	mu         sync.Mutex
	help       map[string]string
	counters   map[string]*vector[*prometheus.CounterVec]
	histograms map[string]*vector[*prometheus.HistogramVec]
}

var (
	_ observability.Metrics = (*Registry)(nil)
	_ prometheus.Gatherer   = (*Registry)(nil)
)

// NewRegistry returns an empty registry using DefaultBuckets.
func NewRegistry() *Registry {
	return &Registry{
		reg:        prometheus.NewRegistry(),
		buckets:    DefaultBuckets,
		help:       make(map[string]string),
		counters:   make(map[string]*vector[*prometheus.CounterVec]),
		histograms: make(map[string]*vector[*prometheus.HistogramVec]),
	}
}

// SetHelp sets the HELP text of a metric. It only applies to metrics that
// have not recorded a sample yet.
func (r *Registry) SetHelp(name, help string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.help[name] = help
}

func (r *Registry) helpFor(name string) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if help, ok := r.help[name]; ok {
		return help
	}
	return name
}

// Counter returns the counter with the given name.
func (r *Registry) Counter(name string) observability.Counter {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.counters[name]
	if !ok {
		v = &vector[*prometheus.CounterVec]{reg: r.reg, create: func(labels []string) *prometheus.CounterVec {
			return prometheus.NewCounterVec(prometheus.CounterOpts{Name: name, Help: r.helpFor(name)}, labels)
		}}
		r.counters[name] = v
	}
	return counter{v}
}

// Histogram returns the histogram with the given name.
func (r *Registry) Histogram(name string) observability.Histogram {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.histograms[name]
	if !ok {
		v = &vector[*prometheus.HistogramVec]{reg: r.reg, create: func(labels []string) *prometheus.HistogramVec {
			return prometheus.NewHistogramVec(prometheus.HistogramOpts{
				Name:    name,
				Help:    r.helpFor(name),
				Buckets: r.buckets,
			}, labels)
		}}
		r.histograms[name] = v
	}
	return histogram{v}
}

// Gather implements prometheus.Gatherer. Families are sorted by name.
func (r *Registry) Gather() ([]*dto.MetricFamily, error) {
	return r.reg.Gather()
}

// WriteText renders every metric family in the Prometheus text format.
func (r *Registry) WriteText(w io.Writer) error {
	families, err := r.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("write metric family %s: %w", mf.GetName(), err)
		}
	}
	return nil
}

// Handler serves the exposition of this registry.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{})
}

type counter struct {
	v *vector[*prometheus.CounterVec]
}

func (c counter) Add(_ context.Context, value int64, attrs ...observability.Attribute) {
	// Prometheus counters only go up.
	if value < 0 {
		return
	}
	values := labelValues(attrs)
	if vec, labels := c.v.get(values); vec != nil {
		vec.With(labels).Add(float64(value))
	}
}

type histogram struct {
	v *vector[*prometheus.HistogramVec]
}

func (h histogram) Record(_ context.Context, value float64, attrs ...observability.Attribute) {
	values := labelValues(attrs)
	if vec, labels := h.v.get(values); vec != nil {
		vec.With(labels).Observe(value)
	}
}

// vector creates and registers its collector lazily, once the label names
// are known.
type vector[V prometheus.Collector] struct {
	reg    *prometheus.Registry
	create func(labels []string) V

	mu     sync.Mutex
	done   bool
	vec    V
	ok     bool
	labels []string
}

// get returns the collector and the label set for values. Labels missing
// from values are empty; values with no matching label are dropped. The
// collector is nil when it could not be registered.
func (v *vector[V]) get(values map[string]string) (V, prometheus.Labels) {
	v.mu.Lock()
	if !v.done {
		v.done = true
		v.labels = make([]string, 0, len(values))
		for name := range values {
			v.labels = append(v.labels, name)
		}
		slices.Sort(v.labels)
		v.vec = v.create(v.labels)
		v.ok = v.reg.Register(v.vec) == nil
	}
	vec, ok, names := v.vec, v.ok, v.labels
	v.mu.Unlock()

	if !ok {
		var zero V
		return zero, nil
	}
	labels := make(prometheus.Labels, len(names))
	for _, name := range names {
		labels[name] = values[name]
	}
	return vec, labels
}

func labelValues(attrs []observability.Attribute) map[string]string {
	values := make(map[string]string, len(attrs))
	for _, attr := range attrs {
		values[labelName(attr.Key)] = fmt.Sprint(attr.Value)
	}
	return values
}

func labelName(key string) string {
	var b strings.Builder
	for i, r := range key {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
			b.WriteRune(r)
		case r >= '0' && r <= '9' && i > 0:
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
