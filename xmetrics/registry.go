// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package xmetrics

import (
	"fmt"
	"sync"

	"github.com/go-kit/kit/metrics"
	gokitprometheus "github.com/go-kit/kit/metrics/prometheus"
	"github.com/prometheus/client_golang/prometheus"
)

// Registry is a Prometheus registry that also hands out go-kit counters.
//
// NewCounter returns a new go-kit wrapper for any preregistered metric.  Names that were
// not preregistered produce ad hoc counters, which are cached and returned by subsequent calls.
type Registry interface {
	prometheus.Gatherer
	prometheus.Registerer

	NewCounterVec(name string) *prometheus.CounterVec
	NewCounter(name string) metrics.Counter
}

type registry struct {
	*prometheus.Registry

	namespace string
	subsystem string

	lock  sync.Mutex
	cache map[string]*prometheus.CounterVec
}

func (r *registry) register(m Metric) (*prometheus.CounterVec, error) {
	opts, err := m.counterOpts(r.namespace, r.subsystem)
	if err != nil {
		return nil, err
	}

	counterVec := prometheus.NewCounterVec(opts, []string{})
	if err := r.Registry.Register(counterVec); err != nil {
		if already, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := already.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing, nil
			}
		}

		return nil, fmt.Errorf("error while registering metric %s: %w", m.Name, err)
	}

	return counterVec, nil
}

func (r *registry) NewCounterVec(name string) *prometheus.CounterVec {
	r.lock.Lock()
	defer r.lock.Unlock()

	if existing, ok := r.cache[name]; ok {
		return existing
	}

	counterVec, err := r.register(Metric{Name: name})
	if err != nil {
		panic(err)
	}

	r.cache[name] = counterVec
	return counterVec
}

func (r *registry) NewCounter(name string) metrics.Counter {
	return gokitprometheus.NewCounter(r.NewCounterVec(name))
}

// NewRegistry creates a Registry and preregisters each configured metric.  The options can be nil.
func NewRegistry(o *Options) (Registry, error) {
	r := &registry{
		Registry:  o.registry(),
		namespace: o.namespace(),
		subsystem: o.subsystem(),
		cache:     make(map[string]*prometheus.CounterVec),
	}

	for _, m := range o.metrics() {
		if _, ok := r.cache[m.Name]; ok {
			return nil, fmt.Errorf("duplicate metric %s", m.Name)
		}

		counterVec, err := r.register(m)
		if err != nil {
			return nil, err
		}

		r.cache[m.Name] = counterVec
	}

	return r, nil
}
