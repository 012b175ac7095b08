// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package xmetrics

import "github.com/prometheus/client_golang/prometheus"

const (
	DefaultNamespace = "cadence"
)

// Options is the configurable options for creating a Registry
type Options struct {
	// Namespace is the global default namespace for metrics which don't define a namespace
	Namespace string `json:"namespace"`

	// Subsystem is the global default subsystem for metrics which don't define a subsystem.
	// There is no default subsystem.
	Subsystem string `json:"subsystem"`

	// Pedantic controls whether a pedantic Registerer is used as the prometheus backend.
	Pedantic bool `json:"pedantic"`

	// Metrics is the list of counters to preregister.
	Metrics []Metric `json:"metrics"`
}

func (o *Options) namespace() string {
	if o != nil && len(o.Namespace) > 0 {
		return o.Namespace
	}

	return DefaultNamespace
}

func (o *Options) subsystem() string {
	if o != nil {
		return o.Subsystem
	}

	return ""
}

func (o *Options) metrics() []Metric {
	if o != nil {
		return o.Metrics
	}

	return nil
}

func (o *Options) registry() *prometheus.Registry {
	if o != nil && o.Pedantic {
		return prometheus.NewPedanticRegistry()
	}

	return prometheus.NewRegistry()
}
