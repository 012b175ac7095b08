// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package xmetrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

var errNoName = errors.New("a name is required for a metric")

// Metric describes a single counter that will be preregistered.
type Metric struct {
	// Name is the required name of this metric.
	Name string `json:"name"`

	// Namespace is optional.  The enclosing Options' Namespace is used if this is not supplied.
	Namespace string `json:"namespace"`

	// Subsystem is optional.  The enclosing Options' Subsystem is used if this is not supplied.
	Subsystem string `json:"subsystem"`

	// Help is the help string for this metric.  If not supplied, the metric's name is used.
	Help string `json:"help"`

	// ConstLabels are the Prometheus ConstLabels for this metric.
	ConstLabels map[string]string `json:"constLabels"`
}

// counterOpts produces the Prometheus options for this metric, filling in defaults
func (m Metric) counterOpts(namespace, subsystem string) (prometheus.CounterOpts, error) {
	if len(m.Name) == 0 {
		return prometheus.CounterOpts{}, errNoName
	}

	opts := prometheus.CounterOpts{
		Namespace:   m.Namespace,
		Subsystem:   m.Subsystem,
		Name:        m.Name,
		Help:        m.Help,
		ConstLabels: prometheus.Labels(m.ConstLabels),
	}

	if len(opts.Namespace) == 0 {
		opts.Namespace = namespace
	}

	if len(opts.Subsystem) == 0 {
		opts.Subsystem = subsystem
	}

	if len(opts.Help) == 0 {
		opts.Help = m.Name
	}

	return opts, nil
}
