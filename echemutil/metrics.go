/*
Copyright © 2019 the echem authors.
This file is part of echem.

echem is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

echem is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with echem.  If not, see <http://www.gnu.org/licenses/>.
*/

package echemutil

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spatialmodel/echem"
)

// Metrics records the outcome and duration of model builds.
type Metrics struct {
	registry *prometheus.Registry
	builds   *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetrics returns build metrics held in their own registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		builds: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "echem",
			Name:      "model_builds_total",
			Help:      "Number of model builds by model family and result.",
		}, []string{"model", "result"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "echem",
			Name:      "model_build_duration_seconds",
			Help:      "Time taken to assemble and build a model.",
			Buckets:   prometheus.ExponentialBuckets(1e-4, 4, 8),
		}, []string{"model"}),
	}
	m.registry.MustRegister(m.builds, m.duration)
	return m
}

// result classifies a build error for the result label.
func result(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, echem.ErrInvalidOption):
		return "invalid_option"
	case errors.Is(err, echem.ErrUnsupportedConfiguration):
		return "unsupported"
	case errors.Is(err, echem.ErrMissingDependency):
		return "missing_dependency"
	case errors.Is(err, echem.ErrModelBuild):
		return "build_error"
	}
	return "error"
}

// Observe records one build of the given model family. A nil receiver
// records nothing.
func (m *Metrics) Observe(_ context.Context, model string, err error, duration time.Duration) {
	if m == nil {
		return
	}
	m.builds.WithLabelValues(model, result(err)).Inc()
	m.duration.WithLabelValues(model).Observe(duration.Seconds())
}

// WriteFile writes the metrics to filename in the Prometheus text format.
func (m *Metrics) WriteFile(filename string) error {
	return prometheus.WriteToTextfile(filename, m.registry)
}
