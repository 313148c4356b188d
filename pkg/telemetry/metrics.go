/*
Copyright 2025.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package telemetry

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	otelmetric "go.opentelemetry.io/otel/metric"
)

// store operations are sub-millisecond in memory and a few ms against redis
var durationBuckets = []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1}

type MetricOptions struct {
	Name        string
	Description string
	Unit        string
	Buckets     []float64
}

type Counter struct {
	counter otelmetric.Int64Counter
}

func NewCounter(meter otelmetric.Meter, opts MetricOptions) (*Counter, error) {
	counter, err := meter.Int64Counter(
		opts.Name,
		otelmetric.WithDescription(opts.Description),
		otelmetric.WithUnit(opts.Unit),
	)
	if err != nil {
		return nil, err
	}

	return &Counter{counter: counter}, nil
}

func (c *Counter) Inc(ctx context.Context, attrs ...attribute.KeyValue) {
	c.counter.Add(ctx, 1, otelmetric.WithAttributes(attrs...))
}

type Histogram struct {
	histogram otelmetric.Float64Histogram
}

func NewHistogram(meter otelmetric.Meter, opts MetricOptions) (*Histogram, error) {
	histOpts := []otelmetric.Float64HistogramOption{
		otelmetric.WithDescription(opts.Description),
		otelmetric.WithUnit(opts.Unit),
	}
	if len(opts.Buckets) > 0 {
		histOpts = append(histOpts, otelmetric.WithExplicitBucketBoundaries(opts.Buckets...))
	}

	histogram, err := meter.Float64Histogram(opts.Name, histOpts...)
	if err != nil {
		return nil, err
	}

	return &Histogram{histogram: histogram}, nil
}

// ObserveSince records the seconds elapsed since start.
func (h *Histogram) ObserveSince(ctx context.Context, start time.Time, attrs ...attribute.KeyValue) {
	h.histogram.Record(ctx, time.Since(start).Seconds(), otelmetric.WithAttributes(attrs...))
}
