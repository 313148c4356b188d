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
	"sync"
	"time"

	otelmetric "go.opentelemetry.io/otel/metric"
)

var (
	storeMetrics     *StoreMetrics
	storeMetricsOnce sync.Once
)

// StoreMetrics counts record operations and tolerated integrity drift.
// A nil *StoreMetrics is valid and records nothing.
type StoreMetrics struct {
	OperationTotal *Counter
	ErrorTotal     *Counter
	DriftTotal     *Counter
	Duration       *Histogram
}

// NewStoreMetrics registers the store instruments on meter.
func NewStoreMetrics(meter otelmetric.Meter) (*StoreMetrics, error) {
	operationTotal, err := NewCounter(meter, MetricOptions{
		Name:        BuildMetricName("operation", MetricNameSuffixTotal),
		Description: "total number of record operations handled, by kind and operation",
		Unit:        "1",
	})
	if err != nil {
		return nil, err
	}

	errorTotal, err := NewCounter(meter, MetricOptions{
		Name: BuildMetricName("operation_error", MetricNameSuffixTotal),
		Description: "total number of record operations that returned an error. " +
			"error_kind separates client errors (not_found, conflict, validation) from internal ones",
		Unit: "1",
	})
	if err != nil {
		return nil, err
	}

	driftTotal, err := NewCounter(meter, MetricOptions{
		Name: BuildMetricName("integrity_drift", MetricNameSuffixTotal),
		Description: "index or relation entries found pointing at records that no longer exist. " +
			"these are skipped on read and left in storage",
		Unit: "1",
	})
	if err != nil {
		return nil, err
	}

	duration, err := NewHistogram(meter, MetricOptions{
		Name:        BuildMetricName("operation", MetricNameSuffixDuration),
		Description: "latency of record operations",
		Unit:        "s",
		Buckets:     durationBuckets,
	})
	if err != nil {
		return nil, err
	}

	return &StoreMetrics{
		OperationTotal: operationTotal,
		ErrorTotal:     errorTotal,
		DriftTotal:     driftTotal,
		Duration:       duration,
	}, nil
}

// InitStoreMetrics registers the process-wide store metrics once.
func InitStoreMetrics(meter otelmetric.Meter) error {
	var initErr error
	storeMetricsOnce.Do(func() {
		storeMetrics, initErr = NewStoreMetrics(meter)
	})
	return initErr
}

func GetStoreMetrics() *StoreMetrics {
	return storeMetrics
}

// RecordOperation counts one finished operation. errKind is empty on success.
func (sm *StoreMetrics) RecordOperation(ctx context.Context, kind, operation, errKind string, start time.Time) {
	if sm == nil {
		return
	}

	status := StatusSuccess
	if errKind != "" {
		status = StatusError
	}
	sm.OperationTotal.Inc(ctx, WithKind(kind), WithOperation(operation), WithStatus(status))
	sm.Duration.ObserveSince(ctx, start, WithKind(kind), WithOperation(operation))
	if errKind != "" {
		sm.ErrorTotal.Inc(ctx, WithKind(kind), WithOperation(operation), WithErrorKind(errKind))
	}
}

func (sm *StoreMetrics) RecordIntegrityDrift(ctx context.Context, kind, reason string) {
	if sm == nil {
		return
	}
	sm.DriftTotal.Inc(ctx, WithKind(kind), WithReason(reason))
}
