package telemetry

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func setupMetrics(t *testing.T) (*StoreMetrics, *metric.ManualReader) {
	t.Helper()
	reader := metric.NewManualReader()
	provider := metric.NewMeterProvider(metric.WithReader(reader))
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })

	sm, err := NewStoreMetrics(provider.Meter("test"))
	require.NoError(t, err)
	return sm, reader
}

func collectSum(t *testing.T, reader *metric.ManualReader, name string) metricdata.Sum[int64] {
	t.Helper()
	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	for _, scope := range rm.ScopeMetrics {
		for _, m := range scope.Metrics {
			if m.Name == name {
				sum, ok := m.Data.(metricdata.Sum[int64])
				require.True(t, ok, "metric %s is not an int64 sum", name)
				return sum
			}
		}
	}
	t.Fatalf("metric %s not collected", name)
	return metricdata.Sum[int64]{}
}

func TestStoreMetrics_RecordOperation(t *testing.T) {
	sm, reader := setupMetrics(t)
	ctx := context.Background()

	sm.RecordOperation(ctx, "company", "create", "", time.Now())
	sm.RecordOperation(ctx, "company", "create", "conflict", time.Now())

	ops := collectSum(t, reader, "bookroster_operation_total")
	var total int64
	for _, dp := range ops.DataPoints {
		total += dp.Value
	}
	assert.Equal(t, int64(2), total)

	errs := collectSum(t, reader, "bookroster_operation_error_total")
	require.Len(t, errs.DataPoints, 1)
	assert.Equal(t, int64(1), errs.DataPoints[0].Value)
	kind, ok := errs.DataPoints[0].Attributes.Value(attribute.Key(AttrErrorKind))
	require.True(t, ok)
	assert.Equal(t, "conflict", kind.AsString())
}

func TestStoreMetrics_RecordIntegrityDrift(t *testing.T) {
	sm, reader := setupMetrics(t)

	sm.RecordIntegrityDrift(context.Background(), "book", "stale_reading_list_entry")

	drift := collectSum(t, reader, "bookroster_integrity_drift_total")
	require.Len(t, drift.DataPoints, 1)
	assert.Equal(t, int64(1), drift.DataPoints[0].Value)
}

func TestStoreMetrics_NilIsNoop(t *testing.T) {
	var sm *StoreMetrics
	assert.NotPanics(t, func() {
		sm.RecordOperation(context.Background(), "admin", "get", "", time.Now())
		sm.RecordIntegrityDrift(context.Background(), "admin", "ghost_index_entry")
	})
}

func TestNormalizeEndpoint(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"localhost:4318", "localhost:4318"},
		{"http://collector:4318/v1/metrics", "collector:4318"},
		{" HTTPS://Collector:4318?x=1 ", "collector:4318"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, normalizeEndpoint(tt.in), tt.in)
	}
}

func TestBuildMetricName(t *testing.T) {
	assert.Equal(t, "bookroster_operation_total", BuildMetricName("operation", MetricNameSuffixTotal))
	assert.Equal(t, "bookroster_operation", BuildMetricName("operation", ""))
}
