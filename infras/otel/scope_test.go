package otel_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"folio/infras/otel"
	"folio/shared/failure"
)

func record(t *testing.T, fn func(scope otel.Scope)) trace.ReadOnlySpan {
	t.Helper()

	recorder := tracetest.NewSpanRecorder()
	provider := trace.NewTracerProvider(trace.WithSpanProcessor(recorder))

	_, span := provider.Tracer("test").Start(context.Background(), "span")
	scope := otel.NewScope(span)
	fn(scope)
	scope.End()

	spans := recorder.Ended()
	require.Len(t, spans, 1)

	return spans[0]
}

func attributes(span trace.ReadOnlySpan) map[attribute.Key]attribute.Value {
	values := map[attribute.Key]attribute.Value{}
	for _, kv := range span.Attributes() {
		values[kv.Key] = kv.Value
	}

	return values
}

func TestScope_TraceError(t *testing.T) {
	span := record(t, func(scope otel.Scope) {
		scope.TraceError(failure.StoreNotFoundError("article"))
	})

	assert.Equal(t, codes.Error, span.Status().Code)
	assert.Equal(t, "store.not_found", attributes(span)["error.category"].AsString())
	assert.Len(t, span.Events(), 1)
}

func TestScope_TraceIfError(t *testing.T) {
	span := record(t, func(scope otel.Scope) {
		scope.TraceIfError(nil)
	})

	assert.Equal(t, codes.Unset, span.Status().Code)
	assert.Empty(t, span.Events())

	span = record(t, func(scope otel.Scope) {
		scope.TraceIfError(errors.New("boom"))
	})

	assert.Equal(t, "unknown", attributes(span)["error.category"].AsString())
}

func TestScope_SetAttributes(t *testing.T) {
	span := record(t, func(scope otel.Scope) {
		scope.SetAttributes(map[string]any{
			"draft.id":     "d1",
			"draft.images": 3,
			"upload.bytes": int64(2048),
			"upload.took":  1500 * time.Millisecond,
			"local":        true,
			"urls":         []string{"a", "b"},
		})
		scope.SetAttribute("ratio", 1.5)
	})

	values := attributes(span)

	assert.Equal(t, "d1", values["draft.id"].AsString())
	assert.Equal(t, int64(3), values["draft.images"].AsInt64())
	assert.Equal(t, int64(2048), values["upload.bytes"].AsInt64())
	assert.Equal(t, int64(1500), values["upload.took.ms"].AsInt64())
	assert.True(t, values["local"].AsBool())
	assert.Equal(t, []string{"a", "b"}, values["urls"].AsStringSlice())
	assert.InDelta(t, 1.5, values["ratio"].AsFloat64(), 0.001)
}
