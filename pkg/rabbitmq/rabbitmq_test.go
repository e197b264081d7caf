// Copyright (c) 2026 Lerian Studio. All rights reserved.
// Use of this source code is governed by the Elastic License 2.0
// that can be found in the LICENSE file.

package rabbitmq

import (
	"context"
	"testing"

	"github.com/LerianStudio/condo-docs/pkg/constant"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

func TestRetryCount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		headers amqp.Table
		want    int
	}{
		{name: "nil headers", headers: nil, want: 0},
		{name: "missing header", headers: amqp.Table{"other": 4}, want: 0},
		{name: "int", headers: amqp.Table{constant.RetryCountHeader: 3}, want: 3},
		{name: "int32", headers: amqp.Table{constant.RetryCountHeader: int32(2)}, want: 2},
		{name: "int64", headers: amqp.Table{constant.RetryCountHeader: int64(4)}, want: 4},
		{name: "float64", headers: amqp.Table{constant.RetryCountHeader: float64(1)}, want: 1},
		{name: "negative", headers: amqp.Table{constant.RetryCountHeader: int32(-2)}, want: 0},
		{name: "string", headers: amqp.Table{constant.RetryCountHeader: "3"}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, RetryCount(tt.headers))
		})
	}
}

func TestWithRetryCount_DoesNotMutate(t *testing.T) {
	t.Parallel()

	original := amqp.Table{constant.RetryCountHeader: int32(1), constant.RequestIDHeader: "req-1"}

	next := WithRetryCount(original, 2)

	assert.Equal(t, 1, RetryCount(original))
	assert.Equal(t, 2, RetryCount(next))
	assert.Equal(t, "req-1", RequestID(next))
}

func TestNewHeaders(t *testing.T) {
	t.Parallel()

	headers := NewHeaders(context.Background(), "req-42")

	assert.Equal(t, "req-42", RequestID(headers))
	assert.Equal(t, 0, RetryCount(headers))
	require.NoError(t, headers.Validate())
}

func TestTracePropagation(t *testing.T) {
	t.Parallel()

	tp := sdktrace.NewTracerProvider()
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	ctx, span := tp.Tracer("test").Start(context.Background(), "publish")
	defer span.End()

	propagator := propagation.TraceContext{}
	headers := amqp.Table{}
	propagator.Inject(ctx, HeaderCarrier(headers))

	assert.NotEmpty(t, HeaderCarrier(headers).Get("traceparent"))
	assert.Contains(t, HeaderCarrier(headers).Keys(), "traceparent")

	extracted := propagator.Extract(context.Background(), HeaderCarrier(headers))
	assert.Equal(t, span.SpanContext().TraceID(), trace.SpanContextFromContext(extracted).TraceID())
}

func TestHeaderCarrier_NonString(t *testing.T) {
	t.Parallel()

	c := HeaderCarrier{"n": int32(1)}
	assert.Equal(t, "", c.Get("n"))
	assert.Equal(t, "", c.Get("missing"))
}

func TestExtractTraceContext_NilHeaders(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	assert.Equal(t, ctx, ExtractTraceContext(ctx, nil))
}

func TestDeadLetterQueue(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "condo-docs.batch.dlq", DeadLetterQueue("condo-docs.batch"))
}
