// Copyright (c) 2026 Lerian Studio. All rights reserved.
// Use of this source code is governed by the Elastic License 2.0
// that can be found in the LICENSE file.

package pkg

import (
	"context"
	"testing"

	"github.com/LerianStudio/lib-commons/v3/commons/log"

	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/trace/noop"
)

func TestNewTrackingFromContext_Defaults(t *testing.T) {
	t.Parallel()

	logger, tracer, requestID := NewTrackingFromContext(context.Background())

	assert.IsType(t, &log.NoneLogger{}, logger)
	assert.IsType(t, noop.Tracer{}, tracer)
	assert.Empty(t, requestID)
}

func TestContextWith_AccumulatesValues(t *testing.T) {
	t.Parallel()

	logger := &log.NoneLogger{}
	tracer := noop.NewTracerProvider().Tracer("test")

	ctx := ContextWithLogger(context.Background(), logger)
	ctx = ContextWithTracer(ctx, tracer)
	ctx = ContextWithRequestID(ctx, "req-42")

	gotLogger, gotTracer, gotID := NewTrackingFromContext(ctx)

	assert.Same(t, logger, gotLogger)
	assert.Equal(t, tracer, gotTracer)
	assert.Equal(t, "req-42", gotID)
}

func TestContextWithRequestID_DoesNotMutateParent(t *testing.T) {
	t.Parallel()

	parent := ContextWithRequestID(context.Background(), "parent")
	child := ContextWithRequestID(parent, "child")

	assert.Equal(t, "parent", NewRequestIDFromContext(parent))
	assert.Equal(t, "child", NewRequestIDFromContext(child))
}
