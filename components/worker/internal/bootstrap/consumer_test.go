// Copyright (c) 2026 Lerian Studio. All rights reserved.
// Use of this source code is governed by the Elastic License 2.0
// that can be found in the LICENSE file.

package bootstrap

import (
	"context"
	"errors"
	"os"
	"sync"
	"syscall"
	"testing"
	"time"

	"github.com/LerianStudio/condo-docs/components/worker/internal/services"
	"github.com/LerianStudio/condo-docs/pkg"
	pkgRabbitmq "github.com/LerianStudio/condo-docs/pkg/rabbitmq"
	"github.com/LerianStudio/condo-docs/pkg/redis"

	"github.com/LerianStudio/lib-commons/v3/commons/log"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.uber.org/mock/gomock"
)

func TestMultiQueueConsumer_HandlerGenerateBatch_ErrorClassification(t *testing.T) {
	t.Parallel()

	validBody := []byte(`{"batchId":"` + uuid.NewString() + `","templateId":"` + uuid.NewString() + `","sendMethod":"download","subjects":[]}`)

	tests := []struct {
		name               string
		body               []byte
		mockSetup          func(ctrl *gomock.Controller) *services.UseCase
		expectErr          bool
		expectedSpanStatus codes.Code
	}{
		{
			name: "Error - Business error (missing ids) should keep span status OK",
			body: []byte(`{}`),
			mockSetup: func(ctrl *gomock.Controller) *services.UseCase {
				return &services.UseCase{BatchRepo: redis.NewMockBatchRepository(ctrl)}
			},
			expectErr:          true,
			expectedSpanStatus: codes.Unset,
		},
		{
			name: "Error - Technical error (lock store down) should set span status to ERROR",
			body: validBody,
			mockSetup: func(ctrl *gomock.Controller) *services.UseCase {
				batchRepo := redis.NewMockBatchRepository(ctrl)
				batchRepo.EXPECT().
					AcquireLock(gomock.Any(), gomock.Any(), "worker-1").
					Return(false, errors.New("dial tcp: connection refused"))

				return &services.UseCase{BatchRepo: batchRepo, Owner: "worker-1"}
			},
			expectErr:          true,
			expectedSpanStatus: codes.Error,
		},
		{
			name: "Success - Batch already taken is skipped",
			body: validBody,
			mockSetup: func(ctrl *gomock.Controller) *services.UseCase {
				batchRepo := redis.NewMockBatchRepository(ctrl)
				batchRepo.EXPECT().
					AcquireLock(gomock.Any(), gomock.Any(), "worker-1").
					Return(false, nil)

				return &services.UseCase{BatchRepo: batchRepo, Owner: "worker-1"}
			},
			expectedSpanStatus: codes.Unset,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)

			exporter := tracetest.NewInMemoryExporter()
			tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
			defer func() { _ = tp.Shutdown(context.Background()) }()

			ctx := pkg.ContextWithTracer(
				pkg.ContextWithLogger(
					pkg.ContextWithRequestID(context.Background(), "test-request-id"),
					&log.NoneLogger{},
				),
				tp.Tracer("test"),
			)

			mq := &MultiQueueConsumer{
				UseCase: tt.mockSetup(ctrl),
				logger:  &log.NoneLogger{},
			}

			err := mq.handlerGenerateBatch(ctx, tt.body)
			if tt.expectErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}

			require.NoError(t, tp.ForceFlush(context.Background()))

			spans := exporter.GetSpans()

			var (
				handlerSpan tracetest.SpanStub
				found       bool
			)

			for _, s := range spans {
				if s.Name == "consumer.handler_generate_batch" {
					handlerSpan = s
					found = true

					break
				}
			}

			require.True(t, found, "expected span consumer.handler_generate_batch, got spans: %v", spanNames(spans))
			assert.Equal(t, tt.expectedSpanStatus, handlerSpan.Status.Code,
				"span status code mismatch (description: %s)", handlerSpan.Status.Description)
		})
	}
}

func TestNewMultiQueueConsumer_RegistersQueue(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)

	routes := pkgRabbitmq.NewMockConsumerRepository(ctrl)
	routes.EXPECT().Register("condo-docs.generate-batch.queue", gomock.Any()).Times(1)

	mq := NewMultiQueueConsumer(routes, &services.UseCase{}, "condo-docs.generate-batch.queue", &log.NoneLogger{})

	assert.NotNil(t, mq)
}

func TestMultiQueueConsumer_Run(t *testing.T) {
	t.Parallel()

	t.Run("returns the consumer start error", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)

		routes := pkgRabbitmq.NewMockConsumerRepository(ctrl)
		routes.EXPECT().RunConsumers(gomock.Any(), gomock.Any()).Return(errors.New("channel closed"))

		mq := &MultiQueueConsumer{consumerRoutes: routes, logger: &log.NoneLogger{}}

		assert.EqualError(t, mq.run(make(chan os.Signal)), "channel closed")
	})

	t.Run("signal stops workers and waits for them", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)

		var stopped bool

		routes := pkgRabbitmq.NewMockConsumerRepository(ctrl)
		routes.EXPECT().
			RunConsumers(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, wg *sync.WaitGroup) error {
				wg.Add(1)

				go func() {
					defer wg.Done()

					<-ctx.Done()
					time.Sleep(10 * time.Millisecond)

					stopped = true
				}()

				return nil
			})

		mq := &MultiQueueConsumer{consumerRoutes: routes, logger: &log.NoneLogger{}}

		stop := make(chan os.Signal, 1)
		stop <- syscall.SIGTERM

		require.NoError(t, mq.run(stop))
		assert.True(t, stopped)
	})
}

// spanNames is a test helper that extracts span names for diagnostic messages.
func spanNames(spans []tracetest.SpanStub) []string {
	names := make([]string, len(spans))
	for i, s := range spans {
		names[i] = s.Name
	}

	return names
}
