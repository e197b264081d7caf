// Copyright (c) 2026 Lerian Studio. All rights reserved.
// Use of this source code is governed by the Elastic License 2.0
// that can be found in the LICENSE file.

package bootstrap

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/LerianStudio/condo-docs/components/worker/internal/services"
	"github.com/LerianStudio/condo-docs/pkg"
	pkgRabbitmq "github.com/LerianStudio/condo-docs/pkg/rabbitmq"

	libCommons "github.com/LerianStudio/lib-commons/v3/commons"
	"github.com/LerianStudio/lib-commons/v3/commons/log"
	libOpentelemetry "github.com/LerianStudio/lib-commons/v3/commons/opentelemetry"
	"go.opentelemetry.io/otel/attribute"
)

// MultiQueueConsumer represents a multi-queue consumer.
type MultiQueueConsumer struct {
	consumerRoutes pkgRabbitmq.ConsumerRepository
	UseCase        *services.UseCase
	logger         log.Logger
}

// NewMultiQueueConsumer create a new instance of MultiQueueConsumer and registers
// the batch generation handler on queue.
func NewMultiQueueConsumer(routes pkgRabbitmq.ConsumerRepository, useCase *services.UseCase, queue string, logger log.Logger) *MultiQueueConsumer {
	consumer := &MultiQueueConsumer{
		consumerRoutes: routes,
		UseCase:        useCase,
		logger:         logger,
	}

	routes.Register(queue, consumer.handlerGenerateBatch)

	return consumer
}

// Run starts consumers for all registered queues and blocks until an interrupt
// signal arrives and every in-flight message is settled.
func (mq *MultiQueueConsumer) Run(_ *libCommons.Launcher) error {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)

	defer signal.Stop(sigs)

	return mq.run(sigs)
}

func (mq *MultiQueueConsumer) run(stop <-chan os.Signal) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	wg := &sync.WaitGroup{}

	go func() {
		select {
		case sig := <-stop:
			mq.logger.Infof("Received %v, stopping consumers", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	if err := mq.consumerRoutes.RunConsumers(ctx, wg); err != nil {
		return err
	}

	wg.Wait()

	return nil
}

// handlerGenerateBatch processes messages from the generate batch queue.
func (mq *MultiQueueConsumer) handlerGenerateBatch(ctx context.Context, body []byte) error {
	logger, tracer, reqId := pkg.NewTrackingFromContext(ctx)

	ctx, span := tracer.Start(ctx, "consumer.handler_generate_batch")
	defer span.End()

	span.SetAttributes(attribute.String("app.request.request_id", reqId))

	logger.Info("Processing message from generate batch queue")

	if err := mq.UseCase.GenerateBatch(ctx, body); err != nil {
		if pkg.IsBusinessError(err) {
			libOpentelemetry.HandleSpanBusinessErrorEvent(&span, "Batch rejected", err)
		} else {
			libOpentelemetry.HandleSpanError(&span, "Error generating batch", err)
		}

		logger.Errorf("Error generating batch: %v", err)

		return err
	}

	return nil
}
