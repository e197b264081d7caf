// Copyright (c) 2026 Lerian Studio. All rights reserved.
// Use of this source code is governed by the Elastic License 2.0
// that can be found in the LICENSE file.

package rabbitmq

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/LerianStudio/condo-docs/pkg"
	"github.com/LerianStudio/condo-docs/pkg/constant"
	pkgRabbitmq "github.com/LerianStudio/condo-docs/pkg/rabbitmq"

	"github.com/LerianStudio/lib-commons/v3/commons/log"
	libOpentelemetry "github.com/LerianStudio/lib-commons/v3/commons/opentelemetry"
	libRabbitmq "github.com/LerianStudio/lib-commons/v3/commons/rabbitmq"
	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// errHandlerPanic marks a message whose handler panicked. It is never retried.
var errHandlerPanic = errors.New("queue handler panicked")

// ConsumerRoutes dispatches the messages of registered queues to their handlers.
type ConsumerRoutes struct {
	conn       *libRabbitmq.RabbitMQConnection
	routes     map[string]pkgRabbitmq.QueueHandlerFunc
	numWorkers int
	log.Logger
	tracer trace.Tracer

	// sleep and republish are replaced in tests.
	sleep     func(time.Duration)
	republish func(ctx context.Context, queue string, msg amqp.Publishing) error
}

// Compile-time interface satisfaction check.
var _ pkgRabbitmq.ConsumerRepository = (*ConsumerRoutes)(nil)

// NewConsumerRoutes creates a new instance of ConsumerRoutes.
func NewConsumerRoutes(conn *libRabbitmq.RabbitMQConnection, numWorkers int, logger log.Logger, tracer trace.Tracer) (*ConsumerRoutes, error) {
	if numWorkers <= 0 {
		numWorkers = constant.DefaultWorkerCount
	}

	cr := &ConsumerRoutes{
		conn:       conn,
		routes:     make(map[string]pkgRabbitmq.QueueHandlerFunc),
		numWorkers: numWorkers,
		Logger:     logger,
		tracer:     tracer,
		sleep:      time.Sleep,
	}

	cr.republish = cr.publishToQueue

	if _, err := conn.GetNewConnect(); err != nil {
		return nil, fmt.Errorf("failed to connect to rabbitmq: %w", err)
	}

	return cr, nil
}

// Register add a new queue to handler.
func (cr *ConsumerRoutes) Register(queueName string, handler pkgRabbitmq.QueueHandlerFunc) {
	cr.routes[queueName] = handler
}

// RunConsumers starts numWorkers goroutines per registered queue. They stop when
// ctx is done or the delivery channel closes, and call wg.Done on exit.
func (cr *ConsumerRoutes) RunConsumers(ctx context.Context, wg *sync.WaitGroup) error {
	for queueName, handler := range cr.routes {
		cr.Infof("Starting consumer for queue %s (dead letter queue %s)", queueName, pkgRabbitmq.DeadLetterQueue(queueName))

		if err := cr.conn.EnsureChannel(); err != nil {
			return fmt.Errorf("failed to open channel for queue %s: %w", queueName, err)
		}

		if err := cr.conn.Channel.Qos(constant.DefaultPrefetchCount, 0, false); err != nil {
			return fmt.Errorf("failed to set qos for queue %s: %w", queueName, err)
		}

		messages, err := cr.conn.Channel.Consume(queueName, "", false, false, false, false, nil)
		if err != nil {
			return fmt.Errorf("failed to consume queue %s: %w", queueName, err)
		}

		cr.startWorkers(ctx, wg, messages, queueName, handler)
	}

	return nil
}

func (cr *ConsumerRoutes) startWorkers(ctx context.Context, wg *sync.WaitGroup, messages <-chan amqp.Delivery, queue string, handler pkgRabbitmq.QueueHandlerFunc) {
	for i := 0; i < cr.numWorkers; i++ {
		workerID := i

		wg.Add(1)

		pkg.GoNamed(cr.Logger, fmt.Sprintf("consumer-%s-%d", queue, workerID), func() {
			defer wg.Done()

			for {
				select {
				case <-ctx.Done():
					cr.Infof("Worker %d: Shutting down gracefully", workerID)
					return
				case message, ok := <-messages:
					if !ok {
						cr.Infof("Worker %d: Message channel closed", workerID)
						return
					}

					cr.processMessage(ctx, workerID, queue, handler, message)
				}
			}
		})
	}
}

// processMessage runs handler on one delivery and settles it.
func (cr *ConsumerRoutes) processMessage(ctx context.Context, workerID int, queue string, handler pkgRabbitmq.QueueHandlerFunc, message amqp.Delivery) {
	requestID := pkgRabbitmq.RequestID(message.Headers)
	if requestID == "" {
		requestID = uuid.NewString()
	}

	logger := cr.Logger.WithFields(constant.RequestIDHeader, requestID)

	ctx = pkg.ContextWithLogger(ctx, logger)
	ctx = pkg.ContextWithTracer(ctx, cr.tracer)
	ctx = pkg.ContextWithRequestID(ctx, requestID)
	ctx = pkgRabbitmq.ExtractTraceContext(ctx, message.Headers)

	ctx, span := cr.tracer.Start(ctx, "consumer.process_message")
	defer span.End()

	retryCount := pkgRabbitmq.RetryCount(message.Headers)

	span.SetAttributes(
		attribute.String("app.request.request_id", requestID),
		attribute.String("app.request.rabbitmq.queue", queue),
		attribute.Int("app.request.rabbitmq.retry_count", retryCount),
	)

	logger.Infof("Worker %d: Starting processing for queue %s (attempt %d)", workerID, queue, retryCount+1)

	err := pkg.RecoverAsError(logger, "queue handler "+queue, func() error {
		return handler(ctx, message.Body)
	}, func(recovered any) error {
		return fmt.Errorf("%w: %v", errHandlerPanic, recovered)
	})
	if err != nil {
		libOpentelemetry.HandleSpanError(&span, "Error processing message", err)

		logger.Errorf("Worker %d: Error processing message from queue %s: %v", workerID, queue, err)

		cr.handleFailedMessage(ctx, logger, queue, message, err, retryCount)

		return
	}

	if ackErr := message.Ack(false); ackErr != nil {
		logger.Errorf("Worker %d: Failed to ack message from queue %s: %v", workerID, queue, ackErr)
	}

	logger.Infof("Worker %d: Successfully processed message from queue %s", workerID, queue)
}

// handleFailedMessage republishes a retryable failure with an incremented retry count,
// or rejects it without requeue so the broker dead-letters it.
func (cr *ConsumerRoutes) handleFailedMessage(ctx context.Context, logger log.Logger, queue string, message amqp.Delivery, err error, retryCount int) {
	dlq := pkgRabbitmq.DeadLetterQueue(queue)

	if !isRetryable(err) {
		logger.Warnf("Non-retryable error for queue %s, routing to %s: %v", queue, dlq, err)
		cr.nack(logger, message, false)

		return
	}

	if retryCount >= constant.MaxMessageRetries {
		logger.Errorf("Max retries (%d) exceeded for queue %s, routing to %s: %v", constant.MaxMessageRetries, queue, dlq, err)
		cr.nack(logger, message, false)

		return
	}

	backoff := pkg.RedeliveryBackoff(retryCount)

	logger.Infof("Retryable error for queue %s (attempt %d/%d), retrying in %v: %v",
		queue, retryCount+1, constant.MaxMessageRetries, backoff, err)

	cr.sleep(backoff)

	retry := amqp.Publishing{
		ContentType:  message.ContentType,
		DeliveryMode: amqp.Persistent,
		Headers:      pkgRabbitmq.WithRetryCount(message.Headers, retryCount+1),
		Body:         message.Body,
	}

	if pubErr := cr.republish(ctx, queue, retry); pubErr != nil {
		logger.Errorf("Failed to republish message to queue %s, requeueing: %v", queue, pubErr)
		cr.nack(logger, message, true)

		return
	}

	if ackErr := message.Ack(false); ackErr != nil {
		logger.Errorf("Failed to ack retried message from queue %s: %v", queue, ackErr)
	}
}

func (cr *ConsumerRoutes) nack(logger log.Logger, message amqp.Delivery, requeue bool) {
	if err := message.Nack(false, requeue); err != nil {
		logger.Errorf("Failed to nack message: %v", err)
	}
}

// publishToQueue sends msg straight to queue through the default exchange.
func (cr *ConsumerRoutes) publishToQueue(ctx context.Context, queue string, msg amqp.Publishing) error {
	if err := cr.conn.EnsureChannel(); err != nil {
		return err
	}

	return cr.conn.Channel.PublishWithContext(ctx, "", queue, false, false, msg)
}

// isRetryable reports whether a failed message may succeed on a later attempt.
// Business errors and panics never do. Unknown errors are retried.
func isRetryable(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) || errors.Is(err, errHandlerPanic) {
		return false
	}

	return !pkg.IsBusinessError(err)
}
