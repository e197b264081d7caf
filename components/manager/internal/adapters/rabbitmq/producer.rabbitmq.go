// Copyright (c) 2026 Lerian Studio. All rights reserved.
// Use of this source code is governed by the Elastic License 2.0
// that can be found in the LICENSE file.

package rabbitmq

import (
	"context"
	"encoding/json"
	"time"

	"github.com/LerianStudio/condo-docs/pkg"
	"github.com/LerianStudio/condo-docs/pkg/constant"
	"github.com/LerianStudio/condo-docs/pkg/model"
	pkgRabbitmq "github.com/LerianStudio/condo-docs/pkg/rabbitmq"

	libOpentelemetry "github.com/LerianStudio/lib-commons/v3/commons/opentelemetry"
	libRabbitmq "github.com/LerianStudio/lib-commons/v3/commons/rabbitmq"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.opentelemetry.io/otel/attribute"
)

// sleepFunc is the function used for sleeping between retries.
// Overridable in tests for deterministic behavior.
var sleepFunc = time.Sleep

// ProducerRabbitMQRepository is a rabbitmq implementation of the producer
type ProducerRabbitMQRepository struct {
	conn *libRabbitmq.RabbitMQConnection
}

// Compile-time interface satisfaction check.
var _ pkgRabbitmq.ProducerRepository = (*ProducerRabbitMQRepository)(nil)

// NewProducerRabbitMQ returns a new instance of ProducerRabbitMQRepository using the given rabbitmq connection.
// Connection is established lazily on first use to avoid panic during initialization.
func NewProducerRabbitMQ(c *libRabbitmq.RabbitMQConnection) *ProducerRabbitMQRepository {
	prmq := &ProducerRabbitMQRepository{
		conn: c,
	}

	_, err := c.GetNewConnect()
	if err != nil {
		c.Logger.Errorf("Failed to connect to RabbitMQ during initialization: %v", err)
		c.Logger.Warn("RabbitMQ connection will be retried on first message publish")
	} else {
		c.Logger.Info("RabbitMQ producer connected successfully")
	}

	return prmq
}

// IsHealthy reports whether the underlying connection is open.
func (prmq *ProducerRabbitMQRepository) IsHealthy() bool {
	if prmq.conn == nil || !prmq.conn.Connected || prmq.conn.Connection == nil {
		return false
	}

	return !prmq.conn.Connection.IsClosed()
}

// PublishBatch publishes a batch generation request. On each attempt it calls
// EnsureChannel() to restore the channel if the connection dropped, then publishes.
// Retries up to ProducerMaxRetries with exponential backoff and full jitter.
func (prmq *ProducerRabbitMQRepository) PublishBatch(ctx context.Context, exchange, key string, msg model.BatchMessage) error {
	logger, tracer, reqId := pkg.NewTrackingFromContext(ctx)

	ctx, spanProducer := tracer.Start(ctx, "repository.rabbitmq.publish_batch")
	defer spanProducer.End()

	spanProducer.SetAttributes(
		attribute.String("app.request.request_id", reqId),
		attribute.String("app.request.exchange", exchange),
		attribute.String("app.request.key", key),
		attribute.String("app.batch.id", msg.BatchID.String()),
		attribute.Int("app.batch.subjects", len(msg.Subjects)),
	)

	body, err := json.Marshal(msg)
	if err != nil {
		libOpentelemetry.HandleSpanError(&spanProducer, "Failed to marshal batch message", err)

		logger.Errorf("Failed to marshal batch message: %v", err)

		return err
	}

	headers := pkgRabbitmq.NewHeaders(ctx, reqId)

	backoff := constant.ProducerInitialBackoff

	var publishErr error

	for attempt := 0; attempt <= constant.ProducerMaxRetries; attempt++ {
		if chanErr := prmq.conn.EnsureChannel(); chanErr != nil {
			logger.Errorf("EnsureChannel failed (attempt %d/%d): %v", attempt+1, constant.ProducerMaxRetries+1, chanErr)

			spanProducer.SetAttributes(attribute.Int("app.request.rabbitmq.retry_attempt", attempt))

			if attempt == constant.ProducerMaxRetries {
				libOpentelemetry.HandleSpanError(&spanProducer, "Failed to ensure RabbitMQ channel after all retries", chanErr)

				return chanErr
			}

			sleepDuration := pkg.FullJitter(backoff)

			logger.Infof("Retrying EnsureChannel in %v (attempt %d/%d)", sleepDuration, attempt+1, constant.ProducerMaxRetries+1)

			sleepFunc(sleepDuration)

			backoff = pkg.NextBackoff(backoff)

			continue
		}

		publishErr = prmq.conn.Channel.Publish(
			exchange,
			key,
			false,
			false,
			amqp.Publishing{
				ContentType:  constant.ContentTypeJSON,
				DeliveryMode: amqp.Persistent,
				Headers:      headers,
				Body:         body,
			})

		if publishErr == nil {
			logger.Infof("Batch %s published to %s/%s", msg.BatchID, exchange, key)

			return nil
		}

		logger.Errorf("Publish failed (attempt %d/%d): %v", attempt+1, constant.ProducerMaxRetries+1, publishErr)

		spanProducer.SetAttributes(attribute.Int("app.request.rabbitmq.retry_attempt", attempt))

		if attempt == constant.ProducerMaxRetries {
			libOpentelemetry.HandleSpanError(&spanProducer, "Failed to publish batch after all retries", publishErr)

			return publishErr
		}

		sleepDuration := pkg.FullJitter(backoff)

		logger.Infof("Retrying publish in %v (attempt %d/%d)", sleepDuration, attempt+1, constant.ProducerMaxRetries+1)

		sleepFunc(sleepDuration)

		backoff = pkg.NextBackoff(backoff)
	}

	return publishErr
}
