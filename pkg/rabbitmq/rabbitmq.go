// Copyright (c) 2026 Lerian Studio. All rights reserved.
// Use of this source code is governed by the Elastic License 2.0
// that can be found in the LICENSE file.

package rabbitmq

import (
	"context"
	"fmt"
	"sync"

	"github.com/LerianStudio/condo-docs/pkg/constant"
	"github.com/LerianStudio/condo-docs/pkg/model"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
)

// ProducerRepository publishes batch generation requests.
//
//go:generate mockgen --destination=rabbitmq.mock.go --package=rabbitmq --copyright_file=../../COPYRIGHT . ProducerRepository ConsumerRepository
type ProducerRepository interface {
	PublishBatch(ctx context.Context, exchange, key string, message model.BatchMessage) error
	IsHealthy() bool
}

// QueueHandlerFunc is a function that processes a specific queue.
type QueueHandlerFunc func(ctx context.Context, body []byte) error

// ConsumerRepository provides an interface for Consumer related to rabbitmq.
type ConsumerRepository interface {
	Register(queueName string, handler QueueHandlerFunc)
	RunConsumers(ctx context.Context, wg *sync.WaitGroup) error
}

// HeaderCarrier adapts amqp headers to an OpenTelemetry text map carrier.
type HeaderCarrier amqp.Table

var _ propagation.TextMapCarrier = HeaderCarrier{}

// Get returns the header value for key, or "" when it is missing or not a string.
func (c HeaderCarrier) Get(key string) string {
	if v, ok := c[key].(string); ok {
		return v
	}

	return ""
}

// Set stores a header.
func (c HeaderCarrier) Set(key, value string) {
	c[key] = value
}

// Keys lists the header names.
func (c HeaderCarrier) Keys() []string {
	keys := make([]string, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}

	return keys
}

// InjectTraceHeaders writes the span context of ctx into headers.
func InjectTraceHeaders(ctx context.Context, headers amqp.Table) {
	otel.GetTextMapPropagator().Inject(ctx, HeaderCarrier(headers))
}

// ExtractTraceContext returns ctx carrying the remote span context found in headers.
func ExtractTraceContext(ctx context.Context, headers amqp.Table) context.Context {
	if headers == nil {
		return ctx
	}

	return otel.GetTextMapPropagator().Extract(ctx, HeaderCarrier(headers))
}

// NewHeaders returns the headers of a first delivery attempt.
func NewHeaders(ctx context.Context, requestID string) amqp.Table {
	headers := amqp.Table{
		constant.RequestIDHeader:  requestID,
		constant.RetryCountHeader: int32(0),
	}

	InjectTraceHeaders(ctx, headers)

	return headers
}

// RetryCount reads the retry count header. Missing, negative or non-numeric values count as 0.
func RetryCount(headers amqp.Table) int {
	if headers == nil {
		return 0
	}

	var n int

	switch v := headers[constant.RetryCountHeader].(type) {
	case int:
		n = v
	case int32:
		n = int(v)
	case int64:
		n = int(v)
	case float64:
		n = int(v)
	default:
		return 0
	}

	return max(n, 0)
}

// WithRetryCount returns a copy of headers with the retry count set to n.
func WithRetryCount(headers amqp.Table, n int) amqp.Table {
	out := make(amqp.Table, len(headers)+1)
	for k, v := range headers {
		out[k] = v
	}

	out[constant.RetryCountHeader] = int32(n) //nolint:gosec // bounded by MaxMessageRetries

	return out
}

// RequestID reads the request id header.
func RequestID(headers amqp.Table) string {
	if v, ok := headers[constant.RequestIDHeader].(string); ok {
		return v
	}

	return ""
}

// DeadLetterQueue returns the name of the dead letter queue of queue.
func DeadLetterQueue(queue string) string {
	return fmt.Sprintf("%s.dlq", queue)
}
